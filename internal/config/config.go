package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vanshika/creatorgen/internal/domain"
	"github.com/vanshika/creatorgen/internal/generator"
)

// Config aggregates the datagen tool configuration.
type Config struct {
	Logging   LoggingConfig
	Output    OutputConfig
	Generator generator.Config `validate:"-"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `validate:"oneof=debug info warn warning error"`
	Format        string `validate:"oneof=text json"` // text|json
	IncludeCaller bool
}

// OutputConfig describes where generated artifacts are written.
type OutputConfig struct {
	Path        string `validate:"required"` // "-" writes to stdout
	MetricsFile string
}

const (
	envPrefix = "DATAGEN"

	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultOutputPath    = "generated_transactions_30days.json"
)

const (
	keyLogLevel         = "logging.level"
	keyLogFormat        = "logging.format"
	keyLogIncludeCaller = "logging.include_caller"
	keyOutputPath       = "output.path"
	keyMetricsFile      = "output.metrics_file"

	keyChannelWeights   = "generator.channel_weights"
	keyAmountRanges     = "generator.amount_ranges"
	keyFallbackChannel  = "generator.fallback_channel"
	keyRevenueMin       = "generator.daily_revenue.min"
	keyRevenueMax       = "generator.daily_revenue.max"
	keyCreators         = "generator.creators"
	keyDays             = "generator.days"
	keyTxPerDay         = "generator.transactions_per_day"
	keyMinimumAmount    = "generator.minimum_amount"
	keyRescaleThreshold = "generator.rescale_threshold"
	keyJitterMin        = "generator.rescale_jitter_min"
	keyJitterMax        = "generator.rescale_jitter_max"
	keyCommonTipChance  = "generator.common_tip_chance"
	keyCommonTipAmounts = "generator.common_tip_amounts"
	keyFanPoolSize      = "generator.fan_pool_size"
	keySeed             = "generator.seed"
)

var validate = validator.New()

// Load reads configuration from an optional YAML/JSON/TOML file and
// DATAGEN_-prefixed environment variables (a local .env file is honoured),
// applying the default generator profile for anything unset.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, generator.DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	gen, err := generatorConfig(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Logging: LoggingConfig{
			Level:         strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
			Format:        strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
			IncludeCaller: v.GetBool(keyLogIncludeCaller),
		},
		Output: OutputConfig{
			Path:        v.GetString(keyOutputPath),
			MetricsFile: v.GetString(keyMetricsFile),
		},
		Generator: gen,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the tool settings and the generator profile.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fe := validationErrs[0]
			return fmt.Errorf("invalid %s value %q", fe.Namespace(), fe.Value())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return c.Generator.Validate()
}

func setDefaults(v *viper.Viper, gen generator.Config) {
	v.SetDefault(keyLogLevel, defaultLoggingLevel)
	v.SetDefault(keyLogFormat, defaultLoggingFormat)
	v.SetDefault(keyLogIncludeCaller, false)
	v.SetDefault(keyOutputPath, defaultOutputPath)
	v.SetDefault(keyMetricsFile, "")

	v.SetDefault(keyFallbackChannel, string(gen.FallbackChannel))
	v.SetDefault(keyRevenueMin, gen.DailyRevenue.Min)
	v.SetDefault(keyRevenueMax, gen.DailyRevenue.Max)
	v.SetDefault(keyDays, gen.Days)
	v.SetDefault(keyTxPerDay, gen.TransactionsPerDay)
	v.SetDefault(keyMinimumAmount, gen.MinimumAmount)
	v.SetDefault(keyRescaleThreshold, gen.RescaleThreshold)
	v.SetDefault(keyJitterMin, gen.RescaleJitterMin)
	v.SetDefault(keyJitterMax, gen.RescaleJitterMax)
	v.SetDefault(keyCommonTipChance, gen.CommonTipChance)
	v.SetDefault(keyFanPoolSize, gen.FanPoolSize)
	v.SetDefault(keySeed, gen.Seed)
}

func generatorConfig(v *viper.Viper) (generator.Config, error) {
	gen := generator.DefaultConfig()

	gen.FallbackChannel = domain.Channel(v.GetString(keyFallbackChannel))
	gen.DailyRevenue = generator.RevenueBand{
		Min: v.GetFloat64(keyRevenueMin),
		Max: v.GetFloat64(keyRevenueMax),
	}
	gen.Days = v.GetInt(keyDays)
	gen.TransactionsPerDay = v.GetInt(keyTxPerDay)
	gen.MinimumAmount = v.GetFloat64(keyMinimumAmount)
	gen.RescaleThreshold = v.GetFloat64(keyRescaleThreshold)
	gen.RescaleJitterMin = v.GetFloat64(keyJitterMin)
	gen.RescaleJitterMax = v.GetFloat64(keyJitterMax)
	gen.CommonTipChance = v.GetFloat64(keyCommonTipChance)
	gen.FanPoolSize = v.GetInt(keyFanPoolSize)
	gen.Seed = v.GetInt64(keySeed)

	if v.IsSet(keyChannelWeights) {
		var weights []generator.ChannelWeight
		if err := v.UnmarshalKey(keyChannelWeights, &weights); err != nil {
			return generator.Config{}, fmt.Errorf("invalid %s: %w", keyChannelWeights, err)
		}
		gen.ChannelWeights = weights
	}
	if v.IsSet(keyAmountRanges) {
		var ranges map[domain.Channel]generator.AmountRange
		if err := v.UnmarshalKey(keyAmountRanges, &ranges); err != nil {
			return generator.Config{}, fmt.Errorf("invalid %s: %w", keyAmountRanges, err)
		}
		gen.AmountRanges = ranges
	}
	if v.IsSet(keyCreators) {
		var creators []domain.Creator
		if err := v.UnmarshalKey(keyCreators, &creators); err != nil {
			return generator.Config{}, fmt.Errorf("invalid %s: %w", keyCreators, err)
		}
		gen.Creators = creators
	}
	if v.IsSet(keyCommonTipAmounts) {
		var amounts []float64
		if err := v.UnmarshalKey(keyCommonTipAmounts, &amounts); err != nil {
			return generator.Config{}, fmt.Errorf("invalid %s: %w", keyCommonTipAmounts, err)
		}
		gen.CommonTipAmounts = amounts
	}

	return gen, nil
}

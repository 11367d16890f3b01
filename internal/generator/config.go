package generator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vanshika/creatorgen/internal/domain"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid generator config")

const weightTolerance = 1e-6

// ChannelWeight is the selection probability of a single channel. Order matters:
// the selector walks weights in the order they are configured.
type ChannelWeight struct {
	Channel domain.Channel `mapstructure:"channel" validate:"required,oneof=messages tips subscriptions posts"`
	Weight  float64        `mapstructure:"weight" validate:"gte=0,lte=1"`
}

// AmountRange bounds the raw amount drawn for a channel.
type AmountRange struct {
	Min float64 `mapstructure:"min" validate:"gte=0"`
	Max float64 `mapstructure:"max" validate:"gtefield=Min"`
}

// RevenueBand bounds the per-day revenue target.
type RevenueBand struct {
	Min float64 `mapstructure:"min" validate:"gte=0"`
	Max float64 `mapstructure:"max" validate:"gtefield=Min"`
}

// Config drives the transaction generator.
type Config struct {
	ChannelWeights     []ChannelWeight                `mapstructure:"channel_weights" validate:"required,min=1,dive"`
	AmountRanges       map[domain.Channel]AmountRange `mapstructure:"amount_ranges" validate:"required,dive,keys,oneof=messages tips subscriptions posts,endkeys"`
	FallbackChannel    domain.Channel                 `mapstructure:"fallback_channel" validate:"required,oneof=messages tips subscriptions posts"`
	DailyRevenue       RevenueBand                    `mapstructure:"daily_revenue"`
	Creators           []domain.Creator               `mapstructure:"creators" validate:"required,min=1,dive"`
	Days               int                            `mapstructure:"days" validate:"gte=1"`
	TransactionsPerDay int                            `mapstructure:"transactions_per_day" validate:"gte=1"`
	MinimumAmount      float64                        `mapstructure:"minimum_amount" validate:"gte=0"`
	RescaleThreshold   float64                        `mapstructure:"rescale_threshold" validate:"gt=0"`
	RescaleJitterMin   float64                        `mapstructure:"rescale_jitter_min" validate:"gt=0"`
	RescaleJitterMax   float64                        `mapstructure:"rescale_jitter_max" validate:"gtefield=RescaleJitterMin"`
	CommonTipChance    float64                        `mapstructure:"common_tip_chance" validate:"gte=0,lte=1"`
	CommonTipAmounts   []float64                      `mapstructure:"common_tip_amounts" validate:"required,min=1,dive,gte=0"`
	// FanPoolSize > 0 draws fan ids from a fixed pool so fans repeat.
	// Zero mints a fresh fan id for every transaction.
	FanPoolSize int   `mapstructure:"fan_pool_size" validate:"gte=0"`
	Seed        int64 `mapstructure:"seed"`
}

// DefaultConfig returns the baseline creator-platform profile.
func DefaultConfig() Config {
	return Config{
		ChannelWeights: []ChannelWeight{
			{Channel: domain.ChannelMessages, Weight: 0.60},
			{Channel: domain.ChannelTips, Weight: 0.22},
			{Channel: domain.ChannelSubscriptions, Weight: 0.17},
			{Channel: domain.ChannelPosts, Weight: 0.01},
		},
		AmountRanges: map[domain.Channel]AmountRange{
			domain.ChannelMessages:      {Min: 80, Max: 300},
			domain.ChannelTips:          {Min: 150, Max: 1500},
			domain.ChannelSubscriptions: {Min: 150, Max: 750},
			domain.ChannelPosts:         {Min: 80, Max: 300},
		},
		FallbackChannel:    domain.ChannelMessages,
		DailyRevenue:       RevenueBand{Min: 6800, Max: 7000},
		Creators:           DefaultCreators(),
		Days:               30,
		TransactionsPerDay: 30,
		MinimumAmount:      50,
		RescaleThreshold:   1.5,
		RescaleJitterMin:   0.8,
		RescaleJitterMax:   1.2,
		CommonTipChance:    0.7,
		CommonTipAmounts:   []float64{150, 200, 300, 400, 500, 750, 1000, 1200, 1500},
	}
}

// DefaultCreators returns the static creator roster.
func DefaultCreators() []domain.Creator {
	return []domain.Creator{
		{ID: "scarlettrose", Name: "Scarlett Rose", Alias: "@scarlett_rose"},
		{ID: "diamondray", Name: "Diamond Ray", Alias: "@diamond_ray"},
		{ID: "ivynight", Name: "Ivy Night", Alias: "@ivy_night"},
		{ID: "rubyblaze", Name: "Ruby Blaze", Alias: "@ruby_blaze"},
		{ID: "crystalstar", Name: "Crystal Star", Alias: "@crystal_star"},
		{ID: "ambermoon", Name: "Amber Moon", Alias: "@amber_moon"},
		{ID: "sapphirefox", Name: "Sapphire Fox", Alias: "@sapphire_fox"},
		{ID: "emeraldwave", Name: "Emerald Wave", Alias: "@emerald_wave"},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(configStructLevel, Config{})
	return v
}

// Validate checks field constraints and the cross-field rules the selector and
// sampler rely on: weights summing to one, a range for every selectable channel
// and unique creator aliases.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		problem := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			problem += " (" + fe.Param() + ")"
		}
		problems = append(problems, problem)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

func configStructLevel(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	var sum float64
	seen := make(map[domain.Channel]struct{}, len(cfg.ChannelWeights))
	for _, cw := range cfg.ChannelWeights {
		sum += cw.Weight
		if _, dup := seen[cw.Channel]; dup {
			sl.ReportError(cfg.ChannelWeights, "ChannelWeights", "ChannelWeights", "unique_channel", string(cw.Channel))
		}
		seen[cw.Channel] = struct{}{}
		if _, ok := cfg.AmountRanges[cw.Channel]; !ok {
			sl.ReportError(cfg.AmountRanges, "AmountRanges", "AmountRanges", "range_for_channel", string(cw.Channel))
		}
	}
	if len(cfg.ChannelWeights) > 0 && math.Abs(sum-1) > weightTolerance {
		sl.ReportError(cfg.ChannelWeights, "ChannelWeights", "ChannelWeights", "weights_sum_one", fmt.Sprintf("%g", sum))
	}

	if cfg.FallbackChannel != "" {
		if _, ok := cfg.AmountRanges[cfg.FallbackChannel]; !ok {
			sl.ReportError(cfg.FallbackChannel, "FallbackChannel", "FallbackChannel", "range_for_channel", string(cfg.FallbackChannel))
		}
	}

	aliases := make(map[string]struct{}, len(cfg.Creators))
	for _, creator := range cfg.Creators {
		if _, dup := aliases[creator.Alias]; dup {
			sl.ReportError(cfg.Creators, "Creators", "Creators", "unique_alias", creator.Alias)
		}
		aliases[creator.Alias] = struct{}{}
	}
}

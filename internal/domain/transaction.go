package domain

// Channel identifies the kind of monetized interaction a transaction came from.
type Channel string

// Known channels.
const (
	ChannelMessages      Channel = "messages"
	ChannelTips          Channel = "tips"
	ChannelSubscriptions Channel = "subscriptions"
	ChannelPosts         Channel = "posts"
)

// Transaction is a single monetized event attributed to a creator and paid by a fan.
type Transaction struct {
	ID              string  `json:"id"`
	Timestamp       string  `json:"timestamp"`
	Channel         Channel `json:"channel"`
	CreatorAlias    string  `json:"creatorAlias"`
	FanID           string  `json:"fanId"`
	Amount          float64 `json:"amount"`
	IsRefunded      bool    `json:"isRefunded"`
	RefundTimestamp *string `json:"refundTimestamp"`
	RefundAmount    float64 `json:"refundAmount"`
}

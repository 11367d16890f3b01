package domain

// Fan aggregates every transaction that references the same fan id.
type Fan struct {
	FanID                 string  `json:"fanId"`
	CreatorAlias          string  `json:"creatorAlias"`
	SubscriptionStatus    string  `json:"subscriptionStatus"`
	SubscriptionType      string  `json:"subscriptionType"`
	RenewOn               bool    `json:"renewOn"`
	SubscriptionStartDate string  `json:"subscriptionStartDate"`
	LastTransactionDate   string  `json:"lastTransactionDate"`
	TotalSpent            float64 `json:"totalSpent"`
	TransactionCount      int     `json:"transactionCount"`
}

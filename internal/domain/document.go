package domain

// Metadata is the dataset-level summary written alongside the transactions.
type Metadata struct {
	UserName           string  `json:"userName"`
	UTCOffset          string  `json:"utcOffset"`
	OperationalStatus  bool    `json:"operationalStatus"`
	TotalMessages      int     `json:"totalMessages"`
	PlatformFee        float64 `json:"platformFee"`
	Version            string  `json:"version"`
	TotalNotifications int     `json:"totalNotifications"`
}

// Document is the complete generated dataset.
type Document struct {
	Metadata     Metadata      `json:"metadata"`
	Transactions []Transaction `json:"transactions"`
	Creators     []Creator     `json:"creators"`
	Fans         []Fan         `json:"fans"`
}

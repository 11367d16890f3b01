package generator

import "github.com/vanshika/creatorgen/internal/domain"

// Static metadata and fan placeholder values carried by every dataset.
const (
	MetadataUserName      = "Generated User"
	MetadataUTCOffset     = "-08:00"
	MetadataPlatformFee   = 0.5
	MetadataVersion       = "5.6.1"
	FanSubscriptionStatus = "active"
	FanSubscriptionType   = "recurring"
	FanSubscriptionStart  = "2024-01-01T00:00:00.000Z"
)

// BuildMetadata summarises a finished transaction list.
func BuildMetadata(transactions []domain.Transaction) domain.Metadata {
	var messages int
	for _, tx := range transactions {
		if tx.Channel == domain.ChannelMessages {
			messages++
		}
	}
	return domain.Metadata{
		UserName:           MetadataUserName,
		UTCOffset:          MetadataUTCOffset,
		OperationalStatus:  true,
		TotalMessages:      messages,
		PlatformFee:        MetadataPlatformFee,
		Version:            MetadataVersion,
		TotalNotifications: len(transactions),
	}
}

// AggregateFans folds transactions into one Fan per fan id, in order of first
// appearance. Totals are plain float sums of the transaction amounts.
func AggregateFans(transactions []domain.Transaction) []domain.Fan {
	fans := make([]domain.Fan, 0)
	index := make(map[string]int)

	for _, tx := range transactions {
		pos, ok := index[tx.FanID]
		if !ok {
			fans = append(fans, domain.Fan{
				FanID:                 tx.FanID,
				CreatorAlias:          tx.CreatorAlias,
				SubscriptionStatus:    FanSubscriptionStatus,
				SubscriptionType:      FanSubscriptionType,
				RenewOn:               true,
				SubscriptionStartDate: FanSubscriptionStart,
			})
			pos = len(fans) - 1
			index[tx.FanID] = pos
		}

		fan := &fans[pos]
		fan.TotalSpent += tx.Amount
		fan.TransactionCount++
		fan.LastTransactionDate = tx.Timestamp
	}
	return fans
}

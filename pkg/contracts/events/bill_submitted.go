package events

type BillSubmitted struct {
	BillID          string  `json:"bill_id"`
	DealerID        string  `json:"dealer_id"`
	Category        string  `json:"category"`
	EntryCount      int     `json:"entry_count"`
	WagerCount      int     `json:"wager_count"`
	TotalAmount     float64 `json:"total_amount"`
	TotalCommission float64 `json:"total_commission"`
	TsUnixMs        int64   `json:"ts_unix_ms"`
}

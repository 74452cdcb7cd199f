package dto

import (
	"time"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

type WagerView struct {
	ID               string    `json:"id"`
	EntryID          string    `json:"entry_id"`
	BetType          string    `json:"bet_type"`
	Numbers          string    `json:"numbers"`
	Amount           float64   `json:"amount"`
	CommissionRate   float64   `json:"commission_rate"`
	CommissionAmount float64   `json:"commission_amount"`
	DisplayNumbers   string    `json:"display_numbers"`
	DisplayAmount    string    `json:"display_amount"`
	DisplayBetType   string    `json:"display_bet_type"`
	CreatedAt        time.Time `json:"created_at"`
	IsWinner         bool      `json:"is_winner"`
	PrizeAmount      float64   `json:"prize_amount,omitempty"`
}

func ToWagerView(w bet.CanonicalWager) WagerView {
	return WagerView{
		ID:               w.ID,
		EntryID:          w.EntryID,
		BetType:          w.BetType,
		Numbers:          w.Numbers,
		Amount:           w.Amount,
		CommissionRate:   w.CommissionRate,
		CommissionAmount: w.CommissionAmount,
		DisplayNumbers:   w.DisplayNumbers,
		DisplayAmount:    w.DisplayAmount,
		DisplayBetType:   w.DisplayBetType,
		CreatedAt:        w.CreatedAt,
		IsWinner:         w.IsWinner,
		PrizeAmount:      w.PrizeAmount,
	}
}

type SubmitBillResponse struct {
	BillID          string      `json:"bill_id"`
	EntryCount      int         `json:"entry_count"`
	WagerCount      int         `json:"wager_count"`
	TotalAmount     float64     `json:"total_amount"`
	TotalCommission float64     `json:"total_commission"`
	Wagers          []WagerView `json:"wagers"`
}

type SupersedeResponse struct {
	BillID     string      `json:"bill_id"`
	NewEntryID string      `json:"new_entry_id"`
	Wagers     []WagerView `json:"wagers"`
}

type BillResponse struct {
	BillID      string      `json:"bill_id"`
	DealerID    string      `json:"dealer_id"`
	Category    string      `json:"category"`
	Label       string      `json:"label,omitempty"`
	SubmittedBy string      `json:"submitted_by"`
	CutoffAt    time.Time   `json:"cutoff_at"`
	Wagers      []WagerView `json:"wagers"`
}

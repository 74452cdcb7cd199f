package dto

import (
	"time"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/rates"
)

// EntryInput é uma linha crua de aposta digitada pelo usuário
type EntryInput struct {
	Numbers string `json:"numbers"`  // ex: "123"
	Amount  string `json:"amount"`   // ex: "100" ou "100*50"
	BetType string `json:"bet_type"` // ex: "3_top"
}

type SubmitBillRequest struct {
	DealerID    string             `json:"dealer_id"`
	Category    string             `json:"category"` // "thai" | "lao" | "hanoi"
	Label       string             `json:"label,omitempty"`
	SubmittedBy string             `json:"submitted_by"`
	CutoffAt    time.Time          `json:"cutoff_at"`
	SetPrices   map[string]float64 `json:"set_prices,omitempty"` // preço por conjunto vindo da rodada
	Entries     []EntryInput       `json:"entries"`
}

type SupersedeRequest struct {
	BillID string     `json:"bill_id"`
	Entry  EntryInput `json:"entry"`
}

type SaveRatesRequest struct {
	Settings rates.Settings `json:"settings"`
}

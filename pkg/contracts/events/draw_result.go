package events

import "time"

// DrawResult é o resultado oficial de um sorteio, publicado pela fonte de
// resultados (ou pelo draw-simulator em ambiente local).
type DrawResult struct {
	Category   string    `json:"category"` // "thai" | "lao" | "hanoi"
	DrawDate   string    `json:"draw_date"`
	TopThree   string    `json:"top_three"`   // 3 dígitos do prêmio superior
	BottomTwo  string    `json:"bottom_two"`  // 2 dígitos do prêmio inferior
	FirstPrize string    `json:"first_prize"` // número completo do primeiro prêmio
	Source     string    `json:"source"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package repo

import "time"

// Bill é o modelo persistido de um bilhete: um conjunto ordenado de apostas
// submetidas juntas, editável como unidade.
type Bill struct {
	ID          string
	DealerID    string
	Category    string
	Label       string
	SubmittedBy string
	CutoffAt    time.Time
	CreatedAt   time.Time
}

package topics

const (
	// Bilhetes
	BillSubmitted = "bill_submitted"

	// Resultados de sorteio
	DrawResults = "draw_results"

	// DLQs
	DrawResultsDLQ = "draw_results_dlq"
)

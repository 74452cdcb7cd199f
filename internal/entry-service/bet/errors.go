package bet

import "errors"

// Taxonomia de erros do núcleo. Reportados de forma síncrona ao caller;
// o compilador nunca emite um grupo parcial em caso de falha.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDigitCountMismatch   = errors.New("digit count mismatch")
	ErrZeroOrNegativeAmount = errors.New("zero or negative amount")
	ErrUnknownBetType       = errors.New("unknown bet type")
	ErrUnresolvableRate     = errors.New("unresolvable rate")
)

package engine

// Motivos de rejeição de uma rodada. Todos abortam a rodada inteira;
// nenhum é repetido internamente.
const (
	RejectGameInactive            = "GAME_INACTIVE"
	RejectRangeOutOfBounds        = "RANGE_OUT_OF_BOUNDS"
	RejectInvalidGap              = "INVALID_GAP"
	RejectInconsistentSideBet     = "INCONSISTENT_SIDE_BET"
	RejectNegativeSideBetAmount   = "NEGATIVE_SIDE_BET_AMOUNT"
	RejectUnknownSideBetType      = "UNKNOWN_SIDE_BET_TYPE"
	RejectSideBetAmountOutOfRange = "SIDE_BET_AMOUNT_OUT_OF_RANGE"
	RejectNoMainBetAmount         = "NO_MAIN_BET_AMOUNT"
	RejectMainBetAmountOutOfRange = "MAIN_BET_AMOUNT_OUT_OF_RANGE"
	RejectInsufficientReserve     = "INSUFFICIENT_RESERVE"
	RejectNonHumanCaller          = "NON_HUMAN_CALLER"
)

// ValidationError carrega o motivo estruturado e a mensagem exibida ao jogador.
type ValidationError struct {
	Reason string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrGameInactive            = &ValidationError{RejectGameInactive, "game not active yet"}
	ErrRangeOutOfBounds        = &ValidationError{RejectRangeOutOfBounds, "invalid bet. choose a number between 0 to 99"}
	ErrInvalidGap              = &ValidationError{RejectInvalidGap, "invalid gap. choose upper and lower values such that gap is between 0 to 95"}
	ErrInconsistentSideBet     = &ValidationError{RejectInconsistentSideBet, "should set both side bet type as well as side bet amount"}
	ErrNegativeSideBetAmount   = &ValidationError{RejectNegativeSideBetAmount, "bet amount cannot be negative"}
	ErrUnknownSideBetType      = &ValidationError{RejectUnknownSideBetType, "invalid side bet type"}
	ErrSideBetAmountOutOfRange = &ValidationError{RejectSideBetAmountOutOfRange, "side bet amount out of range"}
	ErrNoMainBetAmount         = &ValidationError{RejectNoMainBetAmount, "no main bet amount provided"}
	ErrMainBetAmountOutOfRange = &ValidationError{RejectMainBetAmountOutOfRange, "main bet amount out of range"}
	ErrInsufficientReserve     = &ValidationError{RejectInsufficientReserve, "not enough in treasury to make the play"}
	ErrNonHumanCaller          = &ValidationError{RejectNonHumanCaller, "contract callers cannot play games"}
)

package engine

import "github.com/shopspring/decimal"

// Validate aplica as invariantes estruturais e de range da aposta, em ordem
// estrita; a primeira falha aborta a rodada. gameActive vem do estado
// administrativo e reserveFloor da reserva viva do tesouro, ambos capturados
// no início da rodada e injetados aqui (nunca lidos de estado global).
func Validate(req BetRequest, snap LimitSnapshot, reserveFloor decimal.Decimal, gameActive bool) error {
	if !gameActive {
		return ErrGameInactive
	}

	if req.Upper < 0 || req.Upper > 99 || req.Lower < 0 || req.Lower > 99 {
		return ErrRangeOutOfBounds
	}

	if diff := req.Upper - req.Lower; diff < 0 || diff > 95 {
		return ErrInvalidGap
	}

	// side bet: tipo e valor vêm juntos ou não vêm
	hasType := req.SideBetType != SideBetNone
	hasAmount := !req.SideBetAmount.IsZero()
	if hasType != hasAmount {
		return ErrInconsistentSideBet
	}

	if req.SideBetAmount.IsNegative() {
		return ErrNegativeSideBetAmount
	}

	if hasType {
		if !ValidSideBetType(req.SideBetType) {
			return ErrUnknownSideBetType
		}
		if req.SideBetAmount.LessThan(snap.SideBetMin) || req.SideBetAmount.GreaterThan(snap.SideBetMax) {
			return ErrSideBetAmountOutOfRange
		}
	}

	mainBetAmount := req.MainBetAmount()
	if !mainBetAmount.IsPositive() {
		return ErrNoMainBetAmount
	}
	if mainBetAmount.LessThan(snap.MainBetMin) || mainBetAmount.GreaterThan(snap.MainBetMax) {
		return ErrMainBetAmountOutOfRange
	}

	// a reserva precisa cobrir o pagamento assumindo as duas apostas vencendo
	if reserveFloor.LessThan(WorstCasePayout(req)) {
		return ErrInsufficientReserve
	}

	return nil
}

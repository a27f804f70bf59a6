package engine

import "github.com/shopspring/decimal"

// Multiplicador da aposta principal (98.5x) escalado por 100.
var mainBetMultiplierX100 = decimal.NewFromInt(9850)

var oneHundred = decimal.NewFromInt(100)

// MainBetPayout é o pagamento potencial da aposta principal:
// floor(9850 * mainBetAmount / (100 * gap)).
func MainBetPayout(mainBetAmount decimal.Decimal, gap int) decimal.Decimal {
	num := mainBetMultiplierX100.Mul(mainBetAmount)
	den := decimal.NewFromInt(int64(100 * gap))
	q, _ := num.QuoRem(den, 0)
	return q
}

// SideBetPayout é o pagamento potencial do side bet:
// floor(multiplicadorX100 * amount / 100). Tipo desconhecido paga zero.
func SideBetPayout(t SideBetType, amount decimal.Decimal) decimal.Decimal {
	m, ok := sideBetMultiplierX100[t]
	if !ok {
		return decimal.Zero
	}
	q, _ := m.Mul(amount).QuoRem(oneHundred, 0)
	return q
}

// WorstCasePayout é o pagamento total assumindo que as duas apostas vencem.
// Usado na checagem otimista de reserva antes do sorteio.
func WorstCasePayout(req BetRequest) decimal.Decimal {
	total := MainBetPayout(req.MainBetAmount(), req.Gap())
	if req.HasSideBet() {
		total = total.Add(SideBetPayout(req.SideBetType, req.SideBetAmount))
	}
	return total
}

// Evaluate decide as duas apostas de forma independente e computa os
// pagamentos finais da rodada.
func Evaluate(req BetRequest, out Outcome) SettlementResult {
	res := SettlementResult{
		Outcome:       out,
		MainBetPayout: decimal.Zero,
		SideBetPayout: decimal.Zero,
	}

	res.MainBetWon = req.Lower <= out.WinningNumber && out.WinningNumber <= req.Upper
	if res.MainBetWon {
		res.MainBetPayout = MainBetPayout(req.MainBetAmount(), req.Gap())
	}

	if req.HasSideBet() {
		res.SideBetWon = SideBetWins(req.SideBetType, out.WinningNumber)
		if res.SideBetWon {
			res.SideBetPayout = SideBetPayout(req.SideBetType, req.SideBetAmount)
		}
	}

	res.TotalPayout = res.MainBetPayout.Add(res.SideBetPayout)
	return res
}

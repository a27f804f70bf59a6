package engine

import "github.com/shopspring/decimal"

// MinStake é o stake mínimo do protocolo para cada tipo de aposta (0.1 unidade).
var MinStake = decimal.New(1, 17)

// Constantes do teto da aposta principal. A fórmula de referência
// reserve*1.5*gap/(68134 - 681.34*gap) vira inteira multiplicando
// numerador e denominador por 100.
var (
	mainLimitNum  = decimal.NewFromInt(150)
	mainLimitDenA = decimal.NewFromInt(6813400)
	mainLimitDenB = decimal.NewFromInt(68134)
)

// Divisores por variante de side bet, calibrados aos multiplicadores fixos
// de cada uma (9.5x, 5x, 95x).
var sideBetLimitRatio = map[SideBetType]decimal.Decimal{
	SideBetDigitsMatch: decimal.NewFromInt(1140),
	SideBetIconLogo1:   decimal.NewFromInt(540),
	SideBetIconLogo2:   decimal.NewFromInt(12548),
}

// MainBetLimit calcula o stake máximo da aposta principal para a largura de
// range dada, limitando a exposição da casa à reserva corrente:
// floor(reserveFloor*150*gap / (6813400 - 68134*gap)).
// Ranges estreitos pagam mais por unidade e por isso toleram tetos menores.
func MainBetLimit(reserveFloor decimal.Decimal, gap int) decimal.Decimal {
	g := decimal.NewFromInt(int64(gap))
	den := mainLimitDenA.Sub(mainLimitDenB.Mul(g))
	if !den.IsPositive() {
		// denominador só zera com gap >= 100, impossível após a checagem de
		// gap; teto zero rejeita qualquer stake em vez de dividir por zero
		return decimal.Zero
	}
	num := reserveFloor.Mul(mainLimitNum).Mul(g)
	q, _ := num.QuoRem(den, 0)
	return q
}

// SideBetLimit calcula o stake máximo de um side bet:
// floor(reserveFloor / ratio[tipo]). Tipo desconhecido tem teto zero.
func SideBetLimit(reserveFloor decimal.Decimal, t SideBetType) decimal.Decimal {
	ratio, ok := sideBetLimitRatio[t]
	if !ok {
		return decimal.Zero
	}
	q, _ := reserveFloor.QuoRem(ratio, 0)
	return q
}

// LimitSnapshot fixa os tetos e pisos de uma rodada. Derivado uma vez por
// rodada da reserva viva do tesouro; nunca reutilizado entre rodadas.
type LimitSnapshot struct {
	MainBetMin decimal.Decimal
	MainBetMax decimal.Decimal
	SideBetMin decimal.Decimal
	SideBetMax decimal.Decimal
}

// SnapshotLimits computa os limites da rodada a partir da reserva corrente.
func SnapshotLimits(reserveFloor decimal.Decimal, gap int, sideType SideBetType) LimitSnapshot {
	return LimitSnapshot{
		MainBetMin: MinStake,
		MainBetMax: MainBetLimit(reserveFloor, gap),
		SideBetMin: MinStake,
		SideBetMax: SideBetLimit(reserveFloor, sideType),
	}
}

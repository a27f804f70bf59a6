package engine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SideBetTypes são as variantes aceitas de side bet.
var SideBetTypes = []SideBetType{SideBetDigitsMatch, SideBetIconLogo1, SideBetIconLogo2}

// Multiplicadores fixos por variante, escalados por 100 para manter a
// aritmética inteira (9.5x, 5x, 95x).
var sideBetMultiplierX100 = map[SideBetType]decimal.Decimal{
	SideBetDigitsMatch: decimal.NewFromInt(950),
	SideBetIconLogo1:   decimal.NewFromInt(500),
	SideBetIconLogo2:   decimal.NewFromInt(9500),
}

// ValidSideBetType informa se t é uma das variantes conhecidas.
func ValidSideBetType(t SideBetType) bool {
	_, ok := sideBetMultiplierX100[t]
	return ok
}

// SideBetMultipliers retorna a tabela de multiplicadores por variante
// (valor real, ex: 9.5), exposta pela API administrativa.
func SideBetMultipliers() map[SideBetType]decimal.Decimal {
	out := make(map[SideBetType]decimal.Decimal, len(sideBetMultiplierX100))
	for t, m := range sideBetMultiplierX100 {
		out[t] = m.Shift(-2)
	}
	return out
}

// SideBetWins avalia a condição de vitória da variante para o número sorteado.
//   - digits_match: múltiplos de 11 (0, 11, 22, ..., 99)
//   - icon_logo1: a representação decimal contém o dígito '0', ou o número
//     está em [1,9]. A inclusão dos dígitos únicos é regra intencional da
//     variante, não um descuido.
//   - icon_logo2: somente o 0
//
// Tipo ausente ou desconhecido nunca vence (o validador barra antes).
func SideBetWins(t SideBetType, winningNumber int) bool {
	switch t {
	case SideBetDigitsMatch:
		return winningNumber%11 == 0
	case SideBetIconLogo1:
		return strings.ContainsRune(strconv.Itoa(winningNumber), '0') ||
			(winningNumber >= 1 && winningNumber <= 9)
	case SideBetIconLogo2:
		return winningNumber == 0
	default:
		return false
	}
}

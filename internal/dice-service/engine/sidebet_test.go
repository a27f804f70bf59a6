package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSideBetWins_DigitsMatch(t *testing.T) {
	for n := 0; n <= 99; n++ {
		want := n%11 == 0
		assert.Equal(t, want, SideBetWins(SideBetDigitsMatch, n), "n=%d", n)
	}
}

func TestSideBetWins_IconLogo1(t *testing.T) {
	// vence com qualquer número contendo o dígito '0' e também com os
	// dígitos únicos 1..9 (regra alargada da variante)
	for n := 0; n <= 99; n++ {
		want := strings.ContainsRune(strconv.Itoa(n), '0') || (n >= 1 && n <= 9)
		assert.Equal(t, want, SideBetWins(SideBetIconLogo1, n), "n=%d", n)
	}

	// casos âncora da regra
	assert.True(t, SideBetWins(SideBetIconLogo1, 0))
	assert.True(t, SideBetWins(SideBetIconLogo1, 7))  // dígito único, sem '0'
	assert.True(t, SideBetWins(SideBetIconLogo1, 40)) // contém '0'
	assert.False(t, SideBetWins(SideBetIconLogo1, 11))
	assert.False(t, SideBetWins(SideBetIconLogo1, 99))
}

func TestSideBetWins_IconLogo2(t *testing.T) {
	assert.True(t, SideBetWins(SideBetIconLogo2, 0))
	for n := 1; n <= 99; n++ {
		assert.False(t, SideBetWins(SideBetIconLogo2, n), "n=%d", n)
	}
}

func TestSideBetWins_UnknownNeverWins(t *testing.T) {
	for n := 0; n <= 99; n++ {
		assert.False(t, SideBetWins(SideBetNone, n))
		assert.False(t, SideBetWins(SideBetType("bogus"), n))
	}
}

func TestSideBetMultipliers(t *testing.T) {
	m := SideBetMultipliers()
	assert.Len(t, m, 3)
	assert.True(t, m[SideBetDigitsMatch].Equal(decimal.RequireFromString("9.5")))
	assert.True(t, m[SideBetIconLogo1].Equal(decimal.NewFromInt(5)))
	assert.True(t, m[SideBetIconLogo2].Equal(decimal.NewFromInt(95)))
}

func TestValidSideBetType(t *testing.T) {
	for _, st := range SideBetTypes {
		assert.True(t, ValidSideBetType(st))
	}
	assert.False(t, ValidSideBetType(SideBetNone))
	assert.False(t, ValidSideBetType(SideBetType("double_logo")))
}

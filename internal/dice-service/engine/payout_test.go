package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// 1 unidade em unidades mínimas
var oneUnit = decimal.New(1, 18)

func TestMainBetPayout_ExactFloors(t *testing.T) {
	// gap=1: floor(9850 * 1e18 / 100) = 98.5 unidades
	got := MainBetPayout(oneUnit, 1)
	assert.True(t, got.Equal(decimal.RequireFromString("98500000000000000000")), "got %s", got.String())

	// gap=3: trunca a dízima
	got = MainBetPayout(oneUnit, 3)
	assert.True(t, got.Equal(decimal.RequireFromString("32833333333333333333")), "got %s", got.String())

	// valores minúsculos: floor(9850*3/700) = 42
	got = MainBetPayout(decimal.NewFromInt(3), 7)
	assert.True(t, got.Equal(decimal.NewFromInt(42)), "got %s", got.String())
}

func TestSideBetPayout_ExactFloors(t *testing.T) {
	// icon_logo2 com 0.1 unidade: floor(9500 * 1e17 / 100) = 9.5 unidades
	got := SideBetPayout(SideBetIconLogo2, decimal.New(1, 17))
	assert.True(t, got.Equal(decimal.RequireFromString("9500000000000000000")), "got %s", got.String())

	// digits_match com 7: floor(950*7/100) = 66
	got = SideBetPayout(SideBetDigitsMatch, decimal.NewFromInt(7))
	assert.True(t, got.Equal(decimal.NewFromInt(66)), "got %s", got.String())

	// icon_logo1 com 1 unidade: exatamente 5 unidades
	got = SideBetPayout(SideBetIconLogo1, oneUnit)
	assert.True(t, got.Equal(decimal.RequireFromString("5000000000000000000")), "got %s", got.String())

	assert.True(t, SideBetPayout(SideBetType("bogus"), oneUnit).IsZero())
}

func TestEvaluate_MainWin(t *testing.T) {
	req := BetRequest{Upper: 50, Lower: 50, Stake: oneUnit, SideBetAmount: decimal.Zero}
	out := Outcome{WinningNumber: 50, RawSpin: decimal.RequireFromString("0.50286")}

	res := Evaluate(req, out)

	assert.True(t, res.MainBetWon)
	assert.False(t, res.SideBetWon)
	assert.True(t, res.MainBetPayout.Equal(decimal.RequireFromString("98500000000000000000")))
	assert.True(t, res.SideBetPayout.IsZero())
	assert.True(t, res.TotalPayout.Equal(res.MainBetPayout))
}

func TestEvaluate_MainLoss(t *testing.T) {
	req := BetRequest{Upper: 50, Lower: 50, Stake: oneUnit, SideBetAmount: decimal.Zero}
	out := Outcome{WinningNumber: 49, RawSpin: decimal.RequireFromString("0.49321")}

	res := Evaluate(req, out)

	assert.False(t, res.MainBetWon)
	assert.False(t, res.SideBetWon)
	assert.True(t, res.TotalPayout.IsZero())
}

func TestEvaluate_SideWinMainLoss(t *testing.T) {
	req := BetRequest{
		Upper: 50, Lower: 50,
		Stake:         oneUnit.Add(decimal.New(1, 17)),
		SideBetType:   SideBetIconLogo2,
		SideBetAmount: decimal.New(1, 17),
	}
	out := Outcome{WinningNumber: 0, RawSpin: decimal.RequireFromString("0.00075")}

	res := Evaluate(req, out)

	assert.False(t, res.MainBetWon)
	assert.True(t, res.SideBetWon)
	assert.True(t, res.MainBetPayout.IsZero())
	assert.True(t, res.SideBetPayout.Equal(decimal.RequireFromString("9500000000000000000")))
	assert.True(t, res.TotalPayout.Equal(res.SideBetPayout))
}

func TestEvaluate_BothWin(t *testing.T) {
	req := BetRequest{
		Upper: 20, Lower: 0,
		Stake:         oneUnit.Add(decimal.New(1, 17)),
		SideBetType:   SideBetDigitsMatch,
		SideBetAmount: decimal.New(1, 17),
	}
	out := Outcome{WinningNumber: 11, RawSpin: decimal.RequireFromString("0.11612")}

	res := Evaluate(req, out)

	assert.True(t, res.MainBetWon)
	assert.True(t, res.SideBetWon)
	// gap=21: floor(9850 * 1e18 / 2100)
	assert.True(t, res.MainBetPayout.Equal(decimal.RequireFromString("4690476190476190476")), "got %s", res.MainBetPayout.String())
	// floor(950 * 1e17 / 100)
	assert.True(t, res.SideBetPayout.Equal(decimal.RequireFromString("950000000000000000")))
	assert.True(t, res.TotalPayout.Equal(res.MainBetPayout.Add(res.SideBetPayout)))
}

func TestWorstCasePayout(t *testing.T) {
	req := BetRequest{
		Upper: 50, Lower: 50,
		Stake:         oneUnit.Add(decimal.New(1, 17)),
		SideBetType:   SideBetIconLogo2,
		SideBetAmount: decimal.New(1, 17),
	}
	want := MainBetPayout(oneUnit, 1).Add(SideBetPayout(SideBetIconLogo2, decimal.New(1, 17)))
	assert.True(t, WorstCasePayout(req).Equal(want))

	// sem side bet o pior caso é só a principal
	noSide := BetRequest{Upper: 50, Lower: 50, Stake: oneUnit}
	assert.True(t, WorstCasePayout(noSide).Equal(MainBetPayout(oneUnit, 1)))
}

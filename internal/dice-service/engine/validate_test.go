package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReq() BetRequest {
	return BetRequest{
		Upper: 50,
		Lower: 50,
		Stake: oneUnit,
	}
}

func validate(req BetRequest, active bool) error {
	snap := SnapshotLimits(testReserve, req.Gap(), req.SideBetType)
	return Validate(req, snap, testReserve, active)
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validate(validReq(), true))
}

func TestValidate_GameInactive(t *testing.T) {
	assert.ErrorIs(t, validate(validReq(), false), ErrGameInactive)
}

func TestValidate_RangeOutOfBounds(t *testing.T) {
	for _, c := range []struct{ upper, lower int }{
		{100, 0}, {-1, -1}, {50, -1}, {120, 50},
	} {
		req := validReq()
		req.Upper, req.Lower = c.upper, c.lower
		assert.ErrorIs(t, validate(req, true), ErrRangeOutOfBounds, "upper=%d lower=%d", c.upper, c.lower)
	}
}

func TestValidate_InvalidGap(t *testing.T) {
	// upper < lower
	req := validReq()
	req.Upper, req.Lower = 10, 20
	assert.ErrorIs(t, validate(req, true), ErrInvalidGap)

	// diferença 96 (gap 97)
	req = validReq()
	req.Upper, req.Lower = 97, 1
	assert.ErrorIs(t, validate(req, true), ErrInvalidGap)

	// diferença 95 (gap 96) ainda é válida
	req = validReq()
	req.Upper, req.Lower = 96, 1
	assert.NoError(t, validate(req, true))
}

func TestValidate_FullRangeGap96(t *testing.T) {
	// range inteiro [0,99] tem diferença 99 e é rejeitado pelo gap, nunca
	// chegando perto do denominador do teto
	req := validReq()
	req.Upper, req.Lower = 99, 0
	assert.ErrorIs(t, validate(req, true), ErrInvalidGap)
}

func TestValidate_InconsistentSideBet(t *testing.T) {
	// tipo sem valor
	req := validReq()
	req.SideBetType = SideBetDigitsMatch
	req.SideBetAmount = decimal.Zero
	assert.ErrorIs(t, validate(req, true), ErrInconsistentSideBet)

	// valor sem tipo
	req = validReq()
	req.SideBetAmount = decimal.New(1, 17)
	assert.ErrorIs(t, validate(req, true), ErrInconsistentSideBet)
}

func TestValidate_NegativeSideBetAmount(t *testing.T) {
	req := validReq()
	req.SideBetType = SideBetDigitsMatch
	req.SideBetAmount = decimal.New(-1, 17)
	assert.ErrorIs(t, validate(req, true), ErrNegativeSideBetAmount)
}

func TestValidate_UnknownSideBetType(t *testing.T) {
	req := validReq()
	req.SideBetType = SideBetType("double_logo")
	req.SideBetAmount = decimal.New(1, 17)
	req.Stake = oneUnit.Add(req.SideBetAmount)
	assert.ErrorIs(t, validate(req, true), ErrUnknownSideBetType)
}

func TestValidate_SideBetAmountOutOfRange(t *testing.T) {
	// abaixo do mínimo
	req := validReq()
	req.SideBetType = SideBetIconLogo2
	req.SideBetAmount = decimal.New(1, 16) // 0.01 unidade < MinStake
	req.Stake = oneUnit.Add(req.SideBetAmount)
	assert.ErrorIs(t, validate(req, true), ErrSideBetAmountOutOfRange)

	// acima do teto da variante: floor(1e24/12548) ~ 79.7 unidades
	req = validReq()
	req.SideBetType = SideBetIconLogo2
	req.SideBetAmount = decimal.New(80, 18)
	req.Stake = oneUnit.Add(req.SideBetAmount)
	assert.ErrorIs(t, validate(req, true), ErrSideBetAmountOutOfRange)

	// dentro do teto passa
	req = validReq()
	req.SideBetType = SideBetIconLogo2
	req.SideBetAmount = decimal.New(79, 18)
	req.Stake = oneUnit.Add(req.SideBetAmount)
	assert.NoError(t, validate(req, true))
}

func TestValidate_NoMainBetAmount(t *testing.T) {
	// todo o stake consumido pelo side bet
	req := validReq()
	req.SideBetType = SideBetDigitsMatch
	req.SideBetAmount = oneUnit
	req.Stake = oneUnit
	assert.ErrorIs(t, validate(req, true), ErrNoMainBetAmount)

	// side bet maior que o stake deixa principal negativa
	req.SideBetAmount = oneUnit.Mul(decimal.NewFromInt(2))
	assert.ErrorIs(t, validate(req, true), ErrNoMainBetAmount)
}

func TestValidate_MainBetAmountOutOfRange(t *testing.T) {
	// abaixo do mínimo
	req := validReq()
	req.Stake = decimal.New(1, 16)
	assert.ErrorIs(t, validate(req, true), ErrMainBetAmountOutOfRange)

	// acima do teto pra gap=1 (teto ~ 22.23 unidades)
	req = validReq()
	req.Stake = decimal.New(23, 18)
	assert.ErrorIs(t, validate(req, true), ErrMainBetAmountOutOfRange)

	// no teto exato passa
	req = validReq()
	req.Stake = MainBetLimit(testReserve, 1)
	assert.NoError(t, validate(req, true))
}

func TestValidate_InsufficientReserve(t *testing.T) {
	// limites derivados do piso do tesouro, mas a reserva disponível na
	// liquidação encolheu e não cobre mais o pior caso (1 unidade com gap=1
	// paga 98.5 unidades)
	req := validReq()
	snap := SnapshotLimits(testReserve, req.Gap(), req.SideBetType)
	require.True(t, req.MainBetAmount().LessThanOrEqual(snap.MainBetMax))

	available := decimal.New(30, 18) // 30 unidades < 98.5
	err := Validate(req, snap, available, true)
	assert.ErrorIs(t, err, ErrInsufficientReserve)
}

func TestValidate_AmountsAddUp(t *testing.T) {
	req := validReq()
	req.SideBetType = SideBetDigitsMatch
	req.SideBetAmount = decimal.New(5, 17)
	req.Stake = oneUnit.Add(req.SideBetAmount)
	require.NoError(t, validate(req, true))

	assert.True(t, req.MainBetAmount().Add(req.SideBetAmount).Equal(req.Stake))
}

package engine

import "github.com/shopspring/decimal"

// SideBetType identifica a proposição opcional apostada junto com o range principal.
type SideBetType string

const (
	SideBetNone        SideBetType = ""
	SideBetDigitsMatch SideBetType = "digits_match"
	SideBetIconLogo1   SideBetType = "icon_logo1"
	SideBetIconLogo2   SideBetType = "icon_logo2"
)

// BetRequest é a aposta de uma rodada: range principal [lower,upper] em [0,99],
// stake total em unidades mínimas (1 unidade = 10^18) e side bet opcional.
// Imutável depois que a validação começa.
type BetRequest struct {
	Upper         int
	Lower         int
	UserSeed      string
	SideBetType   SideBetType
	SideBetAmount decimal.Decimal
	Stake         decimal.Decimal // valor total anexado à rodada
}

// Gap é a largura inclusiva do range principal.
func (r BetRequest) Gap() int { return r.Upper - r.Lower + 1 }

// MainBetAmount é o que sobra do stake depois de separar o side bet.
func (r BetRequest) MainBetAmount() decimal.Decimal { return r.Stake.Sub(r.SideBetAmount) }

// HasSideBet indica se a rodada carrega um side bet (tipo e valor presentes).
func (r BetRequest) HasSideBet() bool {
	return r.SideBetType != SideBetNone && !r.SideBetAmount.IsZero()
}

// Outcome é o resultado do sorteio de uma rodada.
// RawSpin é a fração exata em [0,1) com 5 casas decimais.
type Outcome struct {
	WinningNumber int
	RawSpin       decimal.Decimal
}

// SettlementResult é o valor terminal de uma rodada avaliada.
type SettlementResult struct {
	Outcome       Outcome
	MainBetWon    bool
	SideBetWon    bool
	MainBetPayout decimal.Decimal
	SideBetPayout decimal.Decimal
	TotalPayout   decimal.Decimal
}

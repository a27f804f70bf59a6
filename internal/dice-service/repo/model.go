package repo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Round é a rodada persistida no Postgres.
type Round struct {
	ID            string
	Origin        string
	Upper         int
	Lower         int
	UserSeed      string
	TxHash        string // hex
	TsMicros      int64
	Stake         decimal.Decimal
	SideBetType   string
	SideBetAmount decimal.Decimal
	Status        string
	RejectReason  string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// preenchidos após o sorteio
	WinningNumber *int
	RawSpin       *string
	MainBetWon    bool
	SideBetWon    bool
	MainBetPayout decimal.Decimal
	SideBetPayout decimal.Decimal
	TotalPayout   decimal.Decimal
}

// Result são os campos de liquidação gravados de uma vez após a avaliação.
type Result struct {
	WinningNumber int
	RawSpin       string
	MainBetWon    bool
	SideBetWon    bool
	MainBetPayout decimal.Decimal
	SideBetPayout decimal.Decimal
	TotalPayout   decimal.Decimal
}

package events

import "github.com/shopspring/decimal"

type BetPlaced struct {
	RoundID       string          `json:"round_id"`
	Origin        string          `json:"origin"`
	MainBetAmount decimal.Decimal `json:"main_bet_amount"`
	Upper         int             `json:"upper"`
	Lower         int             `json:"lower"`
	TsUnixMs      int64           `json:"ts_unix_ms"`
}

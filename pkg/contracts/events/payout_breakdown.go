package events

import "github.com/shopspring/decimal"

type PayoutBreakdown struct {
	RoundID       string          `json:"round_id"`
	TotalPayout   decimal.Decimal `json:"total_payout"`
	MainBetPayout decimal.Decimal `json:"main_bet_payout"`
	SideBetPayout decimal.Decimal `json:"side_bet_payout"`
	TsUnixMs      int64           `json:"ts_unix_ms"`
}

package events

import "github.com/shopspring/decimal"

// Evento publicado após o sorteio, com o resultado final da rodada.
type BetResult struct {
	RoundID       string          `json:"round_id"`
	Origin        string          `json:"origin"`
	RawSpin       string          `json:"raw_spin"` // fração em [0,1) com 5 casas, ex: "0.36511"
	WinningNumber int             `json:"winning_number"`
	TotalPayout   decimal.Decimal `json:"total_payout"`
	TsUnixMs      int64           `json:"ts_unix_ms"`
}

package dto

import "github.com/shopspring/decimal"

type PlaceBetRequest struct {
	Origin     string `json:"origin"`      // endereço do jogador
	CallerKind string `json:"caller_kind"` // "wallet" | "contract"
	TxHash     string `json:"tx_hash"`     // hex da transação que anexou o stake

	Upper         int             `json:"upper"`
	Lower         int             `json:"lower"`
	UserSeed      string          `json:"user_seed"`
	SideBetType   string          `json:"side_bet_type"`
	SideBetAmount decimal.Decimal `json:"side_bet_amount"`
	Stake         decimal.Decimal `json:"stake"` // valor anexado, em unidades mínimas
}

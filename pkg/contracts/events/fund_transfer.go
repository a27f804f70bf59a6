package events

import "github.com/shopspring/decimal"

// Evento informativo das duas pernas de movimentação de fundos
// (stake enviado ao tesouro e pagamento ao vencedor).
type FundTransfer struct {
	RoundID   string          `json:"round_id"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	TsUnixMs  int64           `json:"ts_unix_ms"`
}

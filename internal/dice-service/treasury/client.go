package treasury

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	tdto "github.com/radieske/dice-bet-platform-poc/internal/dice-service/treasury/dto"
)

// Client fala com o treasury-service. O tesouro é o único dono do saldo:
// o dice-service só lê a reserva e pede movimentações (stake-in, payout-out).
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

// ReserveFloor consulta a reserva mínima garantida no momento da chamada.
func (c *Client) ReserveFloor(ctx context.Context) (decimal.Decimal, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/treasury/reserve", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return decimal.Zero, fmt.Errorf("treasury reserve http %d", res.StatusCode)
	}
	var out tdto.ReserveResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return decimal.Zero, err
	}
	return out.ReserveFloor, nil
}

// TakeWager encena o stake inteiro da rodada no tesouro (entrada PENDING),
// idempotente por roundID. Chamado exatamente uma vez, antes da validação.
func (c *Client) TakeWager(ctx context.Context, roundID string, amount decimal.Decimal) error {
	return c.post(ctx, "/treasury/wager", tdto.WagerRequest{RoundID: roundID, Amount: amount})
}

// CommitWager efetiva o stake encenado na reserva, ao final de uma rodada
// liquidada.
func (c *Client) CommitWager(ctx context.Context, roundID string) error {
	return c.post(ctx, "/treasury/wager/commit", tdto.WagerRefRequest{RoundID: roundID})
}

// RefundWager devolve o stake encenado (compensação de rejeição ou de falha
// no pagamento).
func (c *Client) RefundWager(ctx context.Context, roundID string) error {
	return c.post(ctx, "/treasury/wager/refund", tdto.WagerRefRequest{RoundID: roundID})
}

// Payout transfere o prêmio ao jogador debitando a reserva.
func (c *Client) Payout(ctx context.Context, roundID, recipient string, amount decimal.Decimal) error {
	return c.post(ctx, "/treasury/payout", tdto.PayoutRequest{RoundID: roundID, Recipient: recipient, Amount: amount})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("treasury %s http %d", path, res.StatusCode)
	}
	return nil
}

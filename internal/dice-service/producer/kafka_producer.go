package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/dice-bet-platform-poc/pkg/contracts/events"
)

// KafkaPublisher publica os eventos de auditoria da rodada, um writer por
// tópico. Os eventos são observáveis, não fazem parte do fluxo de controle
// e não são reenviados.
type KafkaPublisher struct {
	Source    *kafka.Writer
	Placed    *kafka.Writer
	Result    *kafka.Writer
	Breakdown *kafka.Writer
	Transfers *kafka.Writer
}

func NewKafkaPublisher(source, placed, result, breakdown, transfers *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{
		Source:    source,
		Placed:    placed,
		Result:    result,
		Breakdown: breakdown,
		Transfers: transfers,
	}
}

func (p *KafkaPublisher) PublishBetSource(ctx context.Context, e events.BetSource) error {
	return write(ctx, p.Source, e.RoundID, e)
}

func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, e events.BetPlaced) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Placed, e.RoundID, e)
}

func (p *KafkaPublisher) PublishBetResult(ctx context.Context, e events.BetResult) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Result, e.RoundID, e)
}

func (p *KafkaPublisher) PublishPayoutBreakdown(ctx context.Context, e events.PayoutBreakdown) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Breakdown, e.RoundID, e)
}

func (p *KafkaPublisher) PublishFundTransfer(ctx context.Context, e events.FundTransfer) error {
	e.TsUnixMs = time.Now().UnixMilli()
	return write(ctx, p.Transfers, e.RoundID, e)
}

func write(ctx context.Context, w *kafka.Writer, key string, payload any) error {
	b, _ := json.Marshal(payload)
	return w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b})
}

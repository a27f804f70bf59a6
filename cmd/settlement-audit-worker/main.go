package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/shared/config"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/db"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/kafka"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/logger"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/metrics"
	ev "github.com/radieske/dice-bet-platform-poc/pkg/contracts/events"
)

func main() {
	cfg := config.Load()

	log, err := logger.New("settlement-audit-worker", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres: trilha de auditoria das liquidações
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Kafka consumer: resultados das rodadas
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicBetResult, "settlement-audit")
	defer reader.Close()

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	log.Info("settlement-audit-worker started", zap.String("consume", cfg.TopicBetResult))

	ctx := context.Background()

	// Loop principal: consome resultados e grava a linha de auditoria
	for {
		_, value, err := kafka.ReadNext(ctx, reader)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var result ev.BetResult
		if jerr := json.Unmarshal(value, &result); jerr != nil {
			log.Error("unmarshal bet_result", zap.Error(jerr))
			continue
		}

		if err := insertAudit(ctx, pg, &result); err != nil {
			log.Error("audit insert", zap.String("roundId", result.RoundID), zap.Error(err))
			// Backoff simples para evitar flood em caso de erro
			time.Sleep(500 * time.Millisecond)
			continue
		}

		log.Info("round audited",
			zap.String("roundId", result.RoundID),
			zap.Int("winningNumber", result.WinningNumber),
			zap.String("totalPayout", result.TotalPayout.String()),
		)
	}
}

// insertAudit persiste o resultado na tabela settlement_audit.
// ON CONFLICT ignora reentrega: o tópico é at-least-once.
func insertAudit(ctx context.Context, pg *sql.DB, r *ev.BetResult) error {
	_, err := pg.ExecContext(ctx, `
		INSERT INTO settlement_audit (round_id, origin, raw_spin, winning_number, total_payout, event_ts_ms, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		ON CONFLICT (round_id) DO NOTHING`,
		r.RoundID, r.Origin, r.RawSpin, r.WinningNumber, r.TotalPayout, r.TsUnixMs)
	return err
}

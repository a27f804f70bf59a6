package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/gamestate"
	dhttp "github.com/radieske/dice-bet-platform-poc/internal/dice-service/http"
	kpub "github.com/radieske/dice-bet-platform-poc/internal/dice-service/producer"
	drepo "github.com/radieske/dice-bet-platform-poc/internal/dice-service/repo"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/round"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/treasury"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/cache"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/config"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/db"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/kafka"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/logger"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	log, err := logger.New("dice-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "dice-service"), zap.String("env", cfg.Env))

	// Postgres: rodadas e transições de status
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis: flag on/off do jogo
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writers: um por tópico da trilha de auditoria
	sourceW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSource)
	placedW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
	resultW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResult)
	breakdownW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicPayoutBreakdown)
	transfersW := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicFundTransfer)
	defer sourceW.Close()
	defer placedW.Close()
	defer resultW.Close()
	defer breakdownW.Close()
	defer transfersW.Close()

	// deps
	repository := drepo.NewPostgres(pg)
	state := gamestate.New(rdb)
	tcli := treasury.New(cfg.TreasuryURL)
	publ := kpub.NewKafkaPublisher(sourceW, placedW, resultW, breakdownW, transfersW)

	rounds := round.NewService(log, tcli, repository, publ, state)

	// Servidor de métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})

	// HTTP público
	api := dhttp.NewServer(log, rounds, repository, state, tcli, cfg.AdminToken)
	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}
	log.Info("api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
}

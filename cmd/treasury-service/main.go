package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/shared/config"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/db"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/logger"
	"github.com/radieske/dice-bet-platform-poc/internal/shared/metrics"
	thttp "github.com/radieske/dice-bet-platform-poc/internal/treasury-service/http"
	trepo "github.com/radieske/dice-bet-platform-poc/internal/treasury-service/repo"
)

func main() {
	cfg := config.Load()

	// Inicializa logger estruturado
	log, err := logger.New("treasury-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "treasury-service"), zap.String("env", cfg.Env))

	// Conexão com Postgres para reserva, stakes encenados e ledger
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Instancia repositório e servidor HTTP do tesouro
	repo := trepo.NewPostgres(pg)
	api := thttp.NewServer(log, repo)

	// Servidor de métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	// Servidor HTTP público (API do tesouro)
	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}
	log.Info("api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
}

package round

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/engine"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/metrics"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/repo"
	"github.com/radieske/dice-bet-platform-poc/pkg/contracts/events"
)

// Estados da rodada. REJECTED, PAYOUT_FAILED e SETTLED são terminais.
const (
	StatusReceived       = "RECEIVED"
	StatusStakeForwarded = "STAKE_FORWARDED"
	StatusValidated      = "VALIDATED"
	StatusOutcomeDrawn   = "OUTCOME_DRAWN"
	StatusEvaluated      = "EVALUATED"
	StatusSettled        = "SETTLED"
	StatusRejected       = "REJECTED"
	StatusPayoutFailed   = "PAYOUT_FAILED"
)

// ErrPayoutTransfer sinaliza falha do tesouro ao enviar o prêmio; a rodada
// inteira é abortada e o stake devolvido.
var ErrPayoutTransfer = errors.New("network problem. winnings not sent. returning funds")

// Treasury é o colaborador externo dono do saldo.
type Treasury interface {
	ReserveFloor(ctx context.Context) (decimal.Decimal, error)
	TakeWager(ctx context.Context, roundID string, amount decimal.Decimal) error
	CommitWager(ctx context.Context, roundID string) error
	RefundWager(ctx context.Context, roundID string) error
	Payout(ctx context.Context, roundID, recipient string, amount decimal.Decimal) error
}

// Repository persiste a rodada e suas transições de estado.
type Repository interface {
	Create(ctx context.Context, r *repo.Round) error
	UpdateStatus(ctx context.Context, roundID, status, reason string) error
	SaveResult(ctx context.Context, roundID string, res repo.Result) error
}

// Publisher emite os eventos de auditoria; erros são ignorados pelo fluxo.
type Publisher interface {
	PublishBetSource(ctx context.Context, e events.BetSource) error
	PublishBetPlaced(ctx context.Context, e events.BetPlaced) error
	PublishBetResult(ctx context.Context, e events.BetResult) error
	PublishPayoutBreakdown(ctx context.Context, e events.PayoutBreakdown) error
	PublishFundTransfer(ctx context.Context, e events.FundTransfer) error
}

// GameState expõe o flag administrativo lido no início de cada rodada.
type GameState interface {
	Active(ctx context.Context) (bool, error)
}

// BetContext são os metadados da invocação que acompanham a aposta:
// identidade do chamador e a entropia ligada à requisição.
type BetContext struct {
	Origin           string
	CallerIsContract bool
	TxHash           []byte
	TsMicros         int64
}

// Result é o desfecho devolvido ao chamador de uma rodada liquidada.
type Result struct {
	RoundID       string
	Status        string
	WinningNumber int
	RawSpin       decimal.Decimal
	MainBetWon    bool
	SideBetWon    bool
	MainBetPayout decimal.Decimal
	SideBetPayout decimal.Decimal
	TotalPayout   decimal.Decimal
}

// Service orquestra a rodada inteira: valida, sorteia, avalia e liquida
// contra o tesouro. É o único ponto de entrada por rodada.
type Service struct {
	log      *zap.Logger
	treasury Treasury
	repo     Repository
	publ     Publisher
	state    GameState
}

func NewService(log *zap.Logger, t Treasury, r Repository, p Publisher, gs GameState) *Service {
	return &Service{log: log, treasury: t, repo: r, publ: p, state: gs}
}

// PlaceBet executa uma rodada completa. O stake é encenado no tesouro antes
// da validação (comportamento de referência); qualquer falha posterior
// compensa com o estorno do stake, de modo que a rodada é tudo-ou-nada do
// ponto de vista do jogador.
func (s *Service) PlaceBet(ctx context.Context, req engine.BetRequest, bctx BetContext) (*Result, error) {
	// chamadores não humanos são barrados antes de qualquer movimentação
	if bctx.CallerIsContract {
		return nil, engine.ErrNonHumanCaller
	}

	roundID := uuid.NewString()
	_ = s.publ.PublishBetSource(ctx, events.BetSource{
		RoundID:  roundID,
		Origin:   bctx.Origin,
		TsMicros: bctx.TsMicros,
	})

	// estado administrativo e reserva capturados uma vez por rodada
	active, err := s.state.Active(ctx)
	if err != nil {
		return nil, err
	}
	reserveFloor, err := s.treasury.ReserveFloor(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &repo.Round{
		ID:            roundID,
		Origin:        bctx.Origin,
		Upper:         req.Upper,
		Lower:         req.Lower,
		UserSeed:      req.UserSeed,
		TxHash:        hex.EncodeToString(bctx.TxHash),
		TsMicros:      bctx.TsMicros,
		Stake:         req.Stake,
		SideBetType:   string(req.SideBetType),
		SideBetAmount: req.SideBetAmount,
	}); err != nil {
		return nil, err
	}

	// o stake inteiro vai pro tesouro antes da validação
	if err := s.treasury.TakeWager(ctx, roundID, req.Stake); err != nil {
		_ = s.repo.UpdateStatus(ctx, roundID, StatusRejected, "treasury unavailable")
		return nil, err
	}
	s.transition(ctx, roundID, StatusStakeForwarded, "")
	_ = s.publ.PublishFundTransfer(ctx, events.FundTransfer{
		RoundID:   roundID,
		Recipient: "treasury",
		Amount:    req.Stake,
		Note:      "forwarding stake to treasury",
	})

	snap := engine.SnapshotLimits(reserveFloor, req.Gap(), req.SideBetType)
	if verr := engine.Validate(req, snap, reserveFloor, active); verr != nil {
		s.reject(ctx, roundID, verr)
		return nil, verr
	}
	s.transition(ctx, roundID, StatusValidated, "")
	_ = s.publ.PublishBetPlaced(ctx, events.BetPlaced{
		RoundID:       roundID,
		Origin:        bctx.Origin,
		MainBetAmount: req.MainBetAmount(),
		Upper:         req.Upper,
		Lower:         req.Lower,
	})

	out := engine.Generate(bctx.TxHash, bctx.TsMicros, req.UserSeed)
	s.transition(ctx, roundID, StatusOutcomeDrawn, "")

	res := engine.Evaluate(req, out)
	if err := s.repo.SaveResult(ctx, roundID, repo.Result{
		WinningNumber: out.WinningNumber,
		RawSpin:       out.RawSpin.String(),
		MainBetWon:    res.MainBetWon,
		SideBetWon:    res.SideBetWon,
		MainBetPayout: res.MainBetPayout,
		SideBetPayout: res.SideBetPayout,
		TotalPayout:   res.TotalPayout,
	}); err != nil {
		s.log.Error("save result", zap.String("roundId", roundID), zap.Error(err))
	}
	s.transition(ctx, roundID, StatusEvaluated, "")

	_ = s.publ.PublishBetResult(ctx, events.BetResult{
		RoundID:       roundID,
		Origin:        bctx.Origin,
		RawSpin:       out.RawSpin.String(),
		WinningNumber: out.WinningNumber,
		TotalPayout:   res.TotalPayout,
	})
	_ = s.publ.PublishPayoutBreakdown(ctx, events.PayoutBreakdown{
		RoundID:       roundID,
		TotalPayout:   res.TotalPayout,
		MainBetPayout: res.MainBetPayout,
		SideBetPayout: res.SideBetPayout,
	})

	// o pagamento é a última ação externa; depois dele não há mais decisão
	// de estado. Falha aqui aborta a rodada inteira: o stake ainda está
	// encenado e volta pro jogador.
	if res.TotalPayout.IsPositive() {
		if err := s.treasury.Payout(ctx, roundID, bctx.Origin, res.TotalPayout); err != nil {
			s.log.Error("payout transfer", zap.String("roundId", roundID), zap.Error(err))
			if rerr := s.treasury.RefundWager(ctx, roundID); rerr != nil {
				s.log.Error("stake refund after payout failure", zap.String("roundId", roundID), zap.Error(rerr))
			}
			s.transition(ctx, roundID, StatusPayoutFailed, err.Error())
			metrics.PayoutFailures.Inc()
			return nil, ErrPayoutTransfer
		}
		_ = s.publ.PublishFundTransfer(ctx, events.FundTransfer{
			RoundID:   roundID,
			Recipient: bctx.Origin,
			Amount:    res.TotalPayout,
			Note:      "payout to winner",
		})
	}

	// com o prêmio pago (ou sem prêmio), o stake encenado vira reserva.
	// Falha no commit deixa a entrada PENDING no ledger do tesouro,
	// reconciliável depois; a rodada em si já está decidida.
	if err := s.treasury.CommitWager(ctx, roundID); err != nil {
		s.log.Error("wager commit", zap.String("roundId", roundID), zap.Error(err))
	}
	s.transition(ctx, roundID, StatusSettled, "")
	metrics.RoundsSettled.Inc()

	return &Result{
		RoundID:       roundID,
		Status:        StatusSettled,
		WinningNumber: out.WinningNumber,
		RawSpin:       out.RawSpin,
		MainBetWon:    res.MainBetWon,
		SideBetWon:    res.SideBetWon,
		MainBetPayout: res.MainBetPayout,
		SideBetPayout: res.SideBetPayout,
		TotalPayout:   res.TotalPayout,
	}, nil
}

// reject compensa o stake já encenado e marca a rodada como rejeitada.
func (s *Service) reject(ctx context.Context, roundID string, verr error) {
	if err := s.treasury.RefundWager(ctx, roundID); err != nil {
		s.log.Error("stake refund after rejection", zap.String("roundId", roundID), zap.Error(err))
	}

	reason := verr.Error()
	var ve *engine.ValidationError
	if errors.As(verr, &ve) {
		reason = ve.Reason
		metrics.RoundsRejected.WithLabelValues(ve.Reason).Inc()
	}
	s.transition(ctx, roundID, StatusRejected, reason)
}

func (s *Service) transition(ctx context.Context, roundID, status, reason string) {
	if err := s.repo.UpdateStatus(ctx, roundID, status, reason); err != nil {
		s.log.Error("status transition", zap.String("roundId", roundID),
			zap.String("status", status), zap.Error(err))
	}
}

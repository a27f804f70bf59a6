package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/treasury-service/dto"
	"github.com/radieske/dice-bet-platform-poc/internal/treasury-service/repo"
)

// Repo define a interface de operações do tesouro usadas pelo handler HTTP
type Repo interface {
	ReserveFloor(ctx context.Context) (decimal.Decimal, error)
	Fund(ctx context.Context, amount decimal.Decimal, externalRef string) (decimal.Decimal, error)
	StageWager(ctx context.Context, roundID string, amount decimal.Decimal) error
	CommitWager(ctx context.Context, roundID string) error
	RefundWager(ctx context.Context, roundID string) error
	Payout(ctx context.Context, roundID, recipient string, amount decimal.Decimal) (decimal.Decimal, error)
}

// Server expõe endpoints HTTP para operações do tesouro
type Server struct {
	log  *zap.Logger
	repo Repo
}

// NewServer instancia o servidor HTTP do tesouro
func NewServer(log *zap.Logger, repo Repo) *Server { return &Server{log: log, repo: repo} }

// Router retorna o mux HTTP com as rotas da API do tesouro
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/treasury/reserve", s.reserve)           // GET
	mux.HandleFunc("/treasury/fund", s.fund)                 // POST
	mux.HandleFunc("/treasury/wager", s.wager)               // POST
	mux.HandleFunc("/treasury/wager/commit", s.wagerCommit)  // POST
	mux.HandleFunc("/treasury/wager/refund", s.wagerRefund)  // POST
	mux.HandleFunc("/treasury/payout", s.payout)             // POST
	return mux
}

// reserve retorna o piso de reserva corrente (stakes PENDING excluídos)
func (s *Server) reserve(w http.ResponseWriter, r *http.Request) {
	floor, err := s.repo.ReserveFloor(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dto.ReserveResponse{ReserveFloor: floor})
}

// fund credita um aporte administrativo na reserva
func (s *Server) fund(w http.ResponseWriter, r *http.Request) {
	var req dto.FundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if !req.Amount.IsPositive() {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	newReserve, err := s.repo.Fund(r.Context(), req.Amount, req.ExternalRef)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("treasury funded", zap.String("amount", req.Amount.String()))
	writeJSON(w, dto.ReserveResponse{ReserveFloor: newReserve})
}

// wager encena o stake de uma rodada como PENDING
func (s *Server) wager(w http.ResponseWriter, r *http.Request) {
	var req dto.WagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.RoundID == "" || req.Amount.IsNegative() {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := s.repo.StageWager(r.Context(), req.RoundID, req.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, dto.WagerResponse{RoundID: req.RoundID, Status: "PENDING"})
}

// wagerCommit efetiva o stake encenado de uma rodada liquidada
func (s *Server) wagerCommit(w http.ResponseWriter, r *http.Request) {
	var req dto.WagerRefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.RoundID == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := s.repo.CommitWager(r.Context(), req.RoundID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "wager not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, dto.WagerResponse{RoundID: req.RoundID, Status: "COMMITTED"})
}

// wagerRefund devolve o stake encenado ao jogador
func (s *Server) wagerRefund(w http.ResponseWriter, r *http.Request) {
	var req dto.WagerRefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.RoundID == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := s.repo.RefundWager(r.Context(), req.RoundID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "wager not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, dto.WagerResponse{RoundID: req.RoundID, Status: "REFUNDED"})
}

// payout debita o prêmio da reserva e envia ao jogador
func (s *Server) payout(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.RoundID == "" || req.Recipient == "" || !req.Amount.IsPositive() {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	newReserve, err := s.repo.Payout(r.Context(), req.RoundID, req.Recipient, req.Amount)
	if err != nil {
		if errors.Is(err, repo.ErrInsufficientReserve) {
			http.Error(w, "insufficient reserve", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("payout sent",
		zap.String("roundId", req.RoundID),
		zap.String("recipient", req.Recipient),
		zap.String("amount", req.Amount.String()))
	writeJSON(w, dto.PayoutResponse{RoundID: req.RoundID, Recipient: req.Recipient, Amount: req.Amount, NewReserve: newReserve})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

package http

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/dto"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/engine"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/gamestate"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/repo"
	"github.com/radieske/dice-bet-platform-poc/internal/dice-service/round"
)

// Treasury é a dependência mínima dos endpoints administrativos: ligar o
// jogo exige o tesouro alcançável.
type Treasury interface {
	ReserveFloor(ctx context.Context) (decimal.Decimal, error)
}

type Server struct {
	log        *zap.Logger
	rounds     *round.Service
	repo       *repo.Postgres
	state      *gamestate.Store
	treasury   Treasury
	adminToken string
}

func NewServer(log *zap.Logger, rounds *round.Service, r *repo.Postgres, gs *gamestate.Store, t Treasury, adminToken string) *Server {
	return &Server{log: log, rounds: rounds, repo: r, state: gs, treasury: t, adminToken: adminToken}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bets", s.placeBet)  // POST
	mux.HandleFunc("/bets/", s.getRound) // GET /bets/{id}

	// superfície administrativa do dono do jogo
	mux.HandleFunc("/admin/game/on", s.adminOnly(s.gameOn))   // POST
	mux.HandleFunc("/admin/game/off", s.adminOnly(s.gameOff)) // POST
	mux.HandleFunc("/admin/game", s.getGame)                  // GET
	mux.HandleFunc("/admin/multipliers", s.getMultipliers)    // GET
	return mux
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Origin == "" || req.TxHash == "" || !req.Stake.IsPositive() {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	txHash, err := hex.DecodeString(req.TxHash)
	if err != nil {
		http.Error(w, "tx_hash must be hex", http.StatusBadRequest)
		return
	}

	bet := engine.BetRequest{
		Upper:         req.Upper,
		Lower:         req.Lower,
		UserSeed:      req.UserSeed,
		SideBetType:   engine.SideBetType(req.SideBetType),
		SideBetAmount: req.SideBetAmount,
		Stake:         req.Stake,
	}
	bctx := round.BetContext{
		Origin:           req.Origin,
		CallerIsContract: req.CallerKind == "contract",
		TxHash:           txHash,
		TsMicros:         requestTimestamp(),
	}

	res, err := s.rounds.PlaceBet(r.Context(), bet, bctx)
	if err != nil {
		s.writeRoundError(w, err)
		return
	}

	writeJSON(w, dto.PlaceBetResponse{
		RoundID:       res.RoundID,
		Status:        res.Status,
		WinningNumber: &res.WinningNumber,
		RawSpin:       res.RawSpin.String(),
		MainBetWon:    res.MainBetWon,
		SideBetWon:    res.SideBetWon,
		MainBetPayout: res.MainBetPayout,
		SideBetPayout: res.SideBetPayout,
		TotalPayout:   res.TotalPayout,
	})
}

// writeRoundError mapeia a taxonomia de rejeições pra respostas HTTP.
// Toda falha é dura: nenhuma aposta fica parcialmente liquidada.
func (s *Server) writeRoundError(w http.ResponseWriter, err error) {
	var verr *engine.ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusUnprocessableEntity
		if verr == engine.ErrNonHumanCaller {
			status = http.StatusForbidden
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(dto.RejectResponse{Reason: verr.Reason, Message: verr.Error()})
	case errors.Is(err, round.ErrPayoutTransfer):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		s.log.Error("place bet", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) getRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// path: /bets/{id}
	id := r.URL.Path[len("/bets/"):]
	if id == "" {
		http.Error(w, "roundId required", http.StatusBadRequest)
		return
	}

	rd, err := s.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, dto.RoundStatusResponse{
		RoundID:       rd.ID,
		Status:        rd.Status,
		RejectReason:  rd.RejectReason,
		WinningNumber: rd.WinningNumber,
		RawSpin:       rd.RawSpin,
		TotalPayout:   rd.TotalPayout,
	})
}

func (s *Server) gameOn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// o jogo só liga com o tesouro alcançável
	if _, err := s.treasury.ReserveFloor(r.Context()); err != nil {
		http.Error(w, "treasury unreachable", http.StatusConflict)
		return
	}
	if err := s.state.SetActive(r.Context(), true); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dto.GameStateResponse{Active: true})
}

func (s *Server) gameOff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := s.state.SetActive(r.Context(), false); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dto.GameStateResponse{Active: false})
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	active, err := s.state.Active(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dto.GameStateResponse{Active: active})
}

func (s *Server) getMultipliers(w http.ResponseWriter, _ *http.Request) {
	table := engine.SideBetMultipliers()
	out := dto.MultipliersResponse{Multipliers: make(map[string]decimal.Decimal, len(table))}
	for t, m := range table {
		out.Multipliers[string(t)] = m
	}
	writeJSON(w, out)
}

// requestTimestamp é o timestamp da invocação em microssegundos; junto com o
// tx_hash e a seed do usuário forma a entropia da rodada. Fica gravado na
// rodada pra permitir replay determinístico.
func requestTimestamp() int64 {
	return time.Now().UnixMicro()
}

// adminOnly protege os endpoints do dono do jogo via token simples.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Token") != s.adminToken {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

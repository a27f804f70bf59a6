package repo

import (
	"context"
	"database/sql"
)

// Postgres implementa a persistência das rodadas do dice.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Create insere a rodada recém-recebida com status RECEIVED.
func (p *Postgres) Create(ctx context.Context, r *Round) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO rounds (id,origin,upper_num,lower_num,user_seed,tx_hash,ts_micros,
			stake,side_bet_type,side_bet_amount,status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,'RECEIVED')`,
		r.ID, r.Origin, r.Upper, r.Lower, r.UserSeed, r.TxHash, r.TsMicros,
		r.Stake, r.SideBetType, r.SideBetAmount,
	)
	return err
}

// UpdateStatus grava a transição de estado da rodada e o histórico dela.
func (p *Postgres) UpdateStatus(ctx context.Context, roundID, status, reason string) error {
	if _, err := p.db.ExecContext(ctx,
		`UPDATE rounds SET status=$1, reject_reason=$2, updated_at=NOW() WHERE id=$3`,
		status, reason, roundID); err != nil {
		return err
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO round_transitions (round_id, new_status, reason, created_at)
		VALUES ($1,$2,$3,NOW())`, roundID, status, reason)
	return err
}

// SaveResult grava o desfecho da avaliação (sorteio + pagamentos).
func (p *Postgres) SaveResult(ctx context.Context, roundID string, res Result) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE rounds SET winning_number=$1, raw_spin=$2, main_bet_won=$3, side_bet_won=$4,
			main_bet_payout=$5, side_bet_payout=$6, total_payout=$7, updated_at=NOW()
		WHERE id=$8`,
		res.WinningNumber, res.RawSpin, res.MainBetWon, res.SideBetWon,
		res.MainBetPayout, res.SideBetPayout, res.TotalPayout, roundID,
	)
	return err
}

// Get retorna a rodada pelo id.
func (p *Postgres) Get(ctx context.Context, roundID string) (*Round, error) {
	var r Round
	err := p.db.QueryRowContext(ctx, `
		SELECT id,origin,upper_num,lower_num,user_seed,tx_hash,ts_micros,
			stake,side_bet_type,side_bet_amount,status,COALESCE(reject_reason,''),
			winning_number,raw_spin,
			COALESCE(main_bet_won,false),COALESCE(side_bet_won,false),
			COALESCE(main_bet_payout,0),COALESCE(side_bet_payout,0),COALESCE(total_payout,0),
			created_at,updated_at
		FROM rounds WHERE id=$1`, roundID).Scan(
		&r.ID, &r.Origin, &r.Upper, &r.Lower, &r.UserSeed, &r.TxHash, &r.TsMicros,
		&r.Stake, &r.SideBetType, &r.SideBetAmount, &r.Status, &r.RejectReason,
		&r.WinningNumber, &r.RawSpin,
		&r.MainBetWon, &r.SideBetWon,
		&r.MainBetPayout, &r.SideBetPayout, &r.TotalPayout,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

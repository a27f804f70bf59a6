package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

// Postgres implementa o tesouro compartilhado: reserva, stakes encenados e
// ledger. Mutações concorrentes na reserva são serializadas pelo lock
// pessimista na linha única da tabela treasury.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

var (
	ErrInsufficientReserve = errors.New("insufficient reserve")
	ErrNotFound            = errors.New("not found")
)

// ReserveFloor retorna a reserva mínima garantida no momento da chamada.
// Stakes encenados (PENDING) não contam: só viram reserva no commit.
func (p *Postgres) ReserveFloor(ctx context.Context) (decimal.Decimal, error) {
	var reserve decimal.Decimal
	err := p.db.QueryRowContext(ctx, `SELECT reserve FROM treasury WHERE id=1`).Scan(&reserve)
	return reserve, err
}

// Fund credita a reserva (aporte administrativo) e registra no ledger.
func (p *Postgres) Fund(ctx context.Context, amount decimal.Decimal, externalRef string) (decimal.Decimal, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var reserve decimal.Decimal
	if err = tx.QueryRowContext(ctx, `SELECT reserve FROM treasury WHERE id=1 FOR UPDATE`).Scan(&reserve); err != nil {
		return decimal.Zero, err
	}

	newReserve := reserve.Add(amount)
	if _, err = tx.ExecContext(ctx, `UPDATE treasury SET reserve=$1, updated_at=NOW() WHERE id=1`, newReserve); err != nil {
		return decimal.Zero, err
	}

	if _, err = tx.ExecContext(ctx, `INSERT INTO treasury_ledger(operation_type, amount, description) VALUES('FUND',$1,$2)`,
		amount, "fund:"+externalRef); err != nil {
		return decimal.Zero, err
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return newReserve, nil
}

// StageWager encena o stake de uma rodada como entrada PENDING.
// Idempotente por roundID: repetir a chamada não duplica o stake.
func (p *Postgres) StageWager(ctx context.Context, roundID string, amount decimal.Decimal) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRowContext(ctx, `SELECT round_id FROM treasury_wagers WHERE round_id=$1`, roundID).Scan(&exists)
	if err == nil {
		return nil // já encenado
	} else if err != sql.ErrNoRows {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO treasury_wagers(round_id, amount, status) VALUES($1,$2,'PENDING')`,
		roundID, amount); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO treasury_ledger(operation_type, amount, description, round_id) VALUES('WAGER_IN',$1,$2,$3)`,
		amount, "stake staged", roundID); err != nil {
		return err
	}

	return tx.Commit()
}

// CommitWager efetiva um stake encenado: a entrada vira COMMITTED e o valor
// entra na reserva. Idempotente: se já estiver committed, não faz nada.
func (p *Postgres) CommitWager(ctx context.Context, roundID string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	var amount decimal.Decimal
	if err = tx.QueryRowContext(ctx,
		`SELECT amount, status FROM treasury_wagers WHERE round_id=$1 FOR UPDATE`, roundID).Scan(&amount, &status); err != nil {
		return ErrNotFound
	}

	if status != "PENDING" {
		return nil
	}

	if _, err = tx.ExecContext(ctx, `UPDATE treasury_wagers SET status='COMMITTED' WHERE round_id=$1`, roundID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE treasury SET reserve = reserve + $1, updated_at=NOW() WHERE id=1`, amount); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO treasury_ledger(operation_type, amount, description, round_id) VALUES('COMMIT',$1,$2,$3)`,
		amount, "stake committed to reserve", roundID); err != nil {
		return err
	}

	return tx.Commit()
}

// RefundWager devolve um stake encenado (rodada rejeitada ou pagamento
// falhou). Idempotente: se já estiver refunded, não faz nada.
func (p *Postgres) RefundWager(ctx context.Context, roundID string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	var amount decimal.Decimal
	if err = tx.QueryRowContext(ctx,
		`SELECT amount, status FROM treasury_wagers WHERE round_id=$1 FOR UPDATE`, roundID).Scan(&amount, &status); err != nil {
		return ErrNotFound
	}

	if status != "PENDING" {
		return nil
	}

	if _, err = tx.ExecContext(ctx, `UPDATE treasury_wagers SET status='REFUNDED' WHERE round_id=$1`, roundID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO treasury_ledger(operation_type, amount, description, round_id) VALUES('REFUND',$1,$2,$3)`,
		amount, "stake returned to player", roundID); err != nil {
		return err
	}

	return tx.Commit()
}

// Payout debita o prêmio da reserva e registra a transferência ao jogador.
// Falha com ErrInsufficientReserve se a reserva não cobre o valor.
func (p *Postgres) Payout(ctx context.Context, roundID, recipient string, amount decimal.Decimal) (decimal.Decimal, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	var reserve decimal.Decimal
	if err = tx.QueryRowContext(ctx, `SELECT reserve FROM treasury WHERE id=1 FOR UPDATE`).Scan(&reserve); err != nil {
		return decimal.Zero, err
	}

	if reserve.LessThan(amount) {
		return decimal.Zero, ErrInsufficientReserve
	}

	newReserve := reserve.Sub(amount)
	if _, err = tx.ExecContext(ctx, `UPDATE treasury SET reserve=$1, updated_at=NOW() WHERE id=1`, newReserve); err != nil {
		return decimal.Zero, err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO treasury_ledger(operation_type, amount, description, round_id) VALUES('PAYOUT',$1,$2,$3)`,
		amount, "payout:"+recipient, roundID); err != nil {
		return decimal.Zero, err
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, err
	}
	return newReserve, nil
}

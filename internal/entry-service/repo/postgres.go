package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
)

// Postgres implementa a persistência de bilhetes e apostas canônicas
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

var ErrBillNotFound = errors.New("bill not found")

// CreateBill insere o bilhete e o lote de apostas em uma única transação.
// O created_at de cada aposta recebe offset de 1ms pelo índice, preservando
// a ordem de inserção dentro do bilhete.
func (p *Postgres) CreateBill(ctx context.Context, b *Bill, ws []bet.CanonicalWager) (string, []bet.CanonicalWager, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", nil, err
	}
	defer tx.Rollback()

	billID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bills (id,dealer_id,category,label,submitted_by,cutoff_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		billID, b.DealerID, b.Category, b.Label, b.SubmittedBy, b.CutoffAt,
	)
	if err != nil {
		return "", nil, err
	}

	out, err := insertBatch(ctx, tx, billID, ws)
	if err != nil {
		return "", nil, err
	}

	if err := tx.Commit(); err != nil {
		return "", nil, err
	}
	return billID, out, nil
}

// GetBill retorna os metadados do bilhete
func (p *Postgres) GetBill(ctx context.Context, billID string) (*Bill, error) {
	var b Bill
	err := p.db.QueryRowContext(ctx, `
		SELECT id,dealer_id,category,label,submitted_by,cutoff_at,created_at
		FROM bills WHERE id=$1`, billID).
		Scan(&b.ID, &b.DealerID, &b.Category, &b.Label, &b.SubmittedBy, &b.CutoffAt, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByBill retorna as apostas ativas do bilhete na ordem de criação
func (p *Postgres) ListByBill(ctx context.Context, billID string) ([]bet.CanonicalWager, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT `+wagerColumns+`
		FROM wagers WHERE bill_id=$1 AND is_deleted=false
		ORDER BY created_at`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWagers(rows)
}

// Supersede executa a edição de uma entrada: marca como deletadas todas as
// apostas do entry_id antigo e insere o novo lote na mesma transação.
// Nunca há mutação de campos in-place: a contagem de apostas pode mudar.
func (p *Postgres) Supersede(ctx context.Context, entryID, billID string, ws []bet.CanonicalWager) ([]bet.CanonicalWager, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE wagers SET is_deleted=true WHERE entry_id=$1 AND bill_id=$2`, entryID, billID); err != nil {
		return nil, err
	}

	out, err := insertBatch(ctx, tx, billID, ws)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOpenByCategory retorna apostas ativas ainda não liquidadas da categoria
func (p *Postgres) ListOpenByCategory(ctx context.Context, category string) ([]bet.CanonicalWager, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT `+wagerColumns+`
		FROM wagers WHERE category=$1 AND is_deleted=false AND is_winner=false
		ORDER BY created_at`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWagers(rows)
}

// MarkWinner grava o resultado de liquidação de uma aposta
func (p *Postgres) MarkWinner(ctx context.Context, wagerID string, prize float64) error {
	_, err := p.db.ExecContext(ctx,
		`UPDATE wagers SET is_winner=true, prize_amount=$2 WHERE id=$1`, wagerID, prize)
	return err
}

const wagerColumns = `id,entry_id,bill_id,category,bet_type,numbers,amount,
	commission_rate,commission_amount,is_fixed_commission,
	display_numbers,display_amount,display_bet_type,
	created_at,is_deleted,is_winner,prize_amount`

func insertBatch(ctx context.Context, tx *sql.Tx, billID string, ws []bet.CanonicalWager) ([]bet.CanonicalWager, error) {
	out := make([]bet.CanonicalWager, len(ws))
	for i, w := range ws {
		w.ID = uuid.NewString()
		w.BillID = billID
		w.CreatedAt = w.CreatedAt.Add(time.Duration(i) * time.Millisecond)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO wagers (`+wagerColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			w.ID, w.EntryID, w.BillID, w.Category, w.BetType, w.Numbers, w.Amount,
			w.CommissionRate, w.CommissionAmount, w.IsFixedCommission,
			w.DisplayNumbers, w.DisplayAmount, w.DisplayBetType,
			w.CreatedAt, w.IsDeleted, w.IsWinner, w.PrizeAmount,
		)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func scanWagers(rows *sql.Rows) ([]bet.CanonicalWager, error) {
	var out []bet.CanonicalWager
	for rows.Next() {
		var w bet.CanonicalWager
		if err := rows.Scan(
			&w.ID, &w.EntryID, &w.BillID, &w.Category, &w.BetType, &w.Numbers, &w.Amount,
			&w.CommissionRate, &w.CommissionAmount, &w.IsFixedCommission,
			&w.DisplayNumbers, &w.DisplayAmount, &w.DisplayBetType,
			&w.CreatedAt, &w.IsDeleted, &w.IsWinner, &w.PrizeAmount,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

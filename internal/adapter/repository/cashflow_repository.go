package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
)

// ErrMovementNotFound é retornado quando o movimento não existe
var ErrMovementNotFound = errors.New("movimento não encontrado")

// CashflowRepository implementa a interface cashflow.Repository
type CashflowRepository struct {
	db *pgxpool.Pool
}

// NewCashflowRepository cria uma nova instância de CashflowRepository
func NewCashflowRepository(db *pgxpool.Pool) cashflow.Repository {
	return &CashflowRepository{db: db}
}

const movementColumns = `id, date, description, origin, sub_origin, amount, status, created_at, updated_at`

// Create implementa cashflow.Repository.Create
func (r *CashflowRepository) Create(ctx context.Context, m *cashflow.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cash_movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Date, m.Description, m.Origin, m.SubOrigin, m.Amount,
		m.Status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar movimento: %w", err)
	}
	return nil
}

// FindByID implementa cashflow.Repository.FindByID
func (r *CashflowRepository) FindByID(ctx context.Context, id string) (*cashflow.Movement, error) {
	row := r.db.QueryRow(ctx, `SELECT `+movementColumns+` FROM cash_movements WHERE id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMovementNotFound
		}
		return nil, fmt.Errorf("erro ao buscar movimento: %w", err)
	}
	return m, nil
}

// List implementa cashflow.Repository.List
func (r *CashflowRepository) List(ctx context.Context) ([]cashflow.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+movementColumns+` FROM cash_movements ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// FindByPeriod implementa cashflow.Repository.FindByPeriod
func (r *CashflowRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]cashflow.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+movementColumns+` FROM cash_movements WHERE date >= $1 AND date <= $2 ORDER BY date DESC`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos do período: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// Update implementa cashflow.Repository.Update
func (r *CashflowRepository) Update(ctx context.Context, m *cashflow.Movement) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cash_movements SET
			date = $2, description = $3, origin = $4, sub_origin = $5,
			amount = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		m.ID, m.Date, m.Description, m.Origin, m.SubOrigin, m.Amount,
		m.Status, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar movimento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMovementNotFound
	}
	return nil
}

// Delete implementa cashflow.Repository.Delete
func (r *CashflowRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover movimento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMovementNotFound
	}
	return nil
}

func collectMovements(rows pgx.Rows) ([]cashflow.Movement, error) {
	movements := make([]cashflow.Movement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimento: %w", err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer movimentos: %w", err)
	}
	return movements, nil
}

func scanMovement(row pgx.Row) (*cashflow.Movement, error) {
	var m cashflow.Movement
	var subOrigin *string
	err := row.Scan(
		&m.ID, &m.Date, &m.Description, &m.Origin, &subOrigin, &m.Amount,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.SubOrigin = cashflow.SubOrigin(deref(subOrigin))
	return &m, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
)

// ErrSaleNotFound é retornado quando a venda não existe
var ErrSaleNotFound = errors.New("venda não encontrada")

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

const saleColumns = `
	id, customer_name, customer_phone, customer_email, items, subtotal,
	discount, discount_type, total, payment_method, status, notes,
	seller_id, seller_name, created_at, updated_at`

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		s.ID, s.CustomerName, s.CustomerPhone, s.CustomerEmail, items,
		s.Subtotal, s.Discount, s.DiscountType, s.Total, s.PaymentMethod,
		s.Status, s.Notes, nullIfEmpty(s.SellerID), s.SellerName,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}
	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]sale.Sale, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// FindByClothingItem implementa sale.Repository.FindByClothingItem
func (r *SaleRepository) FindByClothingItem(ctx context.Context, clothingItemID string) ([]sale.Sale, error) {
	filter, err := json.Marshal([]map[string]string{{"clothing_item_id": clothingItemID}})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar filtro de itens: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE items @> $1 ORDER BY created_at DESC`,
		filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas da peça: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET
			customer_name = $2, customer_phone = $3, customer_email = $4,
			items = $5, subtotal = $6, discount = $7, discount_type = $8,
			total = $9, payment_method = $10, status = $11, notes = $12,
			seller_id = $13, seller_name = $14, updated_at = $15
		WHERE id = $1`,
		s.ID, s.CustomerName, s.CustomerPhone, s.CustomerEmail, items,
		s.Subtotal, s.Discount, s.DiscountType, s.Total, s.PaymentMethod,
		s.Status, s.Notes, nullIfEmpty(s.SellerID), s.SellerName, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// UpdateStatus implementa sale.Repository.UpdateStatus
func (r *SaleRepository) UpdateStatus(ctx context.Context, id string, status sale.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	var itemsJSON []byte
	var customerPhone, customerEmail, notes, sellerID, sellerName *string

	err := row.Scan(
		&s.ID, &s.CustomerName, &customerPhone, &customerEmail, &itemsJSON,
		&s.Subtotal, &s.Discount, &s.DiscountType, &s.Total,
		&s.PaymentMethod, &s.Status, &notes, &sellerID, &sellerName,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.CustomerPhone = deref(customerPhone)
	s.CustomerEmail = deref(customerEmail)
	s.Notes = deref(notes)
	s.SellerID = deref(sellerID)
	s.SellerName = deref(sellerName)

	if err := json.Unmarshal(itemsJSON, &s.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens da venda: %w", err)
	}
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]sale.Sale, error) {
	sales := make([]sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer vendas: %w", err)
	}
	return sales, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

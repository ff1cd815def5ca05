package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
)

// Erros específicos do repositório de peças
var (
	ErrClothingNotFound      = errors.New("peça não encontrada")
	ErrClothingDuplicateCode = errors.New("já existe uma peça com este código")
)

// ClothingRepository implementa a interface clothing.Repository
type ClothingRepository struct {
	db *pgxpool.Pool
}

// NewClothingRepository cria uma nova instância de ClothingRepository
func NewClothingRepository(db *pgxpool.Pool) clothing.Repository {
	return &ClothingRepository{db: db}
}

const clothingColumns = `
	id, code, name, description, category, brand, supplier, collection,
	season, variations, cost_price, selling_price, freight_cost,
	freight_quantity, packaging_cost, extra_costs, credit_fee, status,
	tags, created_at, updated_at`

// Create implementa clothing.Repository.Create
func (r *ClothingRepository) Create(ctx context.Context, item *clothing.Item) error {
	variations, err := json.Marshal(item.Variations)
	if err != nil {
		return fmt.Errorf("erro ao converter variações para JSON: %w", err)
	}
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("erro ao converter tags para JSON: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO clothing_items (`+clothingColumns+`
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21
		)`,
		item.ID, item.Code, item.Name, item.Description, item.Category,
		item.Brand, item.Supplier, item.Collection, item.Season, variations,
		item.CostPrice, item.SellingPrice, item.FreightCost,
		item.FreightQuantity, item.PackagingCost, item.ExtraCosts,
		item.CreditFee, item.Status, tags, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar peça: %w", err)
	}
	return nil
}

// FindByID implementa clothing.Repository.FindByID
func (r *ClothingRepository) FindByID(ctx context.Context, id string) (*clothing.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+clothingColumns+` FROM clothing_items WHERE id = $1`, id)
	item, err := scanClothingItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClothingNotFound
		}
		return nil, fmt.Errorf("erro ao buscar peça: %w", err)
	}
	return item, nil
}

// FindByCode implementa clothing.Repository.FindByCode
func (r *ClothingRepository) FindByCode(ctx context.Context, code string) (*clothing.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+clothingColumns+` FROM clothing_items WHERE code = $1`, code)
	item, err := scanClothingItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClothingNotFound
		}
		return nil, fmt.Errorf("erro ao buscar peça pelo código: %w", err)
	}
	return item, nil
}

// List implementa clothing.Repository.List
func (r *ClothingRepository) List(ctx context.Context) ([]clothing.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clothingColumns+` FROM clothing_items ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar peças: %w", err)
	}
	defer rows.Close()
	return collectClothingItems(rows)
}

// FindBySupplier implementa clothing.Repository.FindBySupplier
func (r *ClothingRepository) FindBySupplier(ctx context.Context, supplier string) ([]clothing.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clothingColumns+` FROM clothing_items WHERE supplier = $1 ORDER BY created_at DESC`,
		supplier)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar peças do fornecedor: %w", err)
	}
	defer rows.Close()
	return collectClothingItems(rows)
}

// Update implementa clothing.Repository.Update
func (r *ClothingRepository) Update(ctx context.Context, item *clothing.Item) error {
	variations, err := json.Marshal(item.Variations)
	if err != nil {
		return fmt.Errorf("erro ao converter variações para JSON: %w", err)
	}
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("erro ao converter tags para JSON: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE clothing_items SET
			code = $2, name = $3, description = $4, category = $5, brand = $6,
			supplier = $7, collection = $8, season = $9, variations = $10,
			cost_price = $11, selling_price = $12, freight_cost = $13,
			freight_quantity = $14, packaging_cost = $15, extra_costs = $16,
			credit_fee = $17, status = $18, tags = $19, updated_at = $20
		WHERE id = $1`,
		item.ID, item.Code, item.Name, item.Description, item.Category,
		item.Brand, item.Supplier, item.Collection, item.Season, variations,
		item.CostPrice, item.SellingPrice, item.FreightCost,
		item.FreightQuantity, item.PackagingCost, item.ExtraCosts,
		item.CreditFee, item.Status, tags, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar peça: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClothingNotFound
	}
	return nil
}

// UpdateStatus implementa clothing.Repository.UpdateStatus
func (r *ClothingRepository) UpdateStatus(ctx context.Context, id string, status clothing.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clothing_items SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da peça: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClothingNotFound
	}
	return nil
}

// Delete implementa clothing.Repository.Delete
func (r *ClothingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clothing_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover peça: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClothingNotFound
	}
	return nil
}

func scanClothingItem(row pgx.Row) (*clothing.Item, error) {
	var item clothing.Item
	var variationsJSON, tagsJSON []byte
	var description, brand, collection, season *string

	err := row.Scan(
		&item.ID, &item.Code, &item.Name, &description, &item.Category,
		&brand, &item.Supplier, &collection, &season,
		&variationsJSON, &item.CostPrice, &item.SellingPrice,
		&item.FreightCost, &item.FreightQuantity, &item.PackagingCost,
		&item.ExtraCosts, &item.CreditFee, &item.Status, &tagsJSON,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	item.Description = deref(description)
	item.Brand = deref(brand)
	item.Collection = deref(collection)
	item.Season = deref(season)

	if err := json.Unmarshal(variationsJSON, &item.Variations); err != nil {
		return nil, fmt.Errorf("erro ao converter variações: %w", err)
	}
	if err := json.Unmarshal(tagsJSON, &item.Tags); err != nil {
		return nil, fmt.Errorf("erro ao converter tags: %w", err)
	}
	return &item, nil
}

func collectClothingItems(rows pgx.Rows) ([]clothing.Item, error) {
	items := make([]clothing.Item, 0)
	for rows.Next() {
		item, err := scanClothingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler peça: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer peças: %w", err)
	}
	return items, nil
}

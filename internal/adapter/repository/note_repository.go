package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jeacloset/erp-vestuario/internal/domain/note"
)

// ErrNoteNotFound é retornado quando a nota não existe
var ErrNoteNotFound = errors.New("nota não encontrada")

// NoteRepository implementa a interface note.Repository
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository cria uma nova instância de NoteRepository
func NewNoteRepository(db *pgxpool.Pool) note.Repository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, title, content, type, priority, status, related_tab, created_at, updated_at`

// Create implementa note.Repository.Create
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notes (`+noteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		n.ID, n.Title, n.Content, n.Type, n.Priority, n.Status,
		n.RelatedTab, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar nota: %w", err)
	}
	return nil
}

// FindByID implementa note.Repository.FindByID
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*note.Note, error) {
	row := r.db.QueryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, id)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("erro ao buscar nota: %w", err)
	}
	return n, nil
}

// List implementa note.Repository.List
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	rows, err := r.db.Query(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notas: %w", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler nota: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer notas: %w", err)
	}
	return notes, nil
}

// Update implementa note.Repository.Update
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notes SET
			title = $2, content = $3, type = $4, priority = $5, status = $6,
			related_tab = $7, updated_at = $8
		WHERE id = $1`,
		n.ID, n.Title, n.Content, n.Type, n.Priority, n.Status,
		n.RelatedTab, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar nota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// Delete implementa note.Repository.Delete
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover nota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*note.Note, error) {
	var n note.Note
	var relatedTab *string
	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Type, &n.Priority, &n.Status,
		&relatedTab, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	n.RelatedTab = deref(relatedTab)
	return &n, nil
}

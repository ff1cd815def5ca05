package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/note"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// Fakes em memória para exercitar os controllers sem banco de dados

type fakeClothingRepo struct {
	items map[string]clothing.Item
	order []string
}

func newFakeClothingRepo(items ...clothing.Item) *fakeClothingRepo {
	r := &fakeClothingRepo{items: make(map[string]clothing.Item)}
	for _, item := range items {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *fakeClothingRepo) Create(_ context.Context, item *clothing.Item) error {
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeClothingRepo) FindByID(_ context.Context, id string) (*clothing.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrClothingNotFound
	}
	return &item, nil
}

func (r *fakeClothingRepo) FindByCode(_ context.Context, code string) (*clothing.Item, error) {
	for _, id := range r.order {
		if item := r.items[id]; item.Code == code {
			return &item, nil
		}
	}
	return nil, repository.ErrClothingNotFound
}

func (r *fakeClothingRepo) List(_ context.Context) ([]clothing.Item, error) {
	items := make([]clothing.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *fakeClothingRepo) FindBySupplier(_ context.Context, supplier string) ([]clothing.Item, error) {
	items := make([]clothing.Item, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.Supplier == supplier {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeClothingRepo) Update(_ context.Context, item *clothing.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return repository.ErrClothingNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeClothingRepo) UpdateStatus(_ context.Context, id string, status clothing.Status) error {
	item, ok := r.items[id]
	if !ok {
		return repository.ErrClothingNotFound
	}
	item.Status = status
	r.items[id] = item
	return nil
}

func (r *fakeClothingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrClothingNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales map[string]sale.Sale
	order []string
}

func newFakeSaleRepo(sales ...sale.Sale) *fakeSaleRepo {
	r := &fakeSaleRepo{sales: make(map[string]sale.Sale)}
	for _, s := range sales {
		r.sales[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

func (r *fakeSaleRepo) Create(_ context.Context, s *sale.Sale) error {
	r.sales[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	return &s, nil
}

func (r *fakeSaleRepo) List(_ context.Context) ([]sale.Sale, error) {
	sales := make([]sale.Sale, 0, len(r.order))
	for _, id := range r.order {
		sales = append(sales, r.sales[id])
	}
	return sales, nil
}

func (r *fakeSaleRepo) FindByPeriod(_ context.Context, start, end time.Time) ([]sale.Sale, error) {
	sales := make([]sale.Sale, 0)
	for _, id := range r.order {
		s := r.sales[id]
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func (r *fakeSaleRepo) FindByClothingItem(_ context.Context, clothingItemID string) ([]sale.Sale, error) {
	sales := make([]sale.Sale, 0)
	for _, id := range r.order {
		s := r.sales[id]
		if s.QuantityOf(clothingItemID, "") > 0 {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, s *sale.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return repository.ErrSaleNotFound
	}
	r.sales[s.ID] = *s
	return nil
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, id string, status sale.Status) error {
	s, ok := r.sales[id]
	if !ok {
		return repository.ErrSaleNotFound
	}
	s.Status = status
	r.sales[id] = s
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sales[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(r.sales, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeNoteRepo struct {
	notes map[string]note.Note
	order []string
}

func newFakeNoteRepo(notes ...note.Note) *fakeNoteRepo {
	r := &fakeNoteRepo{notes: make(map[string]note.Note)}
	for _, n := range notes {
		r.notes[n.ID] = n
		r.order = append(r.order, n.ID)
	}
	return r
}

func (r *fakeNoteRepo) Create(_ context.Context, n *note.Note) error {
	r.notes[n.ID] = *n
	r.order = append(r.order, n.ID)
	return nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, id string) (*note.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	return &n, nil
}

func (r *fakeNoteRepo) List(_ context.Context) ([]note.Note, error) {
	notes := make([]note.Note, 0, len(r.order))
	for _, id := range r.order {
		notes = append(notes, r.notes[id])
	}
	return notes, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, n *note.Note) error {
	if _, ok := r.notes[n.ID]; !ok {
		return repository.ErrNoteNotFound
	}
	r.notes[n.ID] = *n
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return repository.ErrNoteNotFound
	}
	delete(r.notes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCashflowRepo struct {
	movements map[string]cashflow.Movement
	order     []string
}

func newFakeCashflowRepo(movements ...cashflow.Movement) *fakeCashflowRepo {
	r := &fakeCashflowRepo{movements: make(map[string]cashflow.Movement)}
	for _, m := range movements {
		r.movements[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *fakeCashflowRepo) Create(_ context.Context, m *cashflow.Movement) error {
	r.movements[m.ID] = *m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *fakeCashflowRepo) FindByID(_ context.Context, id string) (*cashflow.Movement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, repository.ErrMovementNotFound
	}
	return &m, nil
}

func (r *fakeCashflowRepo) List(_ context.Context) ([]cashflow.Movement, error) {
	movements := make([]cashflow.Movement, 0, len(r.order))
	for _, id := range r.order {
		movements = append(movements, r.movements[id])
	}
	return movements, nil
}

func (r *fakeCashflowRepo) FindByPeriod(_ context.Context, start, end time.Time) ([]cashflow.Movement, error) {
	movements := make([]cashflow.Movement, 0)
	for _, id := range r.order {
		m := r.movements[id]
		if !m.Date.Before(start) && !m.Date.After(end) {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

func (r *fakeCashflowRepo) Update(_ context.Context, m *cashflow.Movement) error {
	if _, ok := r.movements[m.ID]; !ok {
		return repository.ErrMovementNotFound
	}
	r.movements[m.ID] = *m
	return nil
}

func (r *fakeCashflowRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.movements[id]; !ok {
		return repository.ErrMovementNotFound
	}
	delete(r.movements, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// asRole simula o middleware de autenticação definindo o perfil no contexto
func asRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Set("user_name", "Test User")
		c.Set("user_role", role)
		c.Next()
	}
}

func testLogger() logger.Logger {
	return logger.NewSimpleLogger()
}

func init() {
	gin.SetMode(gin.TestMode)
}

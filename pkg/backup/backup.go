package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/note"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
	"github.com/jeacloset/erp-vestuario/internal/domain/user"
)

// Version é a versão do formato de backup
const Version = "1.0"

var ErrInvalidBackup = errors.New("arquivo de backup inválido")

// Collections agrupa todos os dados exportados. Os investimentos são
// derivados (lotes agregados) e entram no arquivo apenas para consulta;
// a restauração os ignora e eles voltam a ser calculados.
type Collections struct {
	Users       []user.User         `json:"users"`
	Clothing    []clothing.Item     `json:"clothing"`
	Sales       []sale.Sale         `json:"sales"`
	Fluxo       []cashflow.Movement `json:"fluxo"`
	Notes       []note.Note         `json:"notes"`
	Investments []stock.Lot         `json:"investments"`
}

// File é o formato do arquivo de backup
type File struct {
	ExportDate  time.Time   `json:"export_date"`
	Version     string      `json:"version"`
	Collections Collections `json:"collections"`
}

// Service exporta e restaura backups completos do sistema
type Service struct {
	users          user.Repository
	clothing       clothing.Repository
	sales          sale.Repository
	cashflow       cashflow.Repository
	notes          note.Repository
	includePending bool
}

// NewService cria uma nova instância de Service. O parâmetro
// includePending segue a mesma política de contagem de vendido usada
// no restante do sistema.
func NewService(users user.Repository, clothingRepo clothing.Repository, sales sale.Repository, cashflowRepo cashflow.Repository, notes note.Repository, includePending bool) *Service {
	return &Service{
		users:          users,
		clothing:       clothingRepo,
		sales:          sales,
		cashflow:       cashflowRepo,
		notes:          notes,
		includePending: includePending,
	}
}

// Export monta o arquivo de backup com todos os dados atuais
func (s *Service) Export(ctx context.Context) (*File, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar usuários: %w", err)
	}
	items, err := s.clothing.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar peças: %w", err)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar vendas: %w", err)
	}
	movements, err := s.cashflow.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar fluxo de caixa: %w", err)
	}
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar notas: %w", err)
	}

	source := stock.NewSalesLogScanSource(sales, s.includePending)
	lots := stock.AggregateLots(items, sales, source)

	return &File{
		ExportDate: time.Now(),
		Version:    Version,
		Collections: Collections{
			Users:       users,
			Clothing:    items,
			Sales:       sales,
			Fluxo:       movements,
			Notes:       notes,
			Investments: lots,
		},
	}, nil
}

// ExportJSON serializa o backup completo em JSON
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	file, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(file, "", "  ")
}

// Restore importa um arquivo de backup, recriando os registros.
// Registros que já existem (mesmo ID) são atualizados; a coleção de
// investimentos é ignorada por ser derivada do catálogo e das vendas.
func (s *Service) Restore(ctx context.Context, data []byte) (*RestoreSummary, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("%w: versão ausente", ErrInvalidBackup)
	}

	summary := &RestoreSummary{}

	for i := range file.Collections.Users {
		u := file.Collections.Users[i]
		if err := s.users.Create(ctx, &u); err != nil {
			if updErr := s.users.Update(ctx, &u); updErr != nil {
				return nil, fmt.Errorf("erro ao restaurar usuário %s: %w", u.ID, updErr)
			}
		}
		summary.Users++
	}

	for i := range file.Collections.Clothing {
		item := file.Collections.Clothing[i]
		if err := s.clothing.Create(ctx, &item); err != nil {
			if updErr := s.clothing.Update(ctx, &item); updErr != nil {
				return nil, fmt.Errorf("erro ao restaurar peça %s: %w", item.ID, updErr)
			}
		}
		summary.Clothing++
	}

	for i := range file.Collections.Sales {
		sl := file.Collections.Sales[i]
		if err := s.sales.Create(ctx, &sl); err != nil {
			if updErr := s.sales.Update(ctx, &sl); updErr != nil {
				return nil, fmt.Errorf("erro ao restaurar venda %s: %w", sl.ID, updErr)
			}
		}
		summary.Sales++
	}

	for i := range file.Collections.Fluxo {
		m := file.Collections.Fluxo[i]
		if err := s.cashflow.Create(ctx, &m); err != nil {
			if updErr := s.cashflow.Update(ctx, &m); updErr != nil {
				return nil, fmt.Errorf("erro ao restaurar movimento %s: %w", m.ID, updErr)
			}
		}
		summary.Fluxo++
	}

	for i := range file.Collections.Notes {
		n := file.Collections.Notes[i]
		if err := s.notes.Create(ctx, &n); err != nil {
			if updErr := s.notes.Update(ctx, &n); updErr != nil {
				return nil, fmt.Errorf("erro ao restaurar nota %s: %w", n.ID, updErr)
			}
		}
		summary.Notes++
	}

	return summary, nil
}

// RestoreSummary resume os registros restaurados por coleção
type RestoreSummary struct {
	Users    int `json:"users"`
	Clothing int `json:"clothing"`
	Sales    int `json:"sales"`
	Fluxo    int `json:"fluxo"`
	Notes    int `json:"notes"`
}

package note

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("título da nota não pode ser vazio")
	ErrEmptyContent    = errors.New("conteúdo da nota não pode ser vazio")
	ErrInvalidType     = errors.New("tipo de nota inválido")
	ErrInvalidPriority = errors.New("prioridade inválida")
	ErrInvalidStatus   = errors.New("status de nota inválido")
)

// Type classifica a nota
type Type string

const (
	TypeProblem     Type = "problem"
	TypeImprovement Type = "improvement"
	TypeGeneral     Type = "general"
)

// Priority define a urgência da nota
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status define o andamento da nota
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Note representa uma anotação livre vinculada a uma aba do sistema
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       Type      `json:"type"`
	Priority   Priority  `json:"priority"`
	Status     Status    `json:"status"`
	RelatedTab string    `json:"related_tab,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewNote cria uma nova nota
func NewNote(title, content string, noteType Type, priority Priority, relatedTab string) (*Note, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	switch noteType {
	case TypeProblem, TypeImprovement, TypeGeneral:
	default:
		return nil, ErrInvalidType
	}
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return nil, ErrInvalidPriority
	}

	now := time.Now()
	return &Note{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    content,
		Type:       noteType,
		Priority:   priority,
		Status:     StatusOpen,
		RelatedTab: relatedTab,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// UpdateStatus atualiza o andamento da nota
func (n *Note) UpdateStatus(status Status) error {
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved:
	default:
		return ErrInvalidStatus
	}
	n.Status = status
	n.UpdatedAt = time.Now()
	return nil
}

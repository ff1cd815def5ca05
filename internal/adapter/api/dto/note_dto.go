package dto

import (
	"time"

	"github.com/jeacloset/erp-vestuario/internal/domain/note"
)

// NoteRequest representa os dados de uma nota para criação ou atualização
type NoteRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Priority   string `json:"priority" binding:"required"`
	RelatedTab string `json:"related_tab"`
}

// NoteStatusRequest representa a alteração de status de uma nota
type NoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NoteResponse representa a resposta com dados de uma nota
type NoteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	RelatedTab string    `json:"related_tab,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToNoteResponse converte uma nota do domínio para DTO de resposta
func ToNoteResponse(n *note.Note) NoteResponse {
	return NoteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Type:       string(n.Type),
		Priority:   string(n.Priority),
		Status:     string(n.Status),
		RelatedTab: n.RelatedTab,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// ToNoteListResponse converte uma lista de notas do domínio para DTOs
func ToNoteListResponse(notes []note.Note) []NoteResponse {
	data := make([]NoteResponse, len(notes))
	for i := range notes {
		data[i] = ToNoteResponse(&notes[i])
	}
	return data
}

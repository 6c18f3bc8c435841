package handler

import (
	"time"

	"github.com/msomdec/wysider/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Plan        string `json:"plan"`
	Role        string `json:"role"`
	JoinedAt    string `json:"joinedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Plan:        string(u.Plan),
		Role:        string(u.Role),
		JoinedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// ConceptDTO is the JSON representation of a saved concept.
type ConceptDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Idea      string `json:"idea"`
	Strategy  string `json:"strategy,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toConceptDTO(c domain.Concept) ConceptDTO {
	return ConceptDTO{
		ID:        c.ID,
		Title:     c.Title,
		Idea:      c.Idea,
		Strategy:  c.Strategy,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func toConceptDTOs(concepts []domain.Concept) []ConceptDTO {
	dtos := make([]ConceptDTO, len(concepts))
	for i, c := range concepts {
		dtos[i] = toConceptDTO(c)
	}
	return dtos
}

// MessageDTO is the JSON representation of a chat message.
type MessageDTO struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func toMessageDTO(m domain.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.CreatedAt.UnixMilli(),
	}
}

func toMessageDTOs(messages []domain.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = toMessageDTO(m)
	}
	return dtos
}

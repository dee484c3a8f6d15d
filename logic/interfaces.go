package logic

import (
	"context"

	"github.com/google/uuid"

	"github.com/tarrantro/chatbot/models"
)

// UserStore is the persistence surface the logic layer needs for users.
type UserStore interface {
	CreateUser(name string, lastAccess []int64, messageCount uint64) (*models.User, error)
	GetUserByName(name string) (*models.User, error)
	UpdateAccessState(id uuid.UUID, window []int64, messageCount uint64) error
}

// MessageStore is the persistence surface for answered turns.
type MessageStore interface {
	CreateMessage(userName, text, reply string, timestamp int64, pending bool) (*models.Message, error)
	FinalizeMessage(id uint64) error
	GetRecentByUser(userName string, n int) ([]models.Message, error)
}

// CompletionProvider produces candidate replies for a single user message.
// Implementations must honor ctx cancellation and deadlines.
type CompletionProvider interface {
	Complete(ctx context.Context, content string) ([]string, error)
}

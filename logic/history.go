package logic

import (
	"errors"

	"gorm.io/gorm"
)

// Turn is one answered exchange projected for history responses.
type Turn struct {
	User string `json:"user"`
	AI   string `json:"ai"`
}

// HistoryLogic answers read-only history queries.
type HistoryLogic struct {
	users    UserStore
	messages MessageStore
}

func NewHistoryLogic(users UserStore, messages MessageStore) *HistoryLogic {
	return &HistoryLogic{users: users, messages: messages}
}

// Recent returns up to lastN most-recent answered turns for a user in
// ascending timestamp order. lastN <= 0 yields an empty result.
func (l *HistoryLogic) Recent(userName string, lastN int) ([]Turn, error) {
	if _, err := l.users.GetUserByName(userName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Name: userName}
		}
		return nil, err
	}
	if lastN <= 0 {
		return []Turn{}, nil
	}

	messages, err := l.messages.GetRecentByUser(userName, lastN)
	if err != nil {
		return nil, err
	}

	// The store returns newest first; history reads oldest to newest.
	turns := make([]Turn, len(messages))
	for i, msg := range messages {
		turns[len(messages)-1-i] = Turn{User: msg.Message, AI: msg.Reply}
	}
	return turns, nil
}

package logic

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tarrantro/chatbot/models"
)

// UserLogic handles registration and status lookups.
type UserLogic struct {
	users UserStore
}

func NewUserLogic(users UserStore) *UserLogic {
	return &UserLogic{users: users}
}

// Register creates a user, optionally seeded with a prior window and
// counter, and returns the stored record.
func (l *UserLogic) Register(name string, lastAccess []int64, messageCount uint64) (*models.User, error) {
	return l.users.CreateUser(name, lastAccess, messageCount)
}

// Status reports a user's answered-message counter.
func (l *UserLogic) Status(name string) (*models.User, error) {
	user, err := l.users.GetUserByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}
	return user, nil
}

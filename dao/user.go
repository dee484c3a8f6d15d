package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tarrantro/chatbot/models"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user. A seed window and counter may be supplied
// at registration time.
func (d *UserDAO) CreateUser(name string, lastAccess []int64, messageCount uint64) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		LastAccess:   models.Int64Slice(lastAccess),
		MessageCount: messageCount,
	}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByName retrieves a user by unique name
func (d *UserDAO) GetUserByName(name string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAccessState writes back the user's window and counter after an
// answered turn.
func (d *UserDAO) UpdateAccessState(id uuid.UUID, window []int64, messageCount uint64) error {
	return d.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_access":   models.Int64Slice(window),
			"message_count": messageCount,
		}).Error
}

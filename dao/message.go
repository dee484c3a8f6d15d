package dao

import (
	"gorm.io/gorm"

	"github.com/tarrantro/chatbot/models"
)

// MessageDAO handles message-related database operations
type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// CreateMessage inserts an answered turn. Pending rows are the transient
// middle state of the chat write path.
func (d *MessageDAO) CreateMessage(userName, text, reply string, timestamp int64, pending bool) (*models.Message, error) {
	msg := &models.Message{
		UserName:  userName,
		Timestamp: timestamp,
		Message:   text,
		Reply:     reply,
		Pending:   pending,
	}
	if err := d.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// FinalizeMessage clears the pending flag once the user quota state landed.
func (d *MessageDAO) FinalizeMessage(id uint64) error {
	return d.db.Model(&models.Message{}).
		Where("id = ?", id).
		Update("pending", false).Error
}

// GetRecentByUser returns up to n most-recent finalized messages for a
// user, newest first. Same-second messages tie-break on insertion order.
func (d *MessageDAO) GetRecentByUser(userName string, n int) ([]models.Message, error) {
	var messages []models.Message
	if err := d.db.Where("user_name = ? AND pending = ?", userName, false).
		Order("timestamp DESC, id DESC").
		Limit(n).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

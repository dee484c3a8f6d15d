package logic_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tarrantro/chatbot/models"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(name string, lastAccess []int64, messageCount uint64) (*models.User, error) {
	args := m.Called(name, lastAccess, messageCount)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) GetUserByName(name string) (*models.User, error) {
	args := m.Called(name)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) UpdateAccessState(id uuid.UUID, window []int64, messageCount uint64) error {
	args := m.Called(id, window, messageCount)
	return args.Error(0)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) CreateMessage(userName, text, reply string, timestamp int64, pending bool) (*models.Message, error) {
	args := m.Called(userName, text, reply, timestamp, pending)
	if msg := args.Get(0); msg != nil {
		return msg.(*models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMessageStore) FinalizeMessage(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageStore) GetRecentByUser(userName string, n int) ([]models.Message, error) {
	args := m.Called(userName, n)
	if messages := args.Get(0); messages != nil {
		return messages.([]models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, content string) ([]string, error) {
	args := m.Called(ctx, content)
	if candidates := args.Get(0); candidates != nil {
		return candidates.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

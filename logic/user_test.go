package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tarrantro/chatbot/logic"
)

func TestRegister(t *testing.T) {
	users := new(MockUserStore)
	userLogic := logic.NewUserLogic(users)

	seed := []int64{100, 200}
	expected := testUser(seed, 2)
	users.On("CreateUser", "alice", seed, uint64(2)).Return(expected, nil)

	user, err := userLogic.Register("alice", seed, 2)

	assert.NoError(t, err)
	assert.Equal(t, expected.ID, user.ID)
	users.AssertExpectations(t)
}

func TestStatusUnknownUser(t *testing.T) {
	users := new(MockUserStore)
	userLogic := logic.NewUserLogic(users)

	users.On("GetUserByName", "bob").Return(nil, gorm.ErrRecordNotFound)

	_, err := userLogic.Status("bob")

	var notFound *logic.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "invalid user bob", err.Error())
}

func TestStatusReportsCounter(t *testing.T) {
	users := new(MockUserStore)
	userLogic := logic.NewUserLogic(users)

	users.On("GetUserByName", "alice").Return(testUser(nil, 7), nil)

	user, err := userLogic.Status("alice")

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), user.MessageCount)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarrantro/chatbot/logic"
)

// UserController handles HTTP requests
type UserController struct {
	userLogic *logic.UserLogic
}

func NewUserController(logic *logic.UserLogic) *UserController {
	return &UserController{userLogic: logic}
}

// Register handles POST /register
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		Name         string  `json:"name" binding:"required"`
		LastAccess   []int64 `json:"last_access"`
		MessageCount uint64  `json:"message_count"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userLogic.Register(req.Name, req.LastAccess, req.MessageCount)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user.ID.String())
}

// StatusToday handles POST /get_chat_status_today
func (c *UserController) StatusToday(ctx *gin.Context) {
	type Request struct {
		Name string `json:"name" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userLogic.Status(req.Name)
	if err != nil {
		var notFound *logic.NotFoundError
		if errors.As(err, &notFound) {
			// An unknown user answers an empty object, not an error.
			ctx.JSON(http.StatusOK, gin.H{})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user_name": user.Name,
		"chat_cnt":  user.MessageCount,
	})
}

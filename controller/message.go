package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarrantro/chatbot/logic"
)

// MessageController handles HTTP requests
type MessageController struct {
	chatLogic *logic.ChatLogic
}

func NewMessageController(logic *logic.ChatLogic) *MessageController {
	return &MessageController{chatLogic: logic}
}

// ChatResponse handles POST /get_ai_chat_response. The optional timestamp
// and reply fields of the payload are accepted for compatibility and
// ignored; send time is always assigned server-side.
func (c *MessageController) ChatResponse(ctx *gin.Context) {
	type Request struct {
		UserName  string `json:"user_name" binding:"required"`
		Message   string `json:"message" binding:"required"`
		Timestamp int64  `json:"timestamp"`
		Reply     string `json:"reply"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := c.chatLogic.Chat(ctx.Request.Context(), req.UserName, req.Message, time.Now().Unix())
	if err != nil {
		status, body := chatErrorResponse(err)
		ctx.JSON(status, body)
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

// chatErrorResponse maps the logic error taxonomy onto HTTP statuses.
// Denials and unknown users answer with their human-readable text.
func chatErrorResponse(err error) (int, interface{}) {
	var notFound *logic.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error()
	}
	var denial *logic.DenialError
	if errors.As(err, &denial) {
		return http.StatusTooManyRequests, denial.Error()
	}
	var provider *logic.ProviderError
	if errors.As(err, &provider) {
		if provider.Kind == logic.ProviderTimeout {
			return http.StatusGatewayTimeout, gin.H{"error": provider.Error()}
		}
		return http.StatusBadGateway, gin.H{"error": provider.Error()}
	}
	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}

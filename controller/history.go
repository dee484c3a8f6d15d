package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarrantro/chatbot/logic"
)

// defaultLastN is how many turns a history query returns when the caller
// does not say.
const defaultLastN = 10

// HistoryController handles HTTP requests
type HistoryController struct {
	historyLogic *logic.HistoryLogic
}

func NewHistoryController(logic *logic.HistoryLogic) *HistoryController {
	return &HistoryController{historyLogic: logic}
}

// History handles POST /get_user_chat_history
func (c *HistoryController) History(ctx *gin.Context) {
	type Request struct {
		UserName string `json:"user_name" binding:"required"`
		LastN    *int   `json:"last_n"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lastN := defaultLastN
	if req.LastN != nil {
		lastN = *req.LastN
	}

	turns, err := c.historyLogic.Recent(req.UserName, lastN)
	if err != nil {
		var notFound *logic.NotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, notFound.Error())
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, turns)
}

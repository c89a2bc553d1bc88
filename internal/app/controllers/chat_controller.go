package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/services"
)

// ChatController handles learning assistant chat requests
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a message to the learning assistant
// @Description Send a free-text message and receive a canned, intent-matched reply
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.ChatMessageRequest true "Message details"
// @Success 200 {object} dto.APIResponse{data=dto.ChatMessageResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized: JWT token missing or invalid"
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response := c.chatService.Respond(req.Message)

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

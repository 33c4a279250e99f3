package handlers

import (
	"support-desk/internal/dto"
	"support-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Submit a customer question
// @Description Routes the question through the two-tier escalation pipeline and returns the final reply. Always answers 200; internal failures are reported as text in the response field.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Customer question"
// @Success 200 {object} dto.ChatResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse chat request", zap.Error(err))
		return c.JSON(dto.ChatResponse{
			Response: "An error occurred: the request body could not be parsed.",
		})
	}

	response := h.chatService.Chat(c.Context(), req.Message)
	return c.JSON(dto.ChatResponse{Response: response})
}

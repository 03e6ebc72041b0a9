package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelbot/internal/dto"
	"travelbot/internal/middleware"
	"travelbot/internal/rasa"
)

// ===========================================================================
// Chat Handler
// Fallback HTTP cho client không mở được websocket:
// nhận một tin nhắn, trả về reply gộp của bot
// ===========================================================================

// ChatHandler xử lý chat qua HTTP
type ChatHandler struct {
	sender rasa.Sender
	logger *zap.Logger
}

// NewChatHandler tạo chat handler
func NewChatHandler(sender rasa.Sender, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{sender: sender, logger: logger}
}

// ChatRequest body một lượt chat
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Sender  string `json:"sender"`
}

// Chat gửi tin nhắn và đợi reply
// POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	senderID := req.Sender
	if senderID == "" {
		senderID = uuid.NewString()
	}

	replies, err := h.sender.Send(c.Request.Context(), senderID, req.Message)
	if err != nil {
		h.logger.Error("Chat qua HTTP thất bại",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, dto.Error("ENGINE_ERROR", "Xin lỗi, hệ thống đang gặp sự cố. Bạn vui lòng thử lại sau nhé."))
		return
	}

	texts := make([]string, 0, len(replies))
	for _, reply := range replies {
		if reply.Text != "" {
			texts = append(texts, reply.Text)
		}
	}

	c.JSON(http.StatusOK, dto.Success(gin.H{
		"reply":  strings.Join(texts, "\n"),
		"sender": senderID,
	}))
}

// RegisterRoutes đăng ký route chat
func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.Chat)
}

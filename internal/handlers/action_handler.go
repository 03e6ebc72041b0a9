package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbot/internal/bot"
	"travelbot/internal/dto"
	"travelbot/internal/middleware"
)

// ===========================================================================
// Action Handler
// Custom action server endpoint cho dialogue engine
// Engine POST tracker state, nhận về danh sách responses
// ===========================================================================

// ActionHandler xử lý webhook action
type ActionHandler struct {
	dispatcher *bot.Dispatcher
	logger     *zap.Logger
}

// NewActionHandler tạo action handler
func NewActionHandler(dispatcher *bot.Dispatcher, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{dispatcher: dispatcher, logger: logger}
}

// webhookRequest payload engine gửi khi chạy một custom action
type webhookRequest struct {
	NextAction string         `json:"next_action" binding:"required"`
	SenderID   string         `json:"sender_id"`
	Tracker    trackerPayload `json:"tracker"`
}

type trackerPayload struct {
	SenderID      string                 `json:"sender_id"`
	Slots         map[string]interface{} `json:"slots"`
	LatestMessage bot.LatestMessage      `json:"latest_message"`
}

// webhookResponse format action server trả về cho engine
type webhookResponse struct {
	Events    []interface{}  `json:"events"`
	Responses []bot.Response `json:"responses"`
}

// Run chạy một custom action
// POST /webhook
func (h *ActionHandler) Run(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	senderID := req.SenderID
	if senderID == "" {
		senderID = req.Tracker.SenderID
	}

	tracker := &bot.Tracker{
		SenderID:      senderID,
		Slots:         req.Tracker.Slots,
		LatestMessage: req.Tracker.LatestMessage,
	}

	h.logger.Debug("Chạy action",
		zap.String("request_id", requestID),
		zap.String("action", req.NextAction),
		zap.String("sender_id", senderID),
	)

	responses := h.dispatcher.Dispatch(c.Request.Context(), req.NextAction, tracker)
	c.JSON(http.StatusOK, webhookResponse{
		Events:    []interface{}{},
		Responses: responses,
	})
}

// Health cho engine kiểm tra action server sẵn sàng
// GET /webhook/health
func (h *ActionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterRoutes gắn webhook ở root router, ngoài nhóm /api/v1,
// theo đúng đường dẫn mặc định của engine
func (h *ActionHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", h.Run)
	r.GET("/webhook/health", h.Health)
}

package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"travelbot/internal/rasa"
)

// ===========================================================================
// Conversation Relay
// WebSocket session giữa FE và dialogue engine
// Mỗi connection là một session tuần tự: xử lý xong một frame (kể cả
// round-trip HTTP đến engine) mới đọc frame tiếp theo
// ===========================================================================

// Frame loại frame trao đổi với client
type Frame struct {
	Type      string     `json:"type"`
	Content   string     `json:"content,omitempty"`
	Data      *FrameData `json:"data,omitempty"`
	Sender    string     `json:"sender,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

// FrameData payload kèm theo frame message
type FrameData struct {
	Buttons []rasa.Button `json:"buttons,omitempty"`
	Image   string        `json:"image,omitempty"`
}

// session một kết nối websocket, write được serialize qua mutex vì
// ping writer và read loop cùng ghi lên một conn
type session struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *session) write(frame Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(frame)
}

// Handler upgrade và chạy relay session
type Handler struct {
	sender      rasa.Sender
	idleTimeout time.Duration
	sendTimeout time.Duration
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

// NewHandler tạo relay handler
// idleTimeout là chu kỳ gửi ping giữ kết nối
func NewHandler(sender rasa.Sender, idleTimeout, sendTimeout time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		sender:      sender,
		idleTimeout: idleTimeout,
		sendTimeout: sendTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// FE chạy trên origin khác (Next.js dev server)
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve Gin handler cho GET /ws/chat
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Upgrade websocket thất bại", zap.Error(err))
		return
	}
	defer conn.Close()

	senderID := uuid.NewString()
	h.logger.Info("Client kết nối websocket", zap.String("sender_id", senderID))
	h.run(c.Request.Context(), conn, senderID)
	h.logger.Info("Client ngắt kết nối websocket", zap.String("sender_id", senderID))
}

// run vòng lặp session, kết thúc khi client disconnect.
// Keep-alive chạy ở goroutine riêng: đúng một ping mỗi chu kỳ idle.
// Lỗi đọc trên gorilla là vĩnh viễn nên mọi lỗi từ ReadMessage đều
// kết thúc session, không retry.
func (h *Handler) run(ctx context.Context, conn *websocket.Conn, senderID string) {
	s := &session{conn: conn}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(h.idleTimeout)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if s.write(Frame{Type: "ping"}) != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()

	for {
		// Client còn sống phải gửi gì đó (pong là đủ) trong hai chu kỳ ping
		_ = conn.SetReadDeadline(time.Now().Add(2 * h.idleTimeout))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Websocket đóng bất thường", zap.Error(err))
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(payload, &frame); err != nil {
			h.logger.Warn("Frame không phải JSON hợp lệ, bỏ qua", zap.Error(err))
			continue
		}

		if err := h.handleFrame(ctx, s, senderID, frame); err != nil {
			return
		}
	}
}

// handleFrame xử lý một frame, trả error chỉ khi không write được (client mất)
func (h *Handler) handleFrame(ctx context.Context, s *session, senderID string, frame Frame) error {
	switch frame.Type {
	case "init":
		return s.write(Frame{Type: "init_ack", Content: "Kết nối thành công"})

	case "pong":
		// keep-alive response, chỉ có tác dụng gia hạn read deadline
		return nil

	case "message":
		return h.relayMessage(ctx, s, senderID, frame.Content)

	default:
		h.logger.Warn("Frame type không hỗ trợ", zap.String("type", frame.Type))
		return nil
	}
}

// relayMessage forward text đến engine và chuyển từng reply về client
// Lỗi engine được báo bằng error frame, session vẫn tiếp tục
func (h *Handler) relayMessage(ctx context.Context, s *session, senderID, content string) error {
	sendCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
	defer cancel()

	replies, err := h.sender.Send(sendCtx, senderID, content)
	if err != nil {
		h.logger.Error("Relay đến engine thất bại",
			zap.String("sender_id", senderID),
			zap.Error(err),
		)
		return s.write(Frame{
			Type:    "error",
			Content: "Xin lỗi, hệ thống đang gặp sự cố. Bạn vui lòng thử lại sau nhé.",
		})
	}

	for _, reply := range replies {
		out := Frame{Type: "message", Content: reply.Text}
		if len(reply.Buttons) > 0 || reply.Image != "" {
			out.Data = &FrameData{Buttons: reply.Buttons, Image: reply.Image}
		}
		if err := s.write(out); err != nil {
			return err
		}
	}
	return nil
}

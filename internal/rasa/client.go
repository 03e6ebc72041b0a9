package rasa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ===========================================================================
// Rasa REST Client
// Gửi tin nhắn user đến REST webhook của dialogue engine và nhận replies
// ===========================================================================

// Sender gửi tin nhắn đến dialogue engine
type Sender interface {
	// Send gửi một tin nhắn, trả về danh sách replies của bot
	Send(ctx context.Context, senderID, message string) ([]BotMessage, error)
}

// BotMessage một reply từ engine theo format REST channel
type BotMessage struct {
	RecipientID string            `json:"recipient_id"`
	Text        string            `json:"text,omitempty"`
	Image       string            `json:"image,omitempty"`
	Buttons     []Button          `json:"buttons,omitempty"`
	Custom      map[string]any    `json:"custom,omitempty"`
	Attachment  map[string]string `json:"attachment,omitempty"`
}

// Button nút gợi ý kèm theo reply
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

type userMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Client implements Sender qua HTTP
type Client struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// NewClient tạo client đến webhook URL với timeout cố định
func NewClient(url string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Send POST tin nhắn user đến webhook, parse mảng replies
func (c *Client) Send(ctx context.Context, senderID, message string) ([]BotMessage, error) {
	body, err := json.Marshal(userMessage{Sender: senderID, Message: message})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("Gửi tin nhắn đến engine thất bại", zap.Error(err))
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Engine trả về status lỗi",
			zap.Int("status", resp.StatusCode),
			zap.String("sender_id", senderID),
		)
		return nil, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	var replies []BotMessage
	if err := json.NewDecoder(resp.Body).Decode(&replies); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.log.Debug("Nhận replies từ engine",
		zap.String("sender_id", senderID),
		zap.Int("count", len(replies)),
	)
	return replies, nil
}

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbot/internal/rasa"
)

// ---------- test helpers ----------

// fakeSender được gọi từ goroutine của server nên mọi truy cập đi qua mutex
type fakeSender struct {
	mu      sync.Mutex
	replies []rasa.BotMessage
	err     error

	lastMessage string
	senderIDs   []string
}

func (f *fakeSender) Send(ctx context.Context, senderID, message string) ([]rasa.BotMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastMessage = message
	f.senderIDs = append(f.senderIDs, senderID)
	if f.err != nil {
		return nil, f.err
	}
	return f.replies, nil
}

func (f *fakeSender) setReply(err error, replies ...rasa.BotMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
	f.replies = replies
}

func (f *fakeSender) calls() (string, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastMessage, append([]string(nil), f.senderIDs...)
}

// dialRelay mở server + websocket connection cho một test
func dialRelay(t *testing.T, sender rasa.Sender, idleTimeout time.Duration) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(sender, idleTimeout, 2*time.Second, zap.NewNop())
	router := gin.New()
	router.GET("/ws/chat", handler.Serve)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn, timeout time.Duration) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))

	var frame Frame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

// ---------- tests ----------

func TestRelayInitAck(t *testing.T) {
	conn := dialRelay(t, &fakeSender{}, time.Minute)

	require.NoError(t, conn.WriteJSON(Frame{Type: "init"}))

	frame := readFrame(t, conn, time.Second)
	require.Equal(t, "init_ack", frame.Type)
	require.Equal(t, "Kết nối thành công", frame.Content)
}

func TestRelayIdlePing(t *testing.T) {
	sender := &fakeSender{replies: []rasa.BotMessage{{Text: "Chào bạn!"}}}
	conn := dialRelay(t, sender, 100*time.Millisecond)

	first := readFrame(t, conn, time.Second)
	require.Equal(t, "ping", first.Type)
	firstAt := time.Now()
	require.NoError(t, conn.WriteJSON(Frame{Type: "pong"}))

	// Ping theo đúng chu kỳ idle, không dồn dập
	second := readFrame(t, conn, time.Second)
	require.Equal(t, "ping", second.Type)
	require.GreaterOrEqual(t, time.Since(firstAt), 50*time.Millisecond)
	require.NoError(t, conn.WriteJSON(Frame{Type: "pong"}))

	// Session vẫn xử lý message bình thường sau các đợt ping
	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "xin chào"}))
	for {
		frame := readFrame(t, conn, time.Second)
		if frame.Type == "ping" {
			require.NoError(t, conn.WriteJSON(Frame{Type: "pong"}))
			continue
		}
		require.Equal(t, "message", frame.Type)
		require.Equal(t, "Chào bạn!", frame.Content)
		break
	}
}

func TestRelayPingCountBounded(t *testing.T) {
	conn := dialRelay(t, &fakeSender{}, 100*time.Millisecond)

	// Trong ~350ms với chu kỳ 100ms chỉ có thể có tối đa 4 ping
	stop := time.Now().Add(350 * time.Millisecond)
	pings := 0
	for time.Now().Before(stop) {
		require.NoError(t, conn.SetReadDeadline(stop))
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			break
		}
		require.Equal(t, "ping", frame.Type)
		pings++
		require.NoError(t, conn.WriteJSON(Frame{Type: "pong"}))
	}
	require.GreaterOrEqual(t, pings, 2)
	require.LessOrEqual(t, pings, 4)
}

func TestRelayMessageRoundTrip(t *testing.T) {
	sender := &fakeSender{replies: []rasa.BotMessage{
		{Text: "Tôi tìm thấy 2 kết quả:"},
		{Text: "Bạn muốn xem thêm không?", Buttons: []rasa.Button{{Title: "Có", Payload: "/affirm"}}},
	}}
	conn := dialRelay(t, sender, time.Minute)

	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "khách sạn ở Đà Nẵng"}))

	first := readFrame(t, conn, time.Second)
	require.Equal(t, "message", first.Type)
	require.Equal(t, "Tôi tìm thấy 2 kết quả:", first.Content)
	require.Nil(t, first.Data)

	second := readFrame(t, conn, time.Second)
	require.Equal(t, "message", second.Type)
	require.NotNil(t, second.Data)
	require.Equal(t, "Có", second.Data.Buttons[0].Title)

	lastMessage, _ := sender.calls()
	require.Equal(t, "khách sạn ở Đà Nẵng", lastMessage)
}

func TestRelaySenderIDStablePerConnection(t *testing.T) {
	sender := &fakeSender{}
	conn := dialRelay(t, sender, time.Minute)

	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "xin chào"}))
	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "tạm biệt"}))

	// Đợi đến khi cả hai message được relay
	require.Eventually(t, func() bool {
		_, ids := sender.calls()
		return len(ids) == 2
	}, time.Second, 10*time.Millisecond)

	_, ids := sender.calls()
	require.NotEmpty(t, ids[0])
	require.Equal(t, ids[0], ids[1])
}

func TestRelayEngineErrorKeepsSession(t *testing.T) {
	sender := &fakeSender{err: errors.New("engine down")}
	conn := dialRelay(t, sender, time.Minute)

	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "xin chào"}))

	frame := readFrame(t, conn, time.Second)
	require.Equal(t, "error", frame.Type)
	require.Equal(t, "Xin lỗi, hệ thống đang gặp sự cố. Bạn vui lòng thử lại sau nhé.", frame.Content)

	// Engine hồi phục, session tiếp tục bình thường
	sender.setReply(nil, rasa.BotMessage{Text: "Chào bạn!"})
	require.NoError(t, conn.WriteJSON(Frame{Type: "message", Content: "xin chào"}))

	frame = readFrame(t, conn, time.Second)
	require.Equal(t, "message", frame.Type)
	require.Equal(t, "Chào bạn!", frame.Content)
}

func TestRelayIgnoresMalformedAndUnknownFrames(t *testing.T) {
	conn := dialRelay(t, &fakeSender{}, time.Minute)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json {{")))
	require.NoError(t, conn.WriteJSON(Frame{Type: "teleport"}))
	require.NoError(t, conn.WriteJSON(Frame{Type: "init"}))

	// Hai frame đầu bị bỏ qua, frame init vẫn được trả lời
	frame := readFrame(t, conn, time.Second)
	require.Equal(t, "init_ack", frame.Type)
}

func TestFrameOmitsEmptyData(t *testing.T) {
	encoded, err := json.Marshal(Frame{Type: "message", Content: "xin chào"})
	require.NoError(t, err)
	require.NotContains(t, string(encoded), `"data"`)
}

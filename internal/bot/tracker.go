package bot

// ===========================================================================
// Tracker - conversation state do dialogue engine cung cấp cho mỗi lượt
// Chứa slot values và entities của message mới nhất
// ===========================================================================

// Intent intent được NLU nhận dạng
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Entity một entity được NLU trích xuất từ message
type Entity struct {
	Entity string `json:"entity"`
	Value  string `json:"value"`
}

// LatestMessage message mới nhất của lượt hội thoại
type LatestMessage struct {
	Text     string   `json:"text"`
	Intent   Intent   `json:"intent"`
	Entities []Entity `json:"entities"`
}

// Tracker conversation state cho một lượt
type Tracker struct {
	// SenderID id phiên hội thoại
	SenderID string `json:"sender_id"`

	// Slots slot values theo tên; giá trị có thể null
	Slots map[string]interface{} `json:"slots"`

	// LatestMessage message mới nhất kèm intent và entities
	LatestMessage LatestMessage `json:"latest_message"`
}

// Slot trả về slot value dạng string, "" nếu absent hoặc không phải string
func (t *Tracker) Slot(name string) string {
	if t.Slots == nil {
		return ""
	}
	if v, ok := t.Slots[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// EntityValues trả về tất cả giá trị của một entity type trong message
func (t *Tracker) EntityValues(name string) []string {
	var values []string
	for _, e := range t.LatestMessage.Entities {
		if e.Entity == name && e.Value != "" {
			values = append(values, e.Value)
		}
	}
	return values
}

// ===========================================================================
// Response - đơn vị trả lời của một action
// ===========================================================================

// Button nút bấm gợi ý đi kèm response
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Response một tin nhắn trả lời
type Response struct {
	// Text nội dung văn bản (tiếng Việt)
	Text string `json:"text"`

	// Buttons các nút gợi ý (nếu có)
	Buttons []Button `json:"buttons,omitempty"`

	// Image URL hình ảnh (nếu có)
	Image string `json:"image,omitempty"`
}

// TextResponse helper tạo response chỉ có text
func TextResponse(text string) Response {
	return Response{Text: text}
}

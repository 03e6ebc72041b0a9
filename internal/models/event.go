package models

// ===========================================================================
// Event - log hội thoại append-only
// Ghi lại các lượt hội thoại do dialogue engine và action layer phát sinh
// Không có quan hệ nào được enforce
// ===========================================================================

// Event một sự kiện hội thoại
type Event struct {
	BaseModel

	// SenderID id người gửi (session id từ dialogue engine)
	SenderID string `gorm:"size:255;not null;index" json:"sender_id"`

	// TypeName loại event ("user", "bot", "action", ...)
	TypeName string `gorm:"size:255;not null" json:"type_name"`

	// Timestamp unix timestamp do engine cung cấp
	Timestamp float64 `json:"timestamp"`

	// IntentName intent được nhận dạng (nếu có)
	IntentName string `gorm:"size:255" json:"intent_name"`

	// ActionName action đã chạy (nếu có)
	ActionName string `gorm:"size:255" json:"action_name"`

	// Data payload tùy ý dạng text
	Data string `gorm:"type:text" json:"data"`
}

func (Event) TableName() string {
	return "events"
}

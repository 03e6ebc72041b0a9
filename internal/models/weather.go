package models

import "github.com/google/uuid"

// ===========================================================================
// Weather - thời tiết theo tháng của một Destination
// Một row cho mỗi cặp (destination, month)
// ===========================================================================

// Weather thời tiết trung bình theo tháng
type Weather struct {
	BaseModel

	// DestinationID địa điểm
	DestinationID uuid.UUID `gorm:"type:uuid;index" json:"destination_id"`

	// Month tháng 1-12
	Month int `gorm:"not null" json:"month"`

	// AvgTemp nhiệt độ trung bình (°C)
	AvgTemp float64 `gorm:"type:numeric(4,1)" json:"avg_temp"`

	// Description mô tả thời tiết
	Description string `gorm:"type:text" json:"description"`

	// IsBestTime tháng này có phải thời điểm lý tưởng không
	IsBestTime bool `gorm:"default:false" json:"is_best_time"`
}

func (Weather) TableName() string {
	return "weather"
}

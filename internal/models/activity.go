package models

import "github.com/google/uuid"

// ===========================================================================
// Activity - hoạt động/tham quan tại một Destination
// ===========================================================================

// Activity hoạt động du lịch
type Activity struct {
	BaseModel

	// Name tên hoạt động
	Name string `gorm:"size:255;not null" json:"name"`

	// DestinationID địa điểm diễn ra hoạt động
	DestinationID uuid.UUID `gorm:"type:uuid;index" json:"destination_id"`

	// Type loại hoạt động (lặn biển, leo núi, ...)
	Type string `gorm:"size:100" json:"type"`

	// Price giá vé/chi phí, đơn vị VNĐ
	Price float64 `gorm:"type:numeric(10,2)" json:"price"`

	// Duration thời lượng dạng text ("2 giờ", "nửa ngày")
	Duration string `gorm:"size:100" json:"duration"`

	// Description mô tả
	Description string `gorm:"type:text" json:"description"`
}

func (Activity) TableName() string {
	return "activities"
}

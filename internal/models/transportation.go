package models

import "github.com/google/uuid"

// ===========================================================================
// Transportation - phương tiện di chuyển giữa hai Destination
// ===========================================================================

// Transportation phương tiện di chuyển
type Transportation struct {
	BaseModel

	// FromDestinationID địa điểm xuất phát
	FromDestinationID uuid.UUID `gorm:"type:uuid;index" json:"from_destination_id"`

	// ToDestinationID địa điểm đến
	ToDestinationID uuid.UUID `gorm:"type:uuid;index" json:"to_destination_id"`

	// Type loại phương tiện (máy bay, tàu hỏa, xe khách, taxi, ...)
	Type string `gorm:"size:50" json:"type"`

	// Duration thời gian di chuyển dạng text ("1.5 giờ")
	Duration string `gorm:"size:100" json:"duration"`

	// PriceRange mức giá dạng text
	PriceRange string `gorm:"size:100" json:"price_range"`
}

func (Transportation) TableName() string {
	return "transportation"
}

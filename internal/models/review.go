package models

import "github.com/google/uuid"

// ===========================================================================
// Review - đánh giá polymorphic
// EntityType + EntityID trỏ đến bất kỳ entity nào (destination, hotel, ...)
// Không có foreign key; hệ thống không kiểm tra EntityID có tồn tại
// ===========================================================================

// Các entity type tag được dùng bởi Review và Result Formatter
const (
	EntityDestination = "destination"
	EntityHotel       = "hotel"
	EntityRestaurant  = "restaurant"
	EntityActivity    = "activity"
	EntityTour        = "tour"
)

// Review đánh giá của người dùng
type Review struct {
	BaseModel

	// EntityType loại entity được đánh giá ("destination", "hotel", ...)
	EntityType string `gorm:"size:50;index" json:"entity_type"`

	// EntityID id của entity được đánh giá
	EntityID uuid.UUID `gorm:"type:uuid;index" json:"entity_id"`

	// Rating điểm 1-5
	Rating int `gorm:"not null" json:"rating"`

	// Comment nội dung đánh giá
	Comment string `gorm:"type:text" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}

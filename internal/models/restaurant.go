package models

import "github.com/google/uuid"

// ===========================================================================
// Restaurant - nhà hàng thuộc một Destination
// ===========================================================================

// Restaurant nhà hàng
type Restaurant struct {
	BaseModel

	// Name tên nhà hàng
	Name string `gorm:"size:255;not null" json:"name"`

	// Address địa chỉ
	Address string `gorm:"type:text" json:"address"`

	// DestinationID địa điểm chứa nhà hàng
	DestinationID uuid.UUID `gorm:"type:uuid;index" json:"destination_id"`

	// CuisineType loại ẩm thực (hải sản, món Huế, ...)
	CuisineType string `gorm:"size:100" json:"cuisine_type"`

	// PriceRange mức giá: "rẻ" / "trung bình" / "cao cấp"
	PriceRange string `gorm:"size:50" json:"price_range"`

	// Rating điểm đánh giá 0-5
	Rating float64 `gorm:"type:numeric(2,1);default:0" json:"rating"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

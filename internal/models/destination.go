package models

// ===========================================================================
// Destination - địa điểm du lịch (Đà Nẵng, Hà Nội, ...)
// Được tham chiếu bởi Hotel, Restaurant, Activity, Weather, Transportation
// ===========================================================================

// Destination địa điểm du lịch
type Destination struct {
	BaseModel

	// Name tên địa điểm
	Name string `gorm:"size:255;not null;index" json:"name"`

	// Province tỉnh/thành phố
	Province string `gorm:"size:100;not null" json:"province"`

	// Region miền (Bắc/Trung/Nam)
	Region string `gorm:"size:50;not null" json:"region"`

	// Category loại địa điểm (biển, núi, văn hóa, ...)
	Category string `gorm:"size:100" json:"category"`

	// Rating điểm đánh giá 0-5, một chữ số thập phân
	Rating float64 `gorm:"type:numeric(2,1);default:0" json:"rating"`

	// Description mô tả
	Description string `gorm:"type:text" json:"description"`

	// BestTimeToVisit thời gian lý tưởng để ghé thăm
	BestTimeToVisit string `gorm:"size:255" json:"best_time_to_visit"`
}

func (Destination) TableName() string {
	return "destinations"
}

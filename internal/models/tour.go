package models

// ===========================================================================
// Tour - tour du lịch trọn gói
// Liên kết lỏng với Destination qua text matching trên cột destinations,
// không dùng foreign key
// ===========================================================================

// Tour tour du lịch
type Tour struct {
	BaseModel

	// Name tên tour
	Name string `gorm:"size:255;not null" json:"name"`

	// Destinations danh sách tên địa điểm dạng free text
	// ("Đà Nẵng - Hội An - Huế")
	Destinations string `gorm:"type:text" json:"destinations"`

	// DurationDays số ngày
	DurationDays int `json:"duration_days"`

	// Price giá tour, đơn vị VNĐ
	Price float64 `gorm:"type:numeric(10,2)" json:"price"`

	// Description mô tả
	Description string `gorm:"type:text" json:"description"`
}

func (Tour) TableName() string {
	return "tours"
}

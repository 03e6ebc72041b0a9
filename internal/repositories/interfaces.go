package repositories

import (
	"context"
	"time"

	"travelbot/internal/models"
)

// ===========================================================================
// Repository Interfaces cho action layer (read-only path)
// CRUD layer dùng Resource[T] trực tiếp, không qua interface
// ===========================================================================

// DestinationFilters filter cho tìm kiếm địa điểm
type DestinationFilters struct {
	Province string
	Region   string
	Category string
}

// HotelFilters filter cho tìm kiếm khách sạn
type HotelFilters struct {
	Destination string
	StarRating  *int
	PriceRange  string
}

// RestaurantFilters filter cho tìm kiếm nhà hàng
type RestaurantFilters struct {
	Destination string
	CuisineType string
	PriceRange  string
}

// ActivityFilters filter cho tìm kiếm hoạt động
type ActivityFilters struct {
	Destination string
	Type        string
}

// TourFilters filter cho tìm kiếm tour
type TourFilters struct {
	Destination  string
	DurationDays *int
}

// WeatherInfo thời tiết kèm tên địa điểm (join qua destination)
type WeatherInfo struct {
	DestinationName string  `json:"destination_name"`
	Month           int     `json:"month"`
	AvgTemp         float64 `json:"avg_temp"`
	Description     string  `json:"description"`
	IsBestTime      bool    `json:"is_best_time"`
}

// TransportOption phương tiện kèm tên hai đầu tuyến
type TransportOption struct {
	FromName   string `json:"from_name"`
	ToName     string `json:"to_name"`
	Type       string `json:"type"`
	Duration   string `json:"duration"`
	PriceRange string `json:"price_range"`
}

// ReviewInfo đánh giá kèm tên địa điểm
type ReviewInfo struct {
	DestinationName string    `json:"destination_name"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

// PriceTiers danh sách price tier của hotels/restaurants một địa điểm,
// dùng cho Budget Estimator
type PriceTiers struct {
	DestinationName string
	HotelTiers      []string
	MealTiers       []string
}

// SearchRepository read path của action layer
// Mọi method trả về tối đa một trần kết quả cố định, sắp xếp cố định
type SearchRepository interface {
	// SearchDestinations lọc địa điểm, sắp theo rating giảm dần, tối đa 5
	SearchDestinations(ctx context.Context, f DestinationFilters) ([]models.Destination, error)

	// SearchHotels lọc khách sạn theo tên địa điểm (substring), hạng sao,
	// mức giá; sắp theo hạng sao giảm dần, tối đa 5
	SearchHotels(ctx context.Context, f HotelFilters) ([]models.Hotel, error)

	// SearchRestaurants sắp theo rating giảm dần, tối đa 5
	SearchRestaurants(ctx context.Context, f RestaurantFilters) ([]models.Restaurant, error)

	// SearchActivities sắp theo giá tăng dần, tối đa 5
	SearchActivities(ctx context.Context, f ActivityFilters) ([]models.Activity, error)

	// SearchTours match tên địa điểm trên cột destinations dạng text,
	// sắp theo giá tăng dần, tối đa 5
	SearchTours(ctx context.Context, f TourFilters) ([]models.Tour, error)

	// WeatherFor thời tiết của một địa điểm, tùy chọn theo tháng
	WeatherFor(ctx context.Context, destination string, month *int) ([]WeatherInfo, error)

	// TransportBetween các phương tiện giữa hai địa điểm (substring match)
	TransportBetween(ctx context.Context, from, to string) ([]TransportOption, error)

	// ReviewsForDestination 5 đánh giá mới nhất của một địa điểm
	ReviewsForDestination(ctx context.Context, destination string) ([]ReviewInfo, error)

	// FindDestination tìm một địa điểm theo tên, fuzzy khi backend hỗ trợ
	FindDestination(ctx context.Context, name string) (*models.Destination, error)

	// TiersFor price tier của hotels và restaurants tại một địa điểm
	// Trả về ErrNotFound khi địa điểm không tồn tại
	TiersFor(ctx context.Context, destination string) (*PriceTiers, error)
}

// EventRecorder ghi event hội thoại best-effort
type EventRecorder interface {
	Record(ctx context.Context, event *models.Event) error
}

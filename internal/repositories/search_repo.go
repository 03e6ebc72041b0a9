package repositories

import (
	"context"
	"errors"

	apperrors "travelbot/internal/errors"
	"travelbot/internal/models"
	"travelbot/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// Search Repository GORM Implementation
// Read path của action layer: mỗi method là một query có filter động
// được build qua query.Builder, trần kết quả và sort cố định
// ===========================================================================

const searchLimit = 5

// searchRepo triển khai SearchRepository với GORM
type searchRepo struct {
	db *gorm.DB

	// trgm true khi pg_trgm đã được cài trên database hiện tại
	trgm bool
}

// NewSearchRepository tạo instance mới của SearchRepository.
// Kiểm tra pg_trgm một lần lúc khởi tạo: database chưa cài extension
// (hoặc backend không phải Postgres) thì FindDestination dùng
// substring match thay vì similarity().
func NewSearchRepository(db *gorm.DB) SearchRepository {
	r := &searchRepo{db: db}
	if db.Dialector.Name() == "postgres" {
		var installed int64
		err := db.Raw("SELECT COUNT(*) FROM pg_extension WHERE extname = 'pg_trgm'").
			Scan(&installed).Error
		r.trgm = err == nil && installed > 0
	}
	return r
}

// SearchDestinations lọc địa điểm theo province/region/category
func (r *searchRepo) SearchDestinations(ctx context.Context, f DestinationFilters) ([]models.Destination, error) {
	var destinations []models.Destination

	b := query.NewBuilder().
		Contains("province", f.Province).
		Contains("region", f.Region).
		Contains("category", f.Category).
		OrderBy("rating DESC").
		Limit(searchLimit)

	err := b.Apply(r.db.WithContext(ctx).Model(&models.Destination{})).
		Find(&destinations).Error
	return destinations, err
}

// SearchHotels lọc khách sạn, join destinations theo tên
func (r *searchRepo) SearchHotels(ctx context.Context, f HotelFilters) ([]models.Hotel, error) {
	var hotels []models.Hotel

	b := query.NewBuilder().
		Contains("d.name", f.Destination).
		Contains("hotels.price_range", f.PriceRange).
		OrderBy("hotels.star_rating DESC").
		Limit(searchLimit)
	if f.StarRating != nil {
		b.Equals("hotels.star_rating", *f.StarRating)
	}

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Hotel{}).
			Joins("JOIN destinations d ON hotels.destination_id = d.id"),
	).Find(&hotels).Error
	if err != nil {
		return nil, err
	}

	for i := range hotels {
		hotels[i].NormalizeAmenities()
	}
	return hotels, nil
}

// SearchRestaurants lọc nhà hàng, join destinations theo tên
func (r *searchRepo) SearchRestaurants(ctx context.Context, f RestaurantFilters) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	b := query.NewBuilder().
		Contains("d.name", f.Destination).
		Contains("restaurants.cuisine_type", f.CuisineType).
		Contains("restaurants.price_range", f.PriceRange).
		OrderBy("restaurants.rating DESC").
		Limit(searchLimit)

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Restaurant{}).
			Joins("JOIN destinations d ON restaurants.destination_id = d.id"),
	).Find(&restaurants).Error
	return restaurants, err
}

// SearchActivities lọc hoạt động, sắp theo giá tăng dần
func (r *searchRepo) SearchActivities(ctx context.Context, f ActivityFilters) ([]models.Activity, error) {
	var activities []models.Activity

	b := query.NewBuilder().
		Contains("d.name", f.Destination).
		Contains("activities.type", f.Type).
		OrderBy("activities.price ASC").
		Limit(searchLimit)

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Activity{}).
			Joins("JOIN destinations d ON activities.destination_id = d.id"),
	).Find(&activities).Error
	return activities, err
}

// SearchTours match tên địa điểm trên cột destinations dạng text
// (không phải foreign key - giữ nguyên semantics legacy)
func (r *searchRepo) SearchTours(ctx context.Context, f TourFilters) ([]models.Tour, error) {
	var tours []models.Tour

	b := query.NewBuilder().
		Contains("destinations", f.Destination).
		OrderBy("price ASC").
		Limit(searchLimit)
	if f.DurationDays != nil {
		b.Equals("duration_days", *f.DurationDays)
	}

	err := b.Apply(r.db.WithContext(ctx).Model(&models.Tour{})).
		Find(&tours).Error
	return tours, err
}

// WeatherFor thời tiết của một địa điểm, tùy chọn theo tháng
func (r *searchRepo) WeatherFor(ctx context.Context, destination string, month *int) ([]WeatherInfo, error) {
	var rows []WeatherInfo

	b := query.NewBuilder().
		Contains("d.name", destination).
		OrderBy("weather.month ASC")
	if month != nil {
		b.Equals("weather.month", *month)
	}

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Weather{}).
			Select("d.name AS destination_name, weather.month, weather.avg_temp, weather.description, weather.is_best_time").
			Joins("JOIN destinations d ON weather.destination_id = d.id"),
	).Scan(&rows).Error
	return rows, err
}

// TransportBetween các phương tiện giữa hai địa điểm
func (r *searchRepo) TransportBetween(ctx context.Context, from, to string) ([]TransportOption, error) {
	var rows []TransportOption

	b := query.NewBuilder().
		Contains("d1.name", from).
		Contains("d2.name", to)

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Transportation{}).
			Select("d1.name AS from_name, d2.name AS to_name, transportation.type, transportation.duration, transportation.price_range").
			Joins("JOIN destinations d1 ON transportation.from_destination_id = d1.id").
			Joins("JOIN destinations d2 ON transportation.to_destination_id = d2.id"),
	).Scan(&rows).Error
	return rows, err
}

// ReviewsForDestination 5 đánh giá mới nhất theo entity_type destination
func (r *searchRepo) ReviewsForDestination(ctx context.Context, destination string) ([]ReviewInfo, error) {
	var rows []ReviewInfo

	b := query.NewBuilder().
		Equals("reviews.entity_type", models.EntityDestination).
		Contains("d.name", destination).
		OrderBy("reviews.created_at DESC").
		Limit(searchLimit)

	err := b.Apply(
		r.db.WithContext(ctx).
			Model(&models.Review{}).
			Select("d.name AS destination_name, reviews.rating, reviews.comment, reviews.created_at").
			Joins("JOIN destinations d ON reviews.entity_id = d.id"),
	).Scan(&rows).Error
	return rows, err
}

// FindDestination tìm một địa điểm theo tên
// Khi pg_trgm có sẵn dùng trigram similarity để chịu được lỗi chính tả
// từ NLU; không có thì fallback về substring match
func (r *searchRepo) FindDestination(ctx context.Context, name string) (*models.Destination, error) {
	var destination models.Destination

	tx := r.db.WithContext(ctx).Model(&models.Destination{})

	if r.trgm {
		err := tx.
			Select("destinations.*, similarity(name, ?) AS sim", name).
			Where("similarity(name, ?) > 0.3 OR LOWER(name) LIKE LOWER(?)", name, "%"+name+"%").
			Order("sim DESC").
			First(&destination).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}
		return &destination, nil
	}

	err := tx.
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("rating DESC").
		First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &destination, nil
}

// TiersFor price tier của hotels và restaurants tại một địa điểm
func (r *searchRepo) TiersFor(ctx context.Context, destination string) (*PriceTiers, error) {
	dest, err := r.FindDestination(ctx, destination)
	if err != nil {
		return nil, err
	}

	tiers := &PriceTiers{DestinationName: dest.Name}

	if err := r.db.WithContext(ctx).
		Model(&models.Hotel{}).
		Where("destination_id = ?", dest.ID).
		Pluck("price_range", &tiers.HotelTiers).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("destination_id = ?", dest.ID).
		Pluck("price_range", &tiers.MealTiers).Error; err != nil {
		return nil, err
	}

	return tiers, nil
}

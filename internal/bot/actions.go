package bot

import (
	"context"
	"errors"
	"fmt"

	apperrors "travelbot/internal/errors"
	"travelbot/internal/query"
	"travelbot/internal/repositories"
)

// ===========================================================================
// Action Handlers - tìm kiếm và tra cứu
// Mỗi handler đọc slots từ tracker, gọi SearchRepository rồi format kết quả
// Slot rỗng bị bỏ qua (không filter), slot số được strip ký tự không phải số
// ===========================================================================

// Actions nhóm các action tra cứu dữ liệu
type Actions struct {
	search    repositories.SearchRepository
	formatter *Formatter
}

// NewActions tạo nhóm action trên một SearchRepository
func NewActions(search repositories.SearchRepository, formatter *Formatter) *Actions {
	return &Actions{search: search, formatter: formatter}
}

// SearchDestination tìm địa điểm theo tỉnh/vùng miền/loại hình
func (a *Actions) SearchDestination(ctx context.Context, tracker *Tracker) ([]Response, error) {
	filters := repositories.DestinationFilters{
		Province: tracker.Slot("province"),
		Region:   tracker.Slot("region"),
		Category: tracker.Slot("category"),
	}

	items, err := a.search.SearchDestinations(ctx, filters)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Destinations(items))}, nil
}

// SearchHotel tìm khách sạn theo địa điểm/hạng sao/mức giá
func (a *Actions) SearchHotel(ctx context.Context, tracker *Tracker) ([]Response, error) {
	filters := repositories.HotelFilters{
		Destination: tracker.Slot("destination"),
		PriceRange:  tracker.Slot("price_range"),
	}
	// "5 sao" -> 5; không có số thì bỏ filter
	if n, ok := query.ExtractDigits(tracker.Slot("star_rating")); ok {
		filters.StarRating = &n
	}

	items, err := a.search.SearchHotels(ctx, filters)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Hotels(items))}, nil
}

// SearchRestaurant tìm nhà hàng theo địa điểm/loại ẩm thực/mức giá
func (a *Actions) SearchRestaurant(ctx context.Context, tracker *Tracker) ([]Response, error) {
	filters := repositories.RestaurantFilters{
		Destination: tracker.Slot("destination"),
		CuisineType: tracker.Slot("cuisine_type"),
		PriceRange:  tracker.Slot("price_range"),
	}

	items, err := a.search.SearchRestaurants(ctx, filters)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Restaurants(items))}, nil
}

// SearchActivity tìm hoạt động theo địa điểm/loại
func (a *Actions) SearchActivity(ctx context.Context, tracker *Tracker) ([]Response, error) {
	filters := repositories.ActivityFilters{
		Destination: tracker.Slot("destination"),
		Type:        tracker.Slot("activity_type"),
	}

	items, err := a.search.SearchActivities(ctx, filters)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Activities(items))}, nil
}

// SearchTour tìm tour theo địa điểm/số ngày
func (a *Actions) SearchTour(ctx context.Context, tracker *Tracker) ([]Response, error) {
	filters := repositories.TourFilters{
		Destination: tracker.Slot("destination"),
	}
	// "3 ngày" -> 3
	if n, ok := query.ExtractDigits(tracker.Slot("duration")); ok {
		filters.DurationDays = &n
	}

	items, err := a.search.SearchTours(ctx, filters)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Tours(items))}, nil
}

// GetWeather tra thời tiết, yêu cầu slot destination
func (a *Actions) GetWeather(ctx context.Context, tracker *Tracker) ([]Response, error) {
	destination := tracker.Slot("destination")
	if destination == "" {
		return []Response{TextResponse("Bạn muốn biết thời tiết ở đâu?")}, nil
	}

	var month *int
	if n, ok := query.ExtractDigits(tracker.Slot("month")); ok {
		month = &n
	}

	rows, err := a.search.WeatherFor(ctx, destination, month)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Weather(rows, destination))}, nil
}

// GetTransportation tra phương tiện giữa hai địa điểm, yêu cầu cả hai slot
func (a *Actions) GetTransportation(ctx context.Context, tracker *Tracker) ([]Response, error) {
	from := tracker.Slot("from_location")
	to := tracker.Slot("to_location")
	if from == "" || to == "" {
		return []Response{TextResponse("Bạn muốn đi từ đâu đến đâu?")}, nil
	}

	rows, err := a.search.TransportBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Transport(rows, from, to))}, nil
}

// GetReviews xem đánh giá về một địa điểm, yêu cầu slot destination
func (a *Actions) GetReviews(ctx context.Context, tracker *Tracker) ([]Response, error) {
	destination := tracker.Slot("destination")
	if destination == "" {
		return []Response{TextResponse("Bạn muốn xem đánh giá về địa điểm nào?")}, nil
	}

	rows, err := a.search.ReviewsForDestination(ctx, destination)
	if err != nil {
		return nil, err
	}
	return []Response{TextResponse(a.formatter.Reviews(rows, destination))}, nil
}

// CompareDestinations so sánh hai địa điểm lấy từ entities của message
// (không dùng slot vì mỗi slot chỉ giữ được một giá trị)
func (a *Actions) CompareDestinations(ctx context.Context, tracker *Tracker) ([]Response, error) {
	names := tracker.EntityValues("destination")
	if len(names) < 2 {
		return []Response{TextResponse("Bạn muốn so sánh những địa điểm nào? Vui lòng cho tôi biết ít nhất 2 địa điểm.")}, nil
	}

	out := fmt.Sprintf("So sánh %s và %s:\n\n", names[0], names[1])
	for _, name := range names[:2] {
		dest, err := a.search.FindDestination(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				out += fmt.Sprintf("Tôi không tìm thấy thông tin về %s.\n\n", name)
				continue
			}
			return nil, err
		}
		out += fmt.Sprintf("📍 %s (%s)\n", dest.Name, dest.Province)
		out += fmt.Sprintf("   Loại: %s\n", dest.Category)
		out += fmt.Sprintf("   Đánh giá: %s/5\n", formatRating(dest.Rating))
		out += fmt.Sprintf("   Thời điểm lý tưởng: %s\n", dest.BestTimeToVisit)
		out += fmt.Sprintf("   %s\n\n", Truncate(dest.Description, maxDescription))
	}

	return []Response{TextResponse(out)}, nil
}

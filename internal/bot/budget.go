package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "travelbot/internal/errors"
	"travelbot/internal/models"
	"travelbot/internal/query"
	"travelbot/internal/repositories"
)

// ===========================================================================
// Budget Estimator
// Ước tính ngân sách chuyến đi từ mức giá trung bình của khách sạn
// và nhà hàng tại địa điểm, cộng định mức hoạt động và di chuyển cố định
// ===========================================================================

// Đơn giá quy đổi cho từng price tier, đơn vị VNĐ
var (
	hotelTierCost = map[string]int64{
		models.PriceTierCheap:   500_000,
		models.PriceTierMid:     1_000_000,
		models.PriceTierPremium: 2_500_000,
	}
	mealTierCost = map[string]int64{
		models.PriceTierCheap:   100_000,
		models.PriceTierMid:     250_000,
		models.PriceTierPremium: 500_000,
	}
)

const (
	fallbackHotelPerNight = 1_000_000
	fallbackMealPrice     = 200_000
	mealsPerDay           = 3
	activitiesPerDay      = 300_000
	transportOneTime      = 500_000
	defaultDays           = 3
)

// BudgetEstimate chi tiết ngân sách đã tính, tách khỏi formatting để test
type BudgetEstimate struct {
	DestinationName string
	Days            int
	People          int
	HotelPerNight   int64
	FoodPerDay      int64
	Total           int64
}

// PerPerson ngân sách chia đều theo đầu người
func (e BudgetEstimate) PerPerson() int64 {
	if e.People <= 1 {
		return e.Total
	}
	return e.Total / int64(e.People)
}

// EstimateBudget tính ngân sách từ danh sách price tier của địa điểm
// Category không có dữ liệu dùng đơn giá fallback
func EstimateBudget(tiers *repositories.PriceTiers, days, people int) BudgetEstimate {
	hotelPerNight := averageTierCost(tiers.HotelTiers, hotelTierCost, fallbackHotelPerNight)
	foodPerDay := averageTierCost(tiers.MealTiers, mealTierCost, fallbackMealPrice) * mealsPerDay

	d := int64(days)
	total := hotelPerNight*d + foodPerDay*d + activitiesPerDay*d + transportOneTime
	if people > 1 {
		total *= int64(people)
	}

	return BudgetEstimate{
		DestinationName: tiers.DestinationName,
		Days:            days,
		People:          people,
		HotelPerNight:   hotelPerNight,
		FoodPerDay:      foodPerDay,
		Total:           total,
	}
}

// averageTierCost quy đổi từng tier sang VNĐ rồi lấy trung bình
// Tier lạ dùng fallback cho riêng dòng đó, danh sách rỗng trả fallback
func averageTierCost(tiers []string, table map[string]int64, fallback int64) int64 {
	if len(tiers) == 0 {
		return fallback
	}
	var sum int64
	for _, tier := range tiers {
		cost, ok := table[strings.ToLower(strings.TrimSpace(tier))]
		if !ok {
			cost = fallback
		}
		sum += cost
	}
	return sum / int64(len(tiers))
}

// BudgetAction action ước tính ngân sách
type BudgetAction struct {
	search repositories.SearchRepository
}

// NewBudgetAction tạo action trên một SearchRepository
func NewBudgetAction(search repositories.SearchRepository) *BudgetAction {
	return &BudgetAction{search: search}
}

// Recommend xử lý yêu cầu tính ngân sách
// Thiếu destination hỏi lại; destination không tồn tại trả thông báo
// thiếu dữ liệu thay vì dùng toàn fallback
func (b *BudgetAction) Recommend(ctx context.Context, tracker *Tracker) ([]Response, error) {
	destination := tracker.Slot("destination")
	if destination == "" {
		return []Response{TextResponse("Bạn muốn đi đâu để tôi tính ngân sách giúp bạn?")}, nil
	}

	days := defaultDays
	if n, ok := query.ExtractDigits(tracker.Slot("duration")); ok && n > 0 {
		days = n
	}
	people := 1
	if n, ok := query.ExtractDigits(tracker.Slot("num_people")); ok && n > 0 {
		people = n
	}

	tiers, err := b.search.TiersFor(ctx, destination)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			msg := fmt.Sprintf("Xin lỗi, tôi không có đủ thông tin về %s để tính ngân sách.", destination)
			return []Response{TextResponse(msg)}, nil
		}
		return nil, err
	}

	estimate := EstimateBudget(tiers, days, people)
	return []Response{TextResponse(formatBudget(estimate))}, nil
}

func formatBudget(e BudgetEstimate) string {
	d := int64(e.Days)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ngân sách dự kiến cho chuyến đi %s (%d ngày):\n\n", e.DestinationName, e.Days)
	fmt.Fprintf(&sb, "• Khách sạn: %s VNĐ/đêm × %d đêm = %s VNĐ\n",
		FormatVND(e.HotelPerNight), e.Days, FormatVND(e.HotelPerNight*d))
	fmt.Fprintf(&sb, "• Ăn uống: %s VNĐ/ngày × %d ngày = %s VNĐ\n",
		FormatVND(e.FoodPerDay), e.Days, FormatVND(e.FoodPerDay*d))
	fmt.Fprintf(&sb, "• Hoạt động/Tham quan: %s VNĐ/ngày × %d ngày = %s VNĐ\n",
		FormatVND(activitiesPerDay), e.Days, FormatVND(activitiesPerDay*d))
	fmt.Fprintf(&sb, "• Di chuyển: %s VNĐ\n", FormatVND(transportOneTime))
	fmt.Fprintf(&sb, "\n💰 Tổng cộng: %s VNĐ\n", FormatVND(e.Total))

	if e.People > 1 {
		fmt.Fprintf(&sb, "(Ước tính cho %d người, khoảng %s VNĐ/người, chưa bao gồm vé máy bay)\n",
			e.People, FormatVND(e.PerPerson()))
	} else {
		sb.WriteString("(Ước tính cho 1 người, chưa bao gồm vé máy bay)\n")
	}
	return sb.String()
}

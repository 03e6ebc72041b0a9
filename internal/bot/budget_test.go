package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"travelbot/internal/models"
	"travelbot/internal/repositories"
)

func tiersFor(hotels, meals []string) *repositories.PriceTiers {
	return &repositories.PriceTiers{
		DestinationName: "Đà Nẵng",
		HotelTiers:      hotels,
		MealTiers:       meals,
	}
}

func TestEstimateBudgetKnownTiers(t *testing.T) {
	// 1 khách sạn trung bình, 1 nhà hàng rẻ
	e := EstimateBudget(tiersFor(
		[]string{models.PriceTierMid},
		[]string{models.PriceTierCheap},
	), 3, 1)

	require.Equal(t, int64(1_000_000), e.HotelPerNight)
	require.Equal(t, int64(300_000), e.FoodPerDay) // 100k x 3 bữa

	// (1.000.000 + 300.000 + 300.000) * 3 + 500.000
	require.Equal(t, int64(5_300_000), e.Total)
}

func TestEstimateBudgetAveragesTiers(t *testing.T) {
	e := EstimateBudget(tiersFor(
		[]string{models.PriceTierCheap, models.PriceTierPremium},
		nil,
	), 1, 1)

	// (500k + 2.5tr) / 2
	require.Equal(t, int64(1_500_000), e.HotelPerNight)
	// Không có nhà hàng: fallback 200k x 3 bữa
	require.Equal(t, int64(600_000), e.FoodPerDay)
}

func TestEstimateBudgetFallbackWhenNoData(t *testing.T) {
	e := EstimateBudget(tiersFor(nil, nil), 3, 1)
	require.Equal(t, int64(1_000_000), e.HotelPerNight)
	require.Equal(t, int64(600_000), e.FoodPerDay)
}

func TestEstimateBudgetUnknownTierUsesFallback(t *testing.T) {
	e := EstimateBudget(tiersFor([]string{"siêu sang"}, nil), 1, 1)
	require.Equal(t, int64(1_000_000), e.HotelPerNight)
}

func TestEstimateBudgetMonotonicInDays(t *testing.T) {
	tiers := tiersFor([]string{models.PriceTierMid}, []string{models.PriceTierMid})
	short := EstimateBudget(tiers, 2, 1)
	long := EstimateBudget(tiers, 5, 1)
	require.Greater(t, long.Total, short.Total)
}

func TestEstimateBudgetGroupAndPerPerson(t *testing.T) {
	tiers := tiersFor([]string{models.PriceTierMid}, []string{models.PriceTierMid})

	solo := EstimateBudget(tiers, 3, 1)
	group := EstimateBudget(tiers, 3, 4)

	require.Equal(t, solo.Total*4, group.Total)
	require.Equal(t, solo.Total, group.PerPerson())
	require.Equal(t, solo.Total, solo.PerPerson())
}

func TestFormatBudgetOutput(t *testing.T) {
	e := EstimateBudget(tiersFor(
		[]string{models.PriceTierMid},
		[]string{models.PriceTierCheap},
	), 3, 1)
	out := formatBudget(e)

	require.Contains(t, out, "Ngân sách dự kiến cho chuyến đi Đà Nẵng (3 ngày):")
	require.Contains(t, out, "• Khách sạn: 1,000,000 VNĐ/đêm × 3 đêm = 3,000,000 VNĐ")
	require.Contains(t, out, "• Ăn uống: 300,000 VNĐ/ngày × 3 ngày = 900,000 VNĐ")
	require.Contains(t, out, "• Di chuyển: 500,000 VNĐ")
	require.Contains(t, out, "💰 Tổng cộng: 5,300,000 VNĐ")
	require.Contains(t, out, "(Ước tính cho 1 người, chưa bao gồm vé máy bay)")
}

func TestFormatBudgetPerPersonNote(t *testing.T) {
	e := EstimateBudget(tiersFor(nil, nil), 2, 3)
	out := formatBudget(e)
	require.Contains(t, out, "3 người")
	require.Contains(t, out, "VNĐ/người")
}

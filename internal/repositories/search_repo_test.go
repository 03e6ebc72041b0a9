package repositories

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "travelbot/internal/errors"
	"travelbot/internal/models"
)

// ---------- test helpers ----------

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:search_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func seedDestinations(t *testing.T, db *gorm.DB) map[string]uuid.UUID {
	t.Helper()
	destinations := []*models.Destination{
		{Name: "Đà Nẵng", Province: "Đà Nẵng", Region: "miền Trung", Category: "biển", Rating: 4.5},
		{Name: "Hội An", Province: "Quảng Nam", Region: "miền Trung", Category: "văn hóa", Rating: 4.9},
		{Name: "Sa Pa", Province: "Lào Cai", Region: "miền Bắc", Category: "núi", Rating: 3.8},
	}
	ids := make(map[string]uuid.UUID)
	for _, d := range destinations {
		require.NoError(t, db.Create(d).Error)
		ids[d.Name] = d.ID
	}
	return ids
}

// ---------- tests ----------

func TestTrigramDetectionOffWithoutPostgres(t *testing.T) {
	db := newTestDB(t)
	seedDestinations(t, db)

	// Không phải Postgres thì similarity() không tồn tại: repo phải
	// dùng nhánh substring, không được đụng đến pg_trgm
	repo := NewSearchRepository(db).(*searchRepo)
	require.False(t, repo.trgm)

	got, err := repo.FindDestination(context.Background(), "sa pa")
	require.NoError(t, err)
	require.Equal(t, "Sa Pa", got.Name)
}

func TestSearchDestinationsOrdersByRatingDesc(t *testing.T) {
	db := newTestDB(t)
	seedDestinations(t, db)
	repo := NewSearchRepository(db)

	got, err := repo.SearchDestinations(context.Background(), DestinationFilters{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []float64{4.9, 4.5, 3.8}, []float64{got[0].Rating, got[1].Rating, got[2].Rating})
}

func TestSearchDestinationsFiltersBySubstring(t *testing.T) {
	db := newTestDB(t)
	seedDestinations(t, db)
	repo := NewSearchRepository(db)

	got, err := repo.SearchDestinations(context.Background(), DestinationFilters{Region: "trung"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.SearchDestinations(context.Background(), DestinationFilters{Category: "núi"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Sa Pa", got[0].Name)
}

func TestSearchDestinationsCapsAtFive(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Destination{
			Name:   fmt.Sprintf("Nơi %d", i),
			Rating: float64(i),
		}).Error)
	}
	repo := NewSearchRepository(db)

	got, err := repo.SearchDestinations(context.Background(), DestinationFilters{})
	require.NoError(t, err)
	require.Len(t, got, 5)
}

func TestSearchHotelsJoinsDestinationAndNormalizesAmenities(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)

	five := &models.Hotel{
		Name: "KS Năm Sao", DestinationID: ids["Đà Nẵng"],
		StarRating: 5, PriceRange: models.PriceTierPremium,
		RawAmenities: `["wifi","hồ bơi"]`,
	}
	three := &models.Hotel{
		Name: "KS Ba Sao", DestinationID: ids["Đà Nẵng"],
		StarRating: 3, PriceRange: models.PriceTierMid,
		RawAmenities: "wifi, bữa sáng",
	}
	other := &models.Hotel{
		Name: "KS Sa Pa", DestinationID: ids["Sa Pa"],
		StarRating: 4, PriceRange: models.PriceTierMid,
	}
	for _, h := range []*models.Hotel{five, three, other} {
		require.NoError(t, db.Create(h).Error)
	}
	repo := NewSearchRepository(db)

	got, err := repo.SearchHotels(context.Background(), HotelFilters{Destination: "Đà Nẵng"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Sắp theo hạng sao giảm dần
	require.Equal(t, "KS Năm Sao", got[0].Name)
	require.Equal(t, []string{"wifi", "hồ bơi"}, got[0].Amenities)
	require.Equal(t, []string{"wifi", "bữa sáng"}, got[1].Amenities)
}

func TestSearchHotelsExactStarRating(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)
	for _, star := range []int{3, 4, 5} {
		require.NoError(t, db.Create(&models.Hotel{
			Name: fmt.Sprintf("KS %d sao", star), DestinationID: ids["Đà Nẵng"], StarRating: star,
		}).Error)
	}
	repo := NewSearchRepository(db)

	star := 4
	got, err := repo.SearchHotels(context.Background(), HotelFilters{StarRating: &star})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "KS 4 sao", got[0].Name)
}

func TestSearchToursMatchesDestinationText(t *testing.T) {
	db := newTestDB(t)
	tours := []*models.Tour{
		{Name: "Tour di sản", Destinations: "Đà Nẵng - Hội An - Huế", DurationDays: 4, Price: 4500000},
		{Name: "Tour Tây Bắc", Destinations: "Hà Nội - Sa Pa", DurationDays: 3, Price: 2900000},
	}
	for _, tour := range tours {
		require.NoError(t, db.Create(tour).Error)
	}
	repo := NewSearchRepository(db)

	got, err := repo.SearchTours(context.Background(), TourFilters{Destination: "Hội An"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tour di sản", got[0].Name)

	days := 3
	got, err = repo.SearchTours(context.Background(), TourFilters{DurationDays: &days})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tour Tây Bắc", got[0].Name)
}

func TestWeatherForFiltersByMonth(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)
	weather := []*models.Weather{
		{DestinationID: ids["Đà Nẵng"], Month: 4, AvgTemp: 28.5, Description: "nắng đẹp", IsBestTime: true},
		{DestinationID: ids["Đà Nẵng"], Month: 10, AvgTemp: 26.0, Description: "mưa nhiều"},
	}
	for _, w := range weather {
		require.NoError(t, db.Create(w).Error)
	}
	repo := NewSearchRepository(db)

	got, err := repo.WeatherFor(context.Background(), "Đà Nẵng", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Đà Nẵng", got[0].DestinationName)
	require.True(t, got[0].IsBestTime)

	month := 10
	got, err = repo.WeatherFor(context.Background(), "Đà Nẵng", &month)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 10, got[0].Month)
}

func TestTransportBetween(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)
	require.NoError(t, db.Create(&models.Transportation{
		FromDestinationID: ids["Đà Nẵng"],
		ToDestinationID:   ids["Hội An"],
		Type:              "taxi",
		Duration:          "45 phút",
		PriceRange:        "350.000 - 450.000 VNĐ",
	}).Error)
	repo := NewSearchRepository(db)

	got, err := repo.TransportBetween(context.Background(), "Đà Nẵng", "Hội An")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Đà Nẵng", got[0].FromName)
	require.Equal(t, "Hội An", got[0].ToName)

	// Chiều ngược lại không có dữ liệu
	got, err = repo.TransportBetween(context.Background(), "Hội An", "Đà Nẵng")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReviewsForDestinationOnlyDestinationType(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)
	reviews := []*models.Review{
		{EntityType: models.EntityDestination, EntityID: ids["Đà Nẵng"], Rating: 5, Comment: "Tuyệt"},
		{EntityType: models.EntityHotel, EntityID: ids["Đà Nẵng"], Rating: 1, Comment: "Không phải review destination"},
	}
	for _, r := range reviews {
		require.NoError(t, db.Create(r).Error)
	}
	repo := NewSearchRepository(db)

	got, err := repo.ReviewsForDestination(context.Background(), "Đà Nẵng")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].Rating)
}

func TestFindDestinationSubstringAndNotFound(t *testing.T) {
	db := newTestDB(t)
	seedDestinations(t, db)
	repo := NewSearchRepository(db)

	got, err := repo.FindDestination(context.Background(), "sa pa")
	require.NoError(t, err)
	require.Equal(t, "Sa Pa", got.Name)

	_, err = repo.FindDestination(context.Background(), "Atlantis")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTiersFor(t *testing.T) {
	db := newTestDB(t)
	ids := seedDestinations(t, db)
	require.NoError(t, db.Create(&models.Hotel{
		Name: "KS A", DestinationID: ids["Đà Nẵng"], PriceRange: models.PriceTierMid,
	}).Error)
	require.NoError(t, db.Create(&models.Restaurant{
		Name: "NH B", DestinationID: ids["Đà Nẵng"], PriceRange: models.PriceTierCheap,
	}).Error)
	repo := NewSearchRepository(db)

	got, err := repo.TiersFor(context.Background(), "Đà Nẵng")
	require.NoError(t, err)
	require.Equal(t, "Đà Nẵng", got.DestinationName)
	require.Equal(t, []string{models.PriceTierMid}, got.HotelTiers)
	require.Equal(t, []string{models.PriceTierCheap}, got.MealTiers)

	_, err = repo.TiersFor(context.Background(), "Atlantis")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

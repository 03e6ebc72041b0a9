//go:build ignore

// ===========================================================================
// Script tạo seed data cho development/testing
// Chạy: go run scripts/seed/main.go
// ===========================================================================

package main

import (
	"fmt"
	"log"

	"travelbot/internal/config"
	"travelbot/internal/database"
	"travelbot/internal/models"
	"travelbot/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	fmt.Println("🌱 Bắt đầu seed data...")

	// Load config
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Không thể load config: %v", err)
	}

	// Khởi tạo logger
	zapLog, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Không thể tạo logger: %v", err)
	}

	// Kết nối database
	db, err := database.NewConnection(&cfg.Database, zapLog)
	if err != nil {
		log.Fatalf("Không thể kết nối database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Không thể migrate: %v", err)
	}

	fmt.Println("✅ Đã kết nối database")

	// =========================================================================
	// 1. Tạo Destinations
	// =========================================================================
	destinations := []*models.Destination{
		{
			Name:            "Đà Nẵng",
			Province:        "Đà Nẵng",
			Region:          "miền Trung",
			Category:        "biển",
			Rating:          4.8,
			Description:     "Thành phố biển năng động với bãi biển Mỹ Khê, cầu Rồng và Bà Nà Hills. Điểm đến lý tưởng cho cả gia đình.",
			BestTimeToVisit: "Tháng 3 - Tháng 8",
		},
		{
			Name:            "Hội An",
			Province:        "Quảng Nam",
			Region:          "miền Trung",
			Category:        "văn hóa",
			Rating:          4.9,
			Description:     "Phố cổ được UNESCO công nhận với đèn lồng rực rỡ, ẩm thực đặc sắc và làng nghề truyền thống.",
			BestTimeToVisit: "Tháng 2 - Tháng 4",
		},
		{
			Name:            "Sa Pa",
			Province:        "Lào Cai",
			Region:          "miền Bắc",
			Category:        "núi",
			Rating:          4.6,
			Description:     "Thị trấn vùng cao với ruộng bậc thang, đỉnh Fansipan và văn hóa các dân tộc thiểu số.",
			BestTimeToVisit: "Tháng 9 - Tháng 11",
		},
		{
			Name:            "Phú Quốc",
			Province:        "Kiên Giang",
			Region:          "miền Nam",
			Category:        "biển",
			Rating:          4.7,
			Description:     "Đảo ngọc với bãi Sao cát trắng, làng chài Hàm Ninh và những khu nghỉ dưỡng ven biển.",
			BestTimeToVisit: "Tháng 11 - Tháng 3",
		},
		{
			Name:            "Hà Nội",
			Province:        "Hà Nội",
			Region:          "miền Bắc",
			Category:        "văn hóa",
			Rating:          4.5,
			Description:     "Thủ đô nghìn năm văn hiến với phố cổ 36 phố phường, hồ Gươm và ẩm thực đường phố nổi tiếng.",
			BestTimeToVisit: "Tháng 9 - Tháng 11",
		},
	}

	byName := make(map[string]uuid.UUID)
	for _, d := range destinations {
		var existing models.Destination
		if err := db.Where("name = ?", d.Name).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Destination '%s' đã tồn tại, bỏ qua\n", d.Name)
			byName[d.Name] = existing.ID
			continue
		}
		if err := db.Create(d).Error; err != nil {
			log.Fatalf("Không thể tạo destination: %v", err)
		}
		byName[d.Name] = d.ID
		fmt.Printf("✅ Đã tạo Destination: %s\n", d.Name)
	}

	// =========================================================================
	// 2. Tạo Hotels
	// =========================================================================
	hotels := []*models.Hotel{
		{
			Name:          "Khách sạn Mường Thanh Đà Nẵng",
			Address:       "270 Võ Nguyên Giáp, Đà Nẵng",
			DestinationID: byName["Đà Nẵng"],
			StarRating:    4,
			PriceRange:    models.PriceTierMid,
			Rating:        4.3,
		},
		{
			Name:          "InterContinental Danang Sun Peninsula",
			Address:       "Bãi Bắc, Sơn Trà, Đà Nẵng",
			DestinationID: byName["Đà Nẵng"],
			StarRating:    5,
			PriceRange:    models.PriceTierPremium,
			Rating:        4.9,
		},
		{
			Name:          "Homestay Phố Hội",
			Address:       "12 Trần Phú, Hội An",
			DestinationID: byName["Hội An"],
			StarRating:    2,
			PriceRange:    models.PriceTierCheap,
			Rating:        4.1,
		},
		{
			Name:          "Vinpearl Resort Phú Quốc",
			Address:       "Bãi Dài, Gành Dầu, Phú Quốc",
			DestinationID: byName["Phú Quốc"],
			StarRating:    5,
			PriceRange:    models.PriceTierPremium,
			Rating:        4.7,
		},
	}
	hotels[0].SetAmenities([]string{"wifi", "hồ bơi", "bữa sáng"})
	hotels[1].SetAmenities([]string{"wifi", "hồ bơi", "spa", "bãi biển riêng"})
	hotels[2].SetAmenities([]string{"wifi", "xe đạp miễn phí"})
	hotels[3].SetAmenities([]string{"wifi", "hồ bơi", "công viên nước"})

	for _, h := range hotels {
		var existing models.Hotel
		if err := db.Where("name = ?", h.Name).First(&existing).Error; err == nil {
			fmt.Printf("⚠️  Hotel '%s' đã tồn tại, bỏ qua\n", h.Name)
			continue
		}
		if err := db.Create(h).Error; err != nil {
			log.Fatalf("Không thể tạo hotel: %v", err)
		}
		fmt.Printf("✅ Đã tạo Hotel: %s\n", h.Name)
	}

	// =========================================================================
	// 3. Tạo Restaurants
	// =========================================================================
	restaurants := []*models.Restaurant{
		{
			Name:          "Bé Mặn",
			Address:       "Võ Nguyên Giáp, Đà Nẵng",
			DestinationID: byName["Đà Nẵng"],
			CuisineType:   "hải sản",
			PriceRange:    models.PriceTierMid,
			Rating:        4.4,
		},
		{
			Name:          "Cơm gà Bà Buội",
			Address:       "22 Phan Châu Trinh, Hội An",
			DestinationID: byName["Hội An"],
			CuisineType:   "đặc sản địa phương",
			PriceRange:    models.PriceTierCheap,
			Rating:        4.5,
		},
		{
			Name:          "Nhà hàng Bún Chả Hương Liên",
			Address:       "24 Lê Văn Hưu, Hà Nội",
			DestinationID: byName["Hà Nội"],
			CuisineType:   "món Bắc",
			PriceRange:    models.PriceTierCheap,
			Rating:        4.2,
		},
	}
	for _, r := range restaurants {
		var existing models.Restaurant
		if err := db.Where("name = ?", r.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(r).Error; err != nil {
			log.Fatalf("Không thể tạo restaurant: %v", err)
		}
		fmt.Printf("✅ Đã tạo Restaurant: %s\n", r.Name)
	}

	// =========================================================================
	// 4. Tạo Activities và Tours
	// =========================================================================
	activities := []*models.Activity{
		{
			Name:          "Lặn ngắm san hô Cù Lao Chàm",
			DestinationID: byName["Hội An"],
			Type:          "lặn biển",
			Price:         650000,
			Duration:      "1 ngày",
			Description:   "Tour lặn biển ngắm san hô tại khu dự trữ sinh quyển Cù Lao Chàm.",
		},
		{
			Name:          "Trekking Fansipan",
			DestinationID: byName["Sa Pa"],
			Type:          "leo núi",
			Price:         1200000,
			Duration:      "2 ngày",
			Description:   "Chinh phục nóc nhà Đông Dương theo cung Trạm Tôn với porter địa phương.",
		},
		{
			Name:          "Vé Bà Nà Hills",
			DestinationID: byName["Đà Nẵng"],
			Type:          "tham quan",
			Price:         850000,
			Duration:      "1 ngày",
			Description:   "Cáp treo lên Bà Nà Hills, Cầu Vàng và làng Pháp.",
		},
	}
	for _, a := range activities {
		var existing models.Activity
		if err := db.Where("name = ?", a.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(a).Error; err != nil {
			log.Fatalf("Không thể tạo activity: %v", err)
		}
		fmt.Printf("✅ Đã tạo Activity: %s\n", a.Name)
	}

	tours := []*models.Tour{
		{
			Name:         "Đà Nẵng - Hội An - Huế 4N3Đ",
			Destinations: "Đà Nẵng - Hội An - Huế",
			DurationDays: 4,
			Price:        4500000,
			Description:  "Hành trình di sản miền Trung: biển Mỹ Khê, phố cổ Hội An, Đại Nội Huế.",
		},
		{
			Name:         "Khám phá Sa Pa 3N2Đ",
			Destinations: "Hà Nội - Sa Pa",
			DurationDays: 3,
			Price:        2900000,
			Description:  "Bản Cát Cát, Fansipan và chợ phiên vùng cao, khởi hành từ Hà Nội.",
		},
	}
	for _, t := range tours {
		var existing models.Tour
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(t).Error; err != nil {
			log.Fatalf("Không thể tạo tour: %v", err)
		}
		fmt.Printf("✅ Đã tạo Tour: %s\n", t.Name)
	}

	// =========================================================================
	// 5. Tạo Weather, Transportation, Reviews
	// =========================================================================
	weather := []*models.Weather{
		{DestinationID: byName["Đà Nẵng"], Month: 4, AvgTemp: 28.5, Description: "nắng đẹp, ít mưa", IsBestTime: true},
		{DestinationID: byName["Đà Nẵng"], Month: 10, AvgTemp: 26.0, Description: "mưa nhiều, có thể có bão", IsBestTime: false},
		{DestinationID: byName["Sa Pa"], Month: 10, AvgTemp: 16.5, Description: "se lạnh, lúa chín vàng", IsBestTime: true},
		{DestinationID: byName["Phú Quốc"], Month: 12, AvgTemp: 27.0, Description: "khô ráo, biển êm", IsBestTime: true},
	}
	for _, w := range weather {
		var existing models.Weather
		if err := db.Where("destination_id = ? AND month = ?", w.DestinationID, w.Month).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(w).Error; err != nil {
			log.Fatalf("Không thể tạo weather: %v", err)
		}
	}
	fmt.Println("✅ Đã tạo Weather")

	transport := []*models.Transportation{
		{
			FromDestinationID: byName["Hà Nội"],
			ToDestinationID:   byName["Sa Pa"],
			Type:              "xe khách",
			Duration:          "5-6 giờ",
			PriceRange:        "250.000 - 400.000 VNĐ",
		},
		{
			FromDestinationID: byName["Đà Nẵng"],
			ToDestinationID:   byName["Hội An"],
			Type:              "taxi",
			Duration:          "45 phút",
			PriceRange:        "350.000 - 450.000 VNĐ",
		},
	}
	for _, t := range transport {
		var existing models.Transportation
		if err := db.Where("from_destination_id = ? AND to_destination_id = ? AND type = ?",
			t.FromDestinationID, t.ToDestinationID, t.Type).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(t).Error; err != nil {
			log.Fatalf("Không thể tạo transportation: %v", err)
		}
	}
	fmt.Println("✅ Đã tạo Transportation")

	reviews := []*models.Review{
		{EntityType: models.EntityDestination, EntityID: byName["Đà Nẵng"], Rating: 5, Comment: "Biển đẹp, đồ ăn ngon, người dân thân thiện. Nhất định sẽ quay lại!"},
		{EntityType: models.EntityDestination, EntityID: byName["Đà Nẵng"], Rating: 4, Comment: "Thành phố sạch sẽ, nhiều chỗ chơi. Mùa hè hơi đông khách."},
		{EntityType: models.EntityDestination, EntityID: byName["Hội An"], Rating: 5, Comment: "Phố cổ về đêm lung linh đèn lồng, rất đáng đi."},
	}
	for _, r := range reviews {
		if err := db.Create(r).Error; err != nil {
			log.Fatalf("Không thể tạo review: %v", err)
		}
	}
	fmt.Println("✅ Đã tạo Reviews")

	fmt.Println("🎉 Seed data hoàn tất!")
}

package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbot/internal/models"
)

// ===========================================================================
// Resource Registry
// Khởi tạo CRUD handler cho từng entity và đăng ký routes
// ===========================================================================

// Resources tập hợp CRUD handler của mọi entity
type Resources struct {
	Destinations   *ResourceHandler[models.Destination]
	Hotels         *ResourceHandler[models.Hotel]
	Restaurants    *ResourceHandler[models.Restaurant]
	Activities     *ResourceHandler[models.Activity]
	Tours          *ResourceHandler[models.Tour]
	Transportation *ResourceHandler[models.Transportation]
	Weather        *ResourceHandler[models.Weather]
	Reviews        *ResourceHandler[models.Review]
	Events         *ResourceHandler[models.Event]
}

// NewResources tạo handler cho cả 9 entity
func NewResources(db *gorm.DB, logger *zap.Logger) *Resources {
	hotels := NewResourceHandler[models.Hotel](db, "hotel", logger).
		WithBeforeWrite(func(h *models.Hotel) {
			if len(h.Amenities) > 0 {
				h.SetAmenities(h.Amenities)
			}
		}).
		WithAfterRead(func(h *models.Hotel) {
			h.NormalizeAmenities()
		}).
		WithPrepareUpdate(func(fields map[string]interface{}) {
			// amenities đến dạng JSON array, cột lưu dạng text
			if v, ok := fields["amenities"]; ok {
				if encoded, err := json.Marshal(v); err == nil {
					fields["amenities"] = string(encoded)
				} else {
					delete(fields, "amenities")
				}
			}
		})

	return &Resources{
		Destinations:   NewResourceHandler[models.Destination](db, "destination", logger),
		Hotels:         hotels,
		Restaurants:    NewResourceHandler[models.Restaurant](db, "restaurant", logger),
		Activities:     NewResourceHandler[models.Activity](db, "activity", logger),
		Tours:          NewResourceHandler[models.Tour](db, "tour", logger),
		Transportation: NewResourceHandler[models.Transportation](db, "transportation", logger),
		Weather:        NewResourceHandler[models.Weather](db, "weather", logger),
		Reviews:        NewResourceHandler[models.Review](db, "review", logger),
		Events:         NewResourceHandler[models.Event](db, "event", logger),
	}
}

// RegisterRoutes đăng ký routes cho mọi entity dưới một router group
// Events là log append-only nên không có update/delete
func (r *Resources) RegisterRoutes(rg *gin.RouterGroup) {
	r.Destinations.RegisterRoutes(rg, "/destinations")
	r.Hotels.RegisterRoutes(rg, "/hotels")
	r.Restaurants.RegisterRoutes(rg, "/restaurants")
	r.Activities.RegisterRoutes(rg, "/activities")
	r.Tours.RegisterRoutes(rg, "/tours")
	r.Transportation.RegisterRoutes(rg, "/transportation")
	r.Weather.RegisterRoutes(rg, "/weather")
	r.Reviews.RegisterRoutes(rg, "/reviews")
	r.Events.RegisterAppendOnly(rg, "/events")
}

package repositories

import (
	"context"

	"travelbot/internal/models"

	"gorm.io/gorm"
)

// ===========================================================================
// Event Repository
// Ghi log hội thoại append-only
// ===========================================================================

// eventRepo triển khai EventRecorder với GORM
type eventRepo struct {
	db *gorm.DB
}

// NewEventRecorder tạo instance mới của EventRecorder
func NewEventRecorder(db *gorm.DB) EventRecorder {
	return &eventRepo{db: db}
}

// Record ghi một event hội thoại
func (r *eventRepo) Record(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

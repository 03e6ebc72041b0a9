package repositories

import (
	"context"
	"errors"

	apperrors "travelbot/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Generic Resource Repository
// CRUD chung cho tất cả entity tables, dùng bởi REST resource layer
// Action layer chỉ đọc qua SearchRepository, không dùng struct này
// ===========================================================================

// ListOptions tùy chọn phân trang cho List
type ListOptions struct {
	// Skip vị trí bắt đầu
	Skip int

	// Limit số lượng records tối đa
	Limit int
}

// SetDefaults thiết lập giá trị mặc định
func (o *ListOptions) SetDefaults() {
	if o.Limit <= 0 {
		o.Limit = 100
	}
	if o.Skip < 0 {
		o.Skip = 0
	}
}

// Resource repository CRUD generic trên một entity table
type Resource[T any] struct {
	db *gorm.DB
}

// NewResource tạo resource repository cho entity T
func NewResource[T any](db *gorm.DB) *Resource[T] {
	return &Resource[T]{db: db}
}

// Create insert record mới
func (r *Resource[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// List lấy danh sách records với phân trang, không filter
func (r *Resource[T]) List(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	opts.SetDefaults()

	var entities []T
	var total int64

	query := r.db.WithContext(ctx).Model(new(T))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&entities).Error

	return entities, total, err
}

// FindByID tìm record theo ID
func (r *Resource[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateFields cập nhật một phần: chỉ các field có trong map được apply.
// Map rỗng trả về ErrEmptyUpdate, id không tồn tại trả về ErrNotFound.
func (r *Resource[T]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

// Delete xóa record không điều kiện (hard delete).
// Trả về existed=false khi không có row nào match - caller tự quyết định
// response semantics (legacy API luôn trả success).
func (r *Resource[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

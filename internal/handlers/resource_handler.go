package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbot/internal/dto"
	apperrors "travelbot/internal/errors"
	"travelbot/internal/middleware"
	"travelbot/internal/repositories"
)

// ===========================================================================
// Resource Handler
// CRUD handler generic, khởi tạo một instance cho mỗi entity
// Create 201, List skip/limit, Get 404, Put partial (400 khi body rỗng),
// Delete luôn trả 200 kể cả khi id không tồn tại (giữ tương thích client cũ)
// ===========================================================================

// ResourceHandler CRUD cho một entity type
type ResourceHandler[T any] struct {
	repo   *repositories.Resource[T]
	entity string
	logger *zap.Logger

	// beforeWrite chuẩn hóa model trước khi insert (nullable)
	beforeWrite func(*T)
	// afterRead chuẩn hóa model sau khi đọc từ DB (nullable)
	afterRead func(*T)
	// prepareUpdate chỉnh payload partial update trước khi áp dụng (nullable)
	prepareUpdate func(map[string]interface{})
}

// NewResourceHandler tạo handler cho một entity
func NewResourceHandler[T any](db *gorm.DB, entity string, logger *zap.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		repo:   repositories.NewResource[T](db),
		entity: entity,
		logger: logger,
	}
}

// WithBeforeWrite đặt hook chuẩn hóa trước khi insert
func (h *ResourceHandler[T]) WithBeforeWrite(fn func(*T)) *ResourceHandler[T] {
	h.beforeWrite = fn
	return h
}

// WithAfterRead đặt hook chuẩn hóa sau khi đọc
func (h *ResourceHandler[T]) WithAfterRead(fn func(*T)) *ResourceHandler[T] {
	h.afterRead = fn
	return h
}

// WithPrepareUpdate đặt hook chỉnh payload update
func (h *ResourceHandler[T]) WithPrepareUpdate(fn func(map[string]interface{})) *ResourceHandler[T] {
	h.prepareUpdate = fn
	return h
}

// handleDBError phân loại lỗi DB thành response phù hợp
func (h *ResourceHandler[T]) handleDBError(c *gin.Context, requestID string, err error) {
	h.logger.Error("database error",
		zap.String("request_id", requestID),
		zap.String("entity", h.entity),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.Error("NOT_FOUND", "Không tìm thấy "+h.entity+" yêu cầu"))
	case errors.Is(err, apperrors.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, dto.Error("EMPTY_UPDATE", "Không có trường nào để cập nhật"))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, dto.Error("DUPLICATE", h.entity+" đã tồn tại"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Error("DB_ERROR", "Có lỗi khi truy vấn dữ liệu. Vui lòng thử lại sau."))
	}
}

// Create tạo mới entity
// POST /api/v1/<entity>
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	if h.beforeWrite != nil {
		h.beforeWrite(&entity)
	}

	if err := h.repo.Create(ctx, &entity); err != nil {
		h.handleDBError(c, requestID, err)
		return
	}

	if h.afterRead != nil {
		h.afterRead(&entity)
	}

	h.logger.Info("entity created",
		zap.String("request_id", requestID),
		zap.String("entity", h.entity),
	)
	c.JSON(http.StatusCreated, dto.Success(entity))
}

// List liệt kê entity theo skip/limit
// GET /api/v1/<entity>?skip=0&limit=100
func (h *ResourceHandler[T]) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	opts := repositories.ListOptions{}
	if s := c.Query("skip"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			opts.Skip = parsed
		}
	}
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			opts.Limit = parsed
		}
	}
	opts.SetDefaults()

	items, total, err := h.repo.List(ctx, opts)
	if err != nil {
		h.handleDBError(c, requestID, err)
		return
	}

	if h.afterRead != nil {
		for i := range items {
			h.afterRead(&items[i])
		}
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(items, dto.NewMeta(opts.Skip, opts.Limit, total)))
}

// Get lấy một entity theo id
// GET /api/v1/<entity>/:id
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", "ID không hợp lệ"))
		return
	}

	entity, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.handleDBError(c, requestID, err)
		return
	}

	if h.afterRead != nil {
		h.afterRead(entity)
	}
	c.JSON(http.StatusOK, dto.Success(entity))
}

// Update cập nhật một phần entity, chỉ áp dụng các trường có trong body
// PUT /api/v1/<entity>/:id
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", "ID không hợp lệ"))
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	// JSON null tương đương không gửi trường đó
	for key, value := range fields {
		if value == nil {
			delete(fields, key)
		}
	}
	// Không cho client ghi đè các trường hệ thống
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")

	if h.prepareUpdate != nil {
		h.prepareUpdate(fields)
	}

	entity, err := h.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		h.handleDBError(c, requestID, err)
		return
	}

	if h.afterRead != nil {
		h.afterRead(entity)
	}

	h.logger.Info("entity updated",
		zap.String("request_id", requestID),
		zap.String("entity", h.entity),
		zap.String("id", id.String()),
	)
	c.JSON(http.StatusOK, dto.Success(entity))
}

// Delete xóa entity, trả 200 kèm message kể cả khi id không tồn tại
// DELETE /api/v1/<entity>/:id
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", "ID không hợp lệ"))
		return
	}

	existed, err := h.repo.Delete(ctx, id)
	if err != nil {
		h.handleDBError(c, requestID, err)
		return
	}

	if !existed {
		h.logger.Warn("delete trên id không tồn tại",
			zap.String("request_id", requestID),
			zap.String("entity", h.entity),
			zap.String("id", id.String()),
		)
	}

	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đã xóa " + h.entity}))
}

// RegisterRoutes đăng ký đầy đủ CRUD routes dưới một prefix
func (h *ResourceHandler[T]) RegisterRoutes(rg *gin.RouterGroup, path string) {
	group := rg.Group(path)
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// RegisterAppendOnly đăng ký routes cho entity dạng log: không update/delete
func (h *ResourceHandler[T]) RegisterAppendOnly(rg *gin.RouterGroup, path string) {
	group := rg.Group(path)
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelbot/internal/dto"
	"travelbot/internal/middleware"
)

// ===========================================================================
// Upload Handler
// Nhận file multipart, lưu với tên uuid giữ nguyên extension,
// trả về URL tuyệt đối trỏ đến file đã lưu
// ===========================================================================

// UploadHandler xử lý upload file tĩnh
type UploadHandler struct {
	uploadDir string
	urlPrefix string
	logger    *zap.Logger
}

// NewUploadHandler tạo handler lưu file vào uploadDir,
// file được serve dưới urlPrefix (ví dụ /static/uploads)
func NewUploadHandler(uploadDir, urlPrefix string, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
		urlPrefix: urlPrefix,
		logger:    logger,
	}
}

// Upload nhận một file từ form field "file"
// POST /api/v1/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", "Thiếu file upload"))
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.Error("Không tạo được thư mục upload",
			zap.String("request_id", requestID),
			zap.String("dir", h.uploadDir),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.Error("UPLOAD_ERROR", "Không lưu được file. Vui lòng thử lại sau."))
		return
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.uploadDir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.Error("Lưu file upload thất bại",
			zap.String("request_id", requestID),
			zap.String("path", dst),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.Error("UPLOAD_ERROR", "Không lưu được file. Vui lòng thử lại sau."))
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s%s/%s", scheme, c.Request.Host, h.urlPrefix, filename)

	h.logger.Info("file uploaded",
		zap.String("request_id", requestID),
		zap.String("filename", filename),
		zap.Int64("size", file.Size),
	)
	c.JSON(http.StatusOK, dto.Success(gin.H{"url": url}))
}

// RegisterRoutes đăng ký route upload
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

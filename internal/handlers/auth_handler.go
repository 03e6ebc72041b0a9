package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbot/internal/auth"
	"travelbot/internal/config"
	"travelbot/internal/dto"
	"travelbot/internal/middleware"
)

// ===========================================================================
// Auth Handler
// Đăng nhập admin bằng tài khoản cấu hình sẵn, cấp JWT cho các route quản trị
// ===========================================================================

// AuthHandler xử lý các endpoint auth
type AuthHandler struct {
	jwtService *auth.JWTService
	cfg        config.AuthConfig
	logger     *zap.Logger
}

// NewAuthHandler tạo auth handler mới
func NewAuthHandler(jwtService *auth.JWTService, cfg config.AuthConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		cfg:        cfg,
		logger:     logger,
	}
}

// LoginRequest body cho đăng nhập
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response sau đăng nhập
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
}

// Login đăng nhập admin
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		h.logger.Warn("Đăng nhập thất bại", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, dto.Error("INVALID_CREDENTIALS", "Tài khoản hoặc mật khẩu không đúng"))
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		h.logger.Error("Tạo token thất bại", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Đã có lỗi xảy ra"))
		return
	}

	// Cookie httpOnly cho FE cùng origin, token trong body cho client khác
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	c.SetCookie("access_token", token.AccessToken, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, dto.Success(&LoginResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		Username:    req.Username,
	}))
}

// Me trả về thông tin user từ token, dùng để FE kiểm tra phiên
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := c.Get(middleware.ContextKeyUsername)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Chưa đăng nhập"))
		return
	}
	c.JSON(http.StatusOK, dto.Success(gin.H{"username": username, "role": "admin"}))
}

// Logout xóa cookie phiên
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đã đăng xuất"}))
}

// RegisterRoutes đăng ký routes auth
// Route me cần middleware auth, gắn ở tầng router
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	group := rg.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.POST("/logout", h.Logout)
		group.GET("/me", authRequired, h.Me)
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/projworks/advance_ledger_app/internal/dto"
	"github.com/projworks/advance_ledger_app/internal/middleware"
	"github.com/projworks/advance_ledger_app/internal/utils"
	"github.com/projworks/advance_ledger_app/pkg/config"
)

// tokenSubject identifies what an unlock token grants access to. The app has
// one shared password, not user accounts.
const tokenSubject = "advances"

// AuthHandler handles the unlock endpoint.
type AuthHandler struct {
	passwordHash string
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		passwordHash: cfg.UnlockPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the unlock route with per-IP rate limiting.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/unlock", limitMiddleware, h.Unlock)
	}
}

// Unlock godoc
// @Summary Unlock the advances ledger
// @Description Verifies the shared password and returns a JWT bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param unlock body dto.UnlockRequest true "Shared password"
// @Success 200 {object} dto.UnlockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/unlock [post]
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if h.passwordHash == "" || !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := utils.GenerateJWT(tokenSubject, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.UnlockResponse{Token: token})
}

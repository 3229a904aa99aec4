package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/service"
)

// RefreshHandler exchanges the refresh cookie for a new access token.
type RefreshHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewRefreshHandler constructs handler.
func NewRefreshHandler(authService *service.AuthService, logger *zap.Logger) *RefreshHandler {
	return &RefreshHandler{auth: authService, logger: logger}
}

// Refresh handles POST /api/v1/refresh.
func (h *RefreshHandler) Refresh(c *fiber.Ctx) error {
	result, err := h.auth.Refresh(c.UserContext(), c.Cookies(RefreshCookieName))
	if err != nil {
		h.logger.Info("refresh rejected", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ResultResponse{
			ResultMsg: dto.ResultFail,
			Status:    fiber.StatusUnauthorized,
		})
	}

	c.Set(fiber.HeaderAuthorization, result.Access.Value)
	return c.JSON(dto.LoginResponse{
		ResultMsg: dto.ResultOK,
		Status:    "200",
		Content: dto.LoginContent{
			UserID:   result.Identity.UserID,
			UserName: result.Identity.UserName,
			UserRole: result.Identity.RoleID,
			Token:    result.Access.Value,
		},
	})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/service"
)

// LogoutHandler clears the refresh cookie for POST requests whose path mentions logout.
type LogoutHandler struct {
	auth    *service.AuthService
	cookies CookieOptions
	logger  *zap.Logger
}

// NewLogoutHandler constructs handler.
func NewLogoutHandler(authService *service.AuthService, cookies CookieOptions, logger *zap.Logger) *LogoutHandler {
	return &LogoutHandler{auth: authService, cookies: cookies, logger: logger}
}

// Handle validates the refresh cookie and expires it on the client.
func (h *LogoutHandler) Handle(c *fiber.Ctx) error {
	if !strings.Contains(c.Path(), "logout") || c.Method() != fiber.MethodPost {
		return c.Next()
	}

	if err := h.auth.Logout(c.UserContext(), c.Cookies(RefreshCookieName)); err != nil {
		h.logger.Info("logout rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ResultResponse{
			ResultMsg: dto.ResultFail,
			Status:    fiber.StatusBadRequest,
		})
	}

	// fiber drops non-positive Max-Age values, so the header is written directly
	cleared := &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
	}
	c.Response().Header.Add(fiber.HeaderSetCookie, cleared.String())

	return c.Status(fiber.StatusOK).JSON(dto.ResultResponse{
		ResultMsg: "200",
		Status:    fiber.StatusOK,
	})
}

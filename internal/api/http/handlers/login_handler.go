package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/service"
)

// LoginPath is the only path the login filter answers.
const LoginPath = "/api/v1/login"

// RefreshCookieName names the cookie carrying the refresh token.
const RefreshCookieName = "refresh"

// CookieOptions controls attributes of the refresh cookie.
type CookieOptions struct {
	Secure bool
}

// LoginHandler intercepts form logins and issues the token pair.
type LoginHandler struct {
	auth    *service.AuthService
	cookies CookieOptions
	logger  *zap.Logger
}

// NewLoginHandler constructs handler.
func NewLoginHandler(authService *service.AuthService, cookies CookieOptions, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{auth: authService, cookies: cookies, logger: logger}
}

// Handle answers POST /api/v1/login and passes every other request on.
func (h *LoginHandler) Handle(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost || c.Path() != LoginPath {
		return c.Next()
	}

	username := c.FormValue("username")
	password := c.FormValue("password")

	result, err := h.auth.Login(c.UserContext(), username, password)
	if err != nil {
		h.logger.Info("login failed", zap.String("user_id", username), zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginFailureResponse{
			ResultMsg: dto.ResultFail,
			Status:    fiber.StatusUnauthorized,
		})
	}

	access := result.Tokens.Access.Value
	c.Set(fiber.HeaderAuthorization, access)
	c.Cookie(h.refreshCookie(result.Tokens.Refresh.Value, h.auth.RefreshTTL()))

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		ResultMsg: dto.ResultOK,
		Status:    "200",
		Content: dto.LoginContent{
			UserID:   result.Identity.UserID,
			UserName: result.Identity.UserName,
			UserRole: result.Identity.RoleID,
			Token:    access,
		},
	})
}

func (h *LoginHandler) refreshCookie(value string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
	}
}

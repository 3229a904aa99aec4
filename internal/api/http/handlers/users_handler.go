package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/auth"
	"github.com/spec-kit/book-purple/internal/service"
	apperrors "github.com/spec-kit/book-purple/pkg/util"
)

// UsersHandler exposes user lookup endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Me handles GET /api/v1/users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c.UserContext())
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.OK(dto.NewIdentityResponse(identity)))
}

// Get handles GET /api/v1/users/:userId.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.NewUserProfileResponse(user)))
}

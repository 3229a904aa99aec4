package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/domain"
	"github.com/spec-kit/book-purple/internal/events"
)

const (
	bearerPrefix       = "Bearer "
	invalidTokenResult = "Invalid Token"
)

// Authenticator validates access tokens and attaches the identity to the request context.
type Authenticator struct {
	tokens *TokenManager
	events events.Dispatcher
	logger *zap.Logger
}

// NewAuthenticator constructs middleware.
func NewAuthenticator(tokens *TokenManager, dispatcher events.Dispatcher, logger *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, events: dispatcher, logger: logger}
}

// Handle runs before every route. Requests without an Authorization header continue
// anonymously; a present but unusable token ends the request with 406.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		a.logger.Debug("access token absent", zap.String("path", c.Path()))
		return c.Next()
	}

	// a header without the prefix is used verbatim
	tokenStr := strings.TrimPrefix(header, bearerPrefix)

	claims, err := a.tokens.DecodeFor(tokenStr, domain.PurposeAccess)
	if err != nil {
		a.logger.Info("access token rejected", zap.String("path", c.Path()), zap.Error(err))
		_ = a.events.Publish(c.UserContext(), events.New(events.EventTokenRejected, "").WithReason(err).WithPath(c.Path()))
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.ResultResponse{
			ResultMsg: invalidTokenResult,
			Status:    fiber.StatusNotAcceptable,
		})
	}

	c.SetUserContext(WithIdentity(c.UserContext(), claims.Identity()))
	return c.Next()
}

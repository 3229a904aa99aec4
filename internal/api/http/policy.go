package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-purple/internal/api/dto"
	"github.com/spec-kit/book-purple/internal/auth"
)

// Access is the requirement a route places on the caller.
type Access int

const (
	RequiresIdentity Access = iota
	Public
)

// Rule maps a method and path pattern to an access requirement. An empty Method
// matches every method. A Pattern ending in "/**" matches the prefix and anything
// below it; other patterns match the path exactly.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Policy is an ordered rule table. The first matching rule wins and unmatched
// requests require an identity.
type Policy []Rule

// DefaultPolicy is the route table of the service.
var DefaultPolicy = Policy{
	{Pattern: "/api/v1/login/**", Access: Public},
	{Pattern: "/api/v1/logout/**", Access: Public},
	{Pattern: "/api/v1/refresh", Access: Public},
	{Method: fiber.MethodGet, Pattern: "/health/**", Access: Public},
}

// AccessFor resolves the requirement for the request.
func (p Policy) AccessFor(method, path string) Access {
	for _, rule := range p {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return rule.Access
		}
	}
	return RequiresIdentity
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// RequirePolicy rejects anonymous callers of routes that require an identity.
func RequirePolicy(policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if policy.AccessFor(c.Method(), c.Path()) == Public {
			return c.Next()
		}
		if _, ok := auth.IdentityFromContext(c.UserContext()); !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ResultResponse{
				ResultMsg: "Forbidden",
				Status:    fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

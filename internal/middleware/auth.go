package middleware

import (
	"strings"

	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// callerKey is the Fiber locals slot holding the resolved CallerContext.
const callerKey = "caller"

// BearerAuth resolves the request's tenant. No Authorization header routes
// the caller to the shared default tenant; a valid bearer token routes to
// its account; anything else is an auth error.
func BearerAuth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			c.Locals(callerKey, types.CallerContext{
				TenantID:        cfg.DefaultAccountID,
				IsDefaultTenant: true,
			})
			return c.Next()
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return &types.AuthError{
				Code: fiber.StatusUnauthorized,
				Msg:  "Malformed authorization header, expected 'Bearer <token>'.",
			}
		}

		account, err := services.ValidateToken(db, cfg.JWTSecret, token)
		if err != nil {
			return &types.AuthError{
				Code: fiber.StatusUnauthorized,
				Msg:  "Invalid bearer token.",
			}
		}

		c.Locals(callerKey, types.CallerContext{
			TenantID:        account.ID,
			IsDefaultTenant: account.ID == cfg.DefaultAccountID,
		})
		return c.Next()
	}
}

// RequireAccount guards /api/account/:id routes: the caller must be an
// authenticated tenant acting on its own account. The auth check runs
// before any existence lookup, so acting on another tenant's account yields
// an auth error, never a not-found.
func RequireAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFrom(c)
		if caller.IsDefaultTenant {
			return &types.AuthError{
				Code: fiber.StatusUnauthorized,
				Msg:  "Authentication required to manage account resources.",
			}
		}
		if caller.TenantID != c.Params("id") {
			return &types.AuthError{
				Code: fiber.StatusForbidden,
				Msg:  "Cannot act on another account's resources.",
			}
		}
		return c.Next()
	}
}

// CallerFrom returns the CallerContext resolved by BearerAuth. Routes using
// it are always mounted behind the middleware, so the slot is present.
func CallerFrom(c *fiber.Ctx) types.CallerContext {
	caller, _ := c.Locals(callerKey).(types.CallerContext)
	return caller
}

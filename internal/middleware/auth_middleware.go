package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	jwtPkg "github.com/mystfest/registration-backend/pkg/jwt"
)

// AuthMiddleware accepts the session token from the access_token cookie or
// a bearer header, and attaches the authenticated identity to the request.
// Nothing about the caller lives outside these locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("access_token")
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Missing authentication token"))
			}
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid user ID in token"))
		}

		userEmail, ok := claims["email"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid email in token"))
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid role in token"))
		}

		c.Locals("userID", userID)
		c.Locals("userEmail", userEmail)
		c.Locals("userRole", models.Role(userRole))

		return c.Next()
	}
}

// RequireRoles gates a route to the given roles. Declared explicitly at
// route registration; an empty list means any authenticated user.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}

		role, ok := c.Locals("userRole").(models.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Insufficient permissions"))
	}
}

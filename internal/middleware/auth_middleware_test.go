package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	jwtPkg "github.com/mystfest/registration-backend/pkg/jwt"
)

func newGuardedApp(t *testing.T, roles ...models.Role) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/secure", AuthMiddleware(), RequireRoles(roles...), func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(fiber.Map{
			"email": c.Locals("userEmail"),
		}, "ok"))
	})
	return app
}

func signToken(t *testing.T, role string) string {
	t.Helper()

	token, err := jwtPkg.GenerateToken("user-1", "cl@example.com", role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAuthMiddlewareAcceptsCookieAndBearer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newGuardedApp(t)
	token := signToken(t, "CL")

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("cookie request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with cookie, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("bearer request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with bearer header, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsMissingOrInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("missing token request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("invalid token request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.StatusCode)
	}
}

func TestRequireRolesEnforcesRoleList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newGuardedApp(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, string(models.RoleAdmin)))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("admin request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, string(models.RoleCL)))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("cl request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", resp.StatusCode)
	}
}

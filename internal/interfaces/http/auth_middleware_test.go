package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-suite/erp-backend/internal/domain/entity"
	httpiface "github.com/erp-suite/erp-backend/internal/interfaces/http"
	"github.com/erp-suite/erp-backend/pkg/jwt"
)

const (
	testSecret = "secreto-de-prueba"
	testIssuer = "erp-backend"
)

// buildTestApp arma una app Fiber mínima con la cadena de middleware real
// (AuthMiddleware + RequireRole) y un handler que devuelve lo extraído del token.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegido",
		httpiface.AuthMiddleware(testSecret),
		httpiface.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": httpiface.GetUserID(c),
				"role":    httpiface.GetRole(c),
			})
		})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-123", role, testIssuer, 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	app := buildTestApp(entity.RoleWarehouseManager)

	status, body := doRequest(t, app, tokenForRole(t, entity.RoleWarehouseManager))

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "user-123")
	assert.Contains(t, body, entity.RoleWarehouseManager)
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp(entity.RoleWarehouseManager, entity.RoleAdmin)

	status, _ := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, status)
}

func TestRequireRole_RolNoPermitidoRetorna403(t *testing.T) {
	app := buildTestApp(entity.RoleWarehouseManager, entity.RoleAdmin)

	status, body := doRequest(t, app, tokenForRole(t, entity.RoleEmployee))

	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "FORBIDDEN")
}

func TestRequireRole_TokenSinRolRetorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	status, body := doRequest(t, app, tokenForRole(t, ""))

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	status, body := doRequest(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	status, body := doRequest(t, app, "esto-no-es-un-jwt")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearerRetorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin)) // sin prefijo Bearer
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateYParseIdaVuelta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-9", entity.RoleHRManager, testIssuer, 60)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", userID)
	assert.Equal(t, entity.RoleHRManager, role)
}

func TestJWT_TokenExpiradoRetornaError(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-9", entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	// Margen para que la expiración sea inequívoca.
	time.Sleep(10 * time.Millisecond)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestJWT_SecretIncorrectoRetornaError(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-9", entity.RoleAdmin, testIssuer, 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/domain/service"
	mockService "ratestack/internal/mocks/service"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stores", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.On("Verify", "good-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer good-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleUser, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_Authenticate_VerifyFails(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "stale-token").Return(nil, domainerrors.ErrTokenExpired)

	m := NewAuthMiddleware(tokenSvc)
	c := newAuthTestContext(t, "Bearer stale-token")

	err := m.Authenticate(okHandler)(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_EXPIRED", appErr.ErrorCode())
}

func TestAuthMiddleware_RequireRoles(t *testing.T) {
	tests := []struct {
		name    string
		allowed []entity.Role
		caller  entity.Role
		wantErr bool
	}{
		{name: "admin allowed on admin group", allowed: []entity.Role{entity.RoleAdmin}, caller: entity.RoleAdmin},
		{name: "user rejected on admin group", allowed: []entity.Role{entity.RoleAdmin}, caller: entity.RoleUser, wantErr: true},
		{name: "owner rejected on admin group", allowed: []entity.Role{entity.RoleAdmin}, caller: entity.RoleOwner, wantErr: true},
		{
			name:    "every role allowed on store group",
			allowed: []entity.Role{entity.RoleAdmin, entity.RoleOwner, entity.RoleUser},
			caller:  entity.RoleOwner,
		},
	}

	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newAuthTestContext(t, "")
			c.Set(ContextKeyUserID, uuid.New())
			c.Set(ContextKeyRole, tt.caller)

			err := m.RequireRoles(tt.allowed...)(okHandler)(c)

			if tt.wantErr {
				require.Error(t, err)
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthMiddleware_RequireRoles_RoleMissing(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c := newAuthTestContext(t, "")

	err := m.RequireRoles(entity.RoleAdmin)(okHandler)(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

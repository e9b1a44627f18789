package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratestack/internal/delivery/http/middleware"
	"ratestack/internal/delivery/http/response"
	"ratestack/internal/delivery/http/validator"
	"ratestack/internal/domain/entity"
	domainerrors "ratestack/internal/domain/errors"
	"ratestack/internal/usecase"
)

// stubAccountUsecase returns canned results for the account operations.
type stubAccountUsecase struct {
	signupUser *entity.User
	signupErr  error
	loginOut   *usecase.LoginOutput
	loginErr   error
	createUser *entity.User
	createErr  error
	users      []*entity.User
	listErr    error

	gotSignup *usecase.SignupInput
	gotLogin  *usecase.LoginInput
}

func (s *stubAccountUsecase) Signup(_ context.Context, input *usecase.SignupInput) (*entity.User, error) {
	s.gotSignup = input

	return s.signupUser, s.signupErr
}

func (s *stubAccountUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.gotLogin = input

	return s.loginOut, s.loginErr
}

func (s *stubAccountUsecase) UpdatePassword(_ context.Context, _ uuid.UUID, _ *usecase.UpdatePasswordInput) error {
	return nil
}

func (s *stubAccountUsecase) CreateUser(_ context.Context, _ *usecase.CreateUserInput) (*entity.User, error) {
	return s.createUser, s.createErr
}

func (s *stubAccountUsecase) ListUsers(_ context.Context, _ *usecase.ListUsersInput) ([]*entity.User, error) {
	return s.users, s.listErr
}

func (s *stubAccountUsecase) GetUser(_ context.Context, _ uuid.UUID) (*usecase.UserDetail, error) {
	return nil, domainerrors.ErrUserNotFound
}

// newJSONTestContext builds an echo context the way the server does,
// with the struct validator registered.
func newJSONTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireValidationError(t *testing.T, err error, message string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, message, appErr.Message())
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubAccountUsecase{signupUser: &entity.User{ID: userID, Role: entity.RoleUser}}
	h := &AuthHandler{
		uc:     stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newJSONTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alexandria Winterbottom","email":"alex@example.com","address":"12 Harbour Street","password":"Sup3rSecret!"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Contains(t, rec.Body.String(), userID.String())

	require.NotNil(t, stub.gotSignup)
	assert.Equal(t, "alex@example.com", stub.gotSignup.Email)
}

func TestAuthHandler_Signup_MissingPassword(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := &AuthHandler{
		uc:     stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, _ := newJSONTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alexandria Winterbottom","email":"alex@example.com","address":"12 Harbour Street"}`)

	err := h.Signup(c)
	requireValidationError(t, err, "password is required")
	assert.Nil(t, stub.gotSignup)
}

func TestAuthHandler_Signup_EmptyBody(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := &AuthHandler{
		uc:     stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newJSONTestContext(t, http.MethodPost, "/auth/signup", "")

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
	assert.Nil(t, stub.gotSignup)
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	stub := &stubAccountUsecase{}
	h := &AuthHandler{
		uc:     stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, _ := newJSONTestContext(t, http.MethodPost, "/auth/login", `{"password":"Sup3rSecret!"}`)

	err := h.Login(c)
	requireValidationError(t, err, "email is required")
	assert.Nil(t, stub.gotLogin)
}

func TestAuthHandler_UpdatePassword_EmptyBody(t *testing.T) {
	h := &AuthHandler{
		uc:     &stubAccountUsecase{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newJSONTestContext(t, http.MethodPut, "/auth/password", "")
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.UpdatePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
}

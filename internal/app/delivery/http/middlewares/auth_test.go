package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	args := m.Called(ctx, email, request)
	if response := args.Get(0); response != nil {
		return response.(*responses.UpsertUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserUsecase) PromoteToAdmin(ctx context.Context, email string) (*responses.UpdateResult, error) {
	args := m.Called(ctx, email)
	if result := args.Get(0); result != nil {
		return result.(*responses.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestMiddlewares(userUsecase *MockUserUsecase) *Middlewares {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 24
	return NewMiddlewares(zap.NewNop(), userUsecase, cfg)
}

func nextRecorder(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	called := false
	handler := m.Authenticate(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/booking", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called, "handler must not run after a 401")
	assert.Contains(t, recorder.Body.String(), constvars.ErrClientUnauthorized)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	called := false
	handler := m.Authenticate(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/booking", nil)
	request.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+"not-a-jwt")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, called, "handler must not run after a 403")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	token, err := utils.GenerateJWT("jane@example.com", "test-secret", -time.Hour)
	assert.NoError(t, err)

	called := false
	handler := m.Authenticate(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/booking", nil)
	request.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, called)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	token, err := utils.GenerateJWT("jane@example.com", "test-secret", time.Hour)
	assert.NoError(t, err)

	var decodedEmail string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodedEmail, _ = r.Context().Value(constvars.CONTEXT_DECODED_EMAIL_KEY).(string)
		w.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/booking", nil)
	request.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "jane@example.com", decodedEmail)
}

func TestRequireAdmin_NotAdmin(t *testing.T) {
	userUsecase := new(MockUserUsecase)
	userUsecase.On("IsAdmin", mock.Anything, "jane@example.com").Return(false, nil)
	m := newTestMiddlewares(userUsecase)

	called := false
	handler := m.RequireAdmin(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/doctor", nil)
	ctx := context.WithValue(request.Context(), constvars.CONTEXT_DECODED_EMAIL_KEY, "jane@example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, called)
	assert.Contains(t, recorder.Body.String(), constvars.ErrClientForbiddenRole)
}

func TestRequireAdmin_UnknownUser(t *testing.T) {
	// IsAdmin answers false for an email with no user record, so the
	// middleware turns an unknown caller into the same 403 as a non-admin.
	userUsecase := new(MockUserUsecase)
	userUsecase.On("IsAdmin", mock.Anything, "ghost@example.com").Return(false, nil)
	m := newTestMiddlewares(userUsecase)

	called := false
	handler := m.RequireAdmin(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodPut, "/user/admin/x@example.com", nil)
	ctx := context.WithValue(request.Context(), constvars.CONTEXT_DECODED_EMAIL_KEY, "ghost@example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.False(t, called)
}

func TestRequireAdmin_Admin(t *testing.T) {
	userUsecase := new(MockUserUsecase)
	userUsecase.On("IsAdmin", mock.Anything, "admin@example.com").Return(true, nil)
	m := newTestMiddlewares(userUsecase)

	called := false
	handler := m.RequireAdmin(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/doctor", nil)
	ctx := context.WithValue(request.Context(), constvars.CONTEXT_DECODED_EMAIL_KEY, "admin@example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, called)
}

func TestRequireAdmin_MissingDecodedEmail(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	called := false
	handler := m.RequireAdmin(nextRecorder(&called))

	request := httptest.NewRequest(http.MethodGet, "/doctor", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, called)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	var ctxRequestID string
	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	request := httptest.NewRequest(http.MethodGet, "/services", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.NotEmpty(t, ctxRequestID)
	assert.Equal(t, ctxRequestID, recorder.Header().Get(constvars.HeaderRequestID))
}

func TestRequestID_HonorsInbound(t *testing.T) {
	m := newTestMiddlewares(new(MockUserUsecase))

	var ctxRequestID string
	handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	request := httptest.NewRequest(http.MethodGet, "/services", nil)
	request.Header.Set(constvars.HeaderRequestID, "client-supplied-id")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "client-supplied-id", ctxRequestID)
}

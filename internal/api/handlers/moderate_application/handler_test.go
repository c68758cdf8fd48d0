package moderate_application

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univent-hse/Univent-VenueService/internal/api/middleware"
	"github.com/univent-hse/Univent-VenueService/internal/domain"
	moderateApplication "github.com/univent-hse/Univent-VenueService/internal/usecase/moderate_application"
	"github.com/univent-hse/Univent-VenueService/pkg/authtoken"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err error
	got *moderateApplication.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *moderateApplication.Request) (*domain.Application, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Application{
		ID:          req.ApplicationID,
		OrganizerID: 42,
		Title:       "Хакатон",
		Status:      domain.ApplicationStatus(req.Status),
	}, nil
}

func newTestRouter(uc *fakeUseCase, tokens *authtoken.Manager) *mux.Router {
	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(tokens, nopLogger{}))
	protected.HandleFunc("/applications/{applicationId}/moderate", handler.Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, router *mux.Router, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/10/moderate", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func curatorToken(t *testing.T, tokens *authtoken.Manager) string {
	t.Helper()
	pair, err := tokens.IssuePair(1, "curator", "Мария Куратор")
	require.NoError(t, err)
	return pair.AccessToken
}

func TestHandler_RequiresToken(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Minute, time.Hour)
	router := newTestRouter(&fakeUseCase{}, tokens)

	rec := doRequest(t, router, "", `{"status":"approved","assignedRoomId":1}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_StatusMapping(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Minute, time.Hour)
	token := curatorToken(t, tokens)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"access denied", moderateApplication.ErrAccessDenied, http.StatusForbidden},
		{"room required", moderateApplication.ErrRoomRequired, http.StatusBadRequest},
		{"invalid input", moderateApplication.ErrInvalidInput, http.StatusBadRequest},
		{"application not found", moderateApplication.ErrApplicationNotFound, http.StatusNotFound},
		{"unknown assigned room", moderateApplication.ErrRoomNotFound, http.StatusBadRequest},
		{"room conflict", moderateApplication.ErrRoomConflict, http.StatusConflict},
		{"internal error", moderateApplication.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err}, tokens)
			rec := doRequest(t, router, token, `{"status":"approved","assignedRoomId":1}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Success(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Minute, time.Hour)
	uc := &fakeUseCase{}
	router := newTestRouter(uc, tokens)

	rec := doRequest(t, router, curatorToken(t, tokens),
		`{"status":"approved","assignedRoomId":3,"curatorComment":"ок"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)

	// The principal and the path parameter must reach the use case
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(10), uc.got.ApplicationID)
	assert.Equal(t, int64(1), uc.got.Principal.ID)
	assert.Equal(t, domain.RoleCurator, uc.got.Principal.Role)
	require.NotNil(t, uc.got.AssignedRoomID)
	assert.Equal(t, int64(3), *uc.got.AssignedRoomID)
}

func TestHandler_InvalidApplicationID(t *testing.T) {
	tokens := authtoken.NewManager("test-secret", time.Minute, time.Hour)
	router := newTestRouter(&fakeUseCase{}, tokens)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/applications/abc/moderate",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Authorization", "Bearer "+curatorToken(t, tokens))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

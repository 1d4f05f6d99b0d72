package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"luxestay/internal/concierge/session"
	"luxestay/pkg/auth"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockConciergeService struct {
	createFunc  func(ctx context.Context, userID string) (*model.ConciergeTurn, error)
	getFunc     func(ctx context.Context, id string) (*session.Session, error)
	sendFunc    func(ctx context.Context, id, message string) (*model.ConciergeTurn, error)
	resetFunc   func(ctx context.Context, id string) (*model.ConciergeTurn, error)
	resultsFunc func(ctx context.Context, id string) (*session.Results, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockConciergeService) Create(ctx context.Context, userID string) (*model.ConciergeTurn, error) {
	return m.createFunc(ctx, userID)
}

func (m *mockConciergeService) Get(ctx context.Context, id string) (*session.Session, error) {
	return m.getFunc(ctx, id)
}

func (m *mockConciergeService) Send(ctx context.Context, id, message string) (*model.ConciergeTurn, error) {
	return m.sendFunc(ctx, id, message)
}

func (m *mockConciergeService) Reset(ctx context.Context, id string) (*model.ConciergeTurn, error) {
	return m.resetFunc(ctx, id)
}

func (m *mockConciergeService) Results(ctx context.Context, id string) (*session.Results, error) {
	return m.resultsFunc(ctx, id)
}

func (m *mockConciergeService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

var tokens = auth.NewTokenIssuer("handler-test-secret-0123456789", time.Hour)

func newRouter(svc *mockConciergeService) *httprouter.Router {
	router := httprouter.New()
	NewConciergeHandler(svc, tokens, logger.Discard()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreate(t *testing.T) {
	token, _, err := tokens.Issue("user-42", "demouser")
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
		userID string
	}{
		{"anonymous", "", http.StatusCreated, ""},
		{"with token", "Bearer " + token, http.StatusCreated, "user-42"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
		{"bad scheme", "Basic abc", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			svc := &mockConciergeService{
				createFunc: func(ctx context.Context, userID string) (*model.ConciergeTurn, error) {
					gotUser = userID
					return &model.ConciergeTurn{SessionID: "s-1", State: "idle", Reply: "Hi!"}, nil
				},
			}

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rec := serve(newRouter(svc), http.MethodPost, "/api/v1/concierge/sessions", "", headers)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if gotUser != tt.userID {
				t.Errorf("expected user %q, got %q", tt.userID, gotUser)
			}
		})
	}
}

func TestSend(t *testing.T) {
	svc := &mockConciergeService{
		sendFunc: func(ctx context.Context, id, message string) (*model.ConciergeTurn, error) {
			if id != "s-1" || message != "Paris" {
				t.Errorf("unexpected call: %s %s", id, message)
			}
			return &model.ConciergeTurn{SessionID: id, State: "awaiting_check_in", Reply: "When do you want to check in? (YYYY-MM-DD)"}, nil
		},
	}

	rec := serve(newRouter(svc), http.MethodPost, "/api/v1/concierge/sessions/s-1/messages", `{"message":"Paris"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data model.ConciergeTurn `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Data.State != "awaiting_check_in" {
		t.Errorf("unexpected state: %s", body.Data.State)
	}
}

func TestStatusMapping(t *testing.T) {
	notFound := apperrors.NotFoundWithID("Session", "s-1")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		svc    *mockConciergeService
		status int
	}{
		{
			name: "send malformed", method: http.MethodPost, path: "/api/v1/concierge/sessions/s-1/messages", body: `{"message":`,
			svc: &mockConciergeService{}, status: http.StatusBadRequest,
		},
		{
			name: "send unknown", method: http.MethodPost, path: "/api/v1/concierge/sessions/s-1/messages", body: `{"message":"hi"}`,
			svc: &mockConciergeService{sendFunc: func(ctx context.Context, id, message string) (*model.ConciergeTurn, error) {
				return nil, notFound
			}},
			status: http.StatusNotFound,
		},
		{
			name: "get unknown", method: http.MethodGet, path: "/api/v1/concierge/sessions/s-1",
			svc: &mockConciergeService{getFunc: func(ctx context.Context, id string) (*session.Session, error) {
				return nil, notFound
			}},
			status: http.StatusNotFound,
		},
		{
			name: "results", method: http.MethodGet, path: "/api/v1/concierge/sessions/s-1/results",
			svc: &mockConciergeService{resultsFunc: func(ctx context.Context, id string) (*session.Results, error) {
				return &session.Results{Hotels: []model.Hotel{}}, nil
			}},
			status: http.StatusOK,
		},
		{
			name: "reset", method: http.MethodPost, path: "/api/v1/concierge/sessions/s-1/reset",
			svc: &mockConciergeService{resetFunc: func(ctx context.Context, id string) (*model.ConciergeTurn, error) {
				return &model.ConciergeTurn{SessionID: id, State: "idle", Reply: "Conversation cleared."}, nil
			}},
			status: http.StatusOK,
		},
		{
			name: "delete", method: http.MethodDelete, path: "/api/v1/concierge/sessions/s-1",
			svc:    &mockConciergeService{deleteFunc: func(ctx context.Context, id string) error { return nil }},
			status: http.StatusNoContent,
		},
		{
			name: "delete invalid id", method: http.MethodDelete, path: "/api/v1/concierge/sessions/s-1",
			svc: &mockConciergeService{deleteFunc: func(ctx context.Context, id string) error {
				return apperrors.InvalidInput("Invalid session ID format")
			}},
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(tt.svc), tt.method, tt.path, tt.body, nil)
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

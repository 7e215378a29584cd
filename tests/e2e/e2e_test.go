package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"eventpro/internal/app"
	"eventpro/internal/config"
	"eventpro/internal/notification"
	"eventpro/internal/pkg/mailer"
	"eventpro/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) Close() error { return nil }

func (m *recordingMailer) Sent() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message(nil), m.sent...)
}

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	mail   *recordingMailer
}

// TestResponse holds the raw body; Error is decoded for 4xx/5xx answers.
type TestResponse struct {
	Data  json.RawMessage
	Error *ErrorDetail
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		AppEnv: "test",
		DB:     config.DBConfig{URL: ":memory:"},
		JWT:    config.JWTConfig{Secret: "test_secret_key_32_characters_min", TTL: time.Hour},
		CORS:   config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}, MaxAge: time.Hour},
		Log:    config.LogConfig{Level: "error", Format: "text"},
		Mail:   config.MailConfig{Driver: config.MailDriverConsole, SendTimeout: time.Second},
		Upload: config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
	}
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &E2ETestSuite{mail: &recordingMailer{}}
	fxApp := fx.New(
		fx.Supply(testConfig(t)),
		app.Module,
		fx.Decorate(func(mailer.Mailer) mailer.Mailer { return s.mail }),
		fx.Populate(&s.router, &s.db),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, fxApp.Start(ctx))
	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = fxApp.Stop(stopCtx)
	})

	_, err := seed.Run(context.Background(), s.db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		resp.Data = json.RawMessage(w.Body.Bytes())
		require.True(t, json.Valid(resp.Data), w.Body.String())
	}
	if w.Code >= http.StatusBadRequest {
		resp.Error = &ErrorDetail{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), resp.Error), w.Body.String())
	}
	return w, resp
}

func (s *E2ETestSuite) login(t *testing.T, email, password string) string {
	t.Helper()
	w, resp := s.request(t, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type bookingView struct {
	ID               int64   `json:"id"`
	CustomerName     string  `json:"customerName"`
	Status           string  `json:"status"`
	RejectionReason  *string `json:"rejectionReason"`
	NotificationSent bool    `json:"notificationSent"`
}

type contactView struct {
	ID               int64  `json:"id"`
	Status           string `json:"status"`
	NotificationSent bool   `json:"notificationSent"`
}

func TestE2E_BookingApproveOnce(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	w, resp := s.request(t, http.MethodPost, "/api/bookings/public", map[string]string{
		"customerName": "Lan",
		"email":        "lan@example.com",
		"eventType":    "Wedding",
		"eventDate":    "2025-12-20",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[bookingView](t, resp.Data)
	assert.Equal(t, "Pending", created.Status)
	path := "/api/bookings/" + strconv.FormatInt(created.ID, 10)

	w, resp = s.request(t, http.MethodPut, path+"/approve", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	approved := decode[bookingView](t, resp.Data)
	assert.Equal(t, "Approved", approved.Status)
	assert.True(t, approved.NotificationSent)

	sent := s.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "lan@example.com", sent[0].To)
	assert.Equal(t, notification.SubjectBookingApproved, sent[0].Subject)

	w, resp = s.request(t, http.MethodPut, path+"/approve", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ALREADY_PROCESSED", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "already processed")
	assert.Len(t, s.mail.Sent(), 1)

	w, resp = s.request(t, http.MethodPut, path+"/reject", map[string]string{"reason": "late"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_PROCESSED", resp.Error.Code)
}

func TestE2E_BookingRejectDefaultReason(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	_, resp := s.request(t, http.MethodPost, "/api/bookings/public", map[string]string{
		"customerName": "Minh", "email": "minh@example.com", "eventType": "Conference", "eventDate": "2026-01-10",
	}, "")
	b := decode[bookingView](t, resp.Data)

	w, resp := s.request(t, http.MethodPut, "/api/bookings/"+strconv.FormatInt(b.ID, 10)+"/reject", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rejected := decode[bookingView](t, resp.Data)
	assert.Equal(t, "Rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Không được cung cấp", *rejected.RejectionReason)

	w, resp = s.request(t, http.MethodPut, "/api/bookings/999/approve", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestE2E_ContactReplyDelete(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	w, resp := s.request(t, http.MethodPost, "/api/contacts", map[string]string{
		"name": "An", "email": "an@example.com", "message": "Hi",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decode[contactView](t, resp.Data)
	assert.Equal(t, "Pending", c.Status)
	path := "/api/contacts/" + strconv.FormatInt(c.ID, 10)

	w, resp = s.request(t, http.MethodPatch, path+"/reply", map[string]string{"replyMessage": "Thanks"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	replied := decode[contactView](t, resp.Data)
	assert.Equal(t, "Replied", replied.Status)
	assert.True(t, replied.NotificationSent)

	sent := s.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "an@example.com", sent[0].To)
	assert.Equal(t, notification.SubjectContactReply, sent[0].Subject)
	assert.Contains(t, sent[0].Text, "Thanks")

	w, _ = s.request(t, http.MethodPatch, path+"/reply", map[string]string{"replyMessage": "Again"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.request(t, http.MethodDelete, path, nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = s.request(t, http.MethodGet, path, nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestE2E_AccessControl(t *testing.T) {
	s := setupTestSuite(t)
	staff := s.login(t, seed.StaffEmail, seed.StaffPassword)

	w, resp := s.request(t, http.MethodGet, "/api/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)

	w, _ = s.request(t, http.MethodGet, "/api/bookings", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/bookings", nil, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	w, _ = s.request(t, http.MethodGet, "/api/users/me", nil, staff)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodPost, "/api/auth/login", map[string]string{"email": seed.AdminEmail, "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, resp.Error)
}

func TestE2E_RegisterThenRefresh(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "lan", "email": "lan@example.com", "password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := decode[struct {
		Token string `json:"token"`
	}](t, resp.Data).Token

	w, _ = s.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "lan2", "email": "lan@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, resp = s.request(t, http.MethodPost, "/api/auth/refresh", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[struct {
		Token string `json:"token"`
	}](t, resp.Data).Token)

	// customers cannot reach the admin surface
	w, _ = s.request(t, http.MethodGet, "/api/dashboard/stats", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestE2E_CatalogueAndDashboard(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	w, resp := s.request(t, http.MethodGet, "/api/event-types/public", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	types := decode[[]struct {
		TypeCode string `json:"typeCode"`
	}](t, resp.Data)
	assert.NotEmpty(t, types)

	w, resp = s.request(t, http.MethodGet, "/api/event-types", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[struct {
		EventTypes []struct {
			ID       int64  `json:"id"`
			TypeCode string `json:"typeCode"`
		} `json:"eventTypes"`
	}](t, resp.Data)
	require.NotEmpty(t, list.EventTypes)
	typeID := list.EventTypes[0].ID

	w, resp = s.request(t, http.MethodPost, "/api/events", map[string]any{
		"name": "Garden party", "eventTypeId": typeID, "date": "2025-08-01", "location": "Hanoi",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ev := decode[struct {
		ID int64 `json:"id"`
	}](t, resp.Data)
	evPath := strconv.FormatInt(ev.ID, 10)

	w, _ = s.request(t, http.MethodGet, "/api/events/public/"+evPath, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.request(t, http.MethodPatch, "/api/events/"+evPath+"/status", map[string]string{"status": "Đã phê duyệt"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = s.request(t, http.MethodGet, "/api/events/public/"+evPath, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodPost, "/api/events", map[string]any{
		"name": "Orphan", "eventTypeId": 9999, "date": "2025-08-01",
	}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, resp = s.request(t, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "Event Management System")

	w, resp = s.request(t, http.MethodGet, "/api/dashboard/stats", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stats := decode[struct {
		Totals struct {
			Users  int64 `json:"users"`
			Events int64 `json:"events"`
		} `json:"totals"`
		BookingStats struct {
			Labels []string `json:"labels"`
		} `json:"bookingStats"`
	}](t, resp.Data)
	assert.Equal(t, int64(2), stats.Totals.Users)
	assert.Equal(t, int64(1), stats.Totals.Events)
	assert.Len(t, stats.BookingStats.Labels, 12)
}

func TestE2E_ValidationDetails(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/contacts", map[string]string{
		"name": "An", "email": "not-an-email", "message": "Hi",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "email")

	w, _ = s.request(t, http.MethodGet, "/api/bookings/abc", nil, s.login(t, seed.AdminEmail, seed.AdminPassword))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func topLevelKeys(t *testing.T, raw json.RawMessage) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m), string(raw))
	return m
}

func TestE2E_BookingWireShape(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	w, resp := s.request(t, http.MethodPost, "/api/bookings/public", map[string]string{
		"customerName": "Lan", "email": "lan@example.com", "eventType": "Wedding", "eventDate": "2025-12-20",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	record := topLevelKeys(t, resp.Data)
	assert.Contains(t, record, "id")
	assert.Contains(t, record, "customerName")
	assert.NotContains(t, record, "success")
	assert.NotContains(t, record, "data")

	w, resp = s.request(t, http.MethodGet, "/api/bookings?page=1&limit=5", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := topLevelKeys(t, resp.Data)
	for _, k := range []string{"bookings", "currentPage", "totalPages", "totalBookings"} {
		assert.Contains(t, page, k)
	}

	path := "/api/bookings/" + string(record["id"])
	w, _ = s.request(t, http.MethodPut, path+"/approve", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = s.request(t, http.MethodPut, path+"/approve", nil, admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := topLevelKeys(t, resp.Data)
	assert.JSONEq(t, `"booking already processed"`, string(body["message"]))
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "success")

	w, resp = s.request(t, http.MethodGet, "/api/bookings", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestE2E_RejectChunkedEmptyBody(t *testing.T) {
	s := setupTestSuite(t)
	admin := s.login(t, seed.AdminEmail, seed.AdminPassword)

	_, resp := s.request(t, http.MethodPost, "/api/bookings/public", map[string]string{
		"customerName": "Hoa", "email": "hoa@example.com", "eventType": "Birthday", "eventDate": "2026-03-01",
	}, "")
	b := decode[bookingView](t, resp.Data)

	// unknown reader type: httptest leaves ContentLength at -1
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+strconv.FormatInt(b.ID, 10)+"/reject", io.NopCloser(strings.NewReader("")))
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+admin)
	require.EqualValues(t, -1, req.ContentLength)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rejected := decode[bookingView](t, w.Body.Bytes())
	assert.Equal(t, "Rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Không được cung cấp", *rejected.RejectionReason)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/motorcare_service/internal/adapter/logger"
	"github.com/sm8ta/motorcare_service/internal/adapter/memory"
	"github.com/sm8ta/motorcare_service/internal/adapter/prometheus"
	"github.com/sm8ta/motorcare_service/internal/config"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
	"github.com/sm8ta/motorcare_service/internal/core/services"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine    *gin.Engine
	reminders *flakyReminderRepo
	tokens    *JWTTokenService
	registry  *promclient.Registry
}

// flakyReminderRepo fails the next ReplaceOpenKmReminder call once armed.
type flakyReminderRepo struct {
	*memory.Store
	mu         sync.Mutex
	replaceErr error
}

func (r *flakyReminderRepo) failNextReplace(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceErr = err
}

func (r *flakyReminderRepo) ReplaceOpenKmReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	r.mu.Lock()
	err := r.replaceErr
	r.replaceErr = nil
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Store.ReplaceOpenKmReminder(ctx, reminder)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.NewStore()
	log := logger.NewNopLogger()
	validate := services.NewValidator()
	registry := promclient.NewRegistry()
	metrics := prometheus.NewPrometheusAdapter(registry)
	tokens := NewJWTTokenService("test-secret", "1h", log)
	reminders := &flakyReminderRepo{Store: store}

	userService := services.NewUserService(store, tokens, log, validate)
	motorcycleService := services.NewMotorcycleService(store, store, reminders, log, validate, memory.NewCache())
	reminderService := services.NewReminderService(reminders, motorcycleService, log, validate)
	serviceRecordService := services.NewServiceRecordService(store, motorcycleService, reminderService, log, metrics, validate)
	complaintService := services.NewComplaintService(store, motorcycleService, log, validate)

	router, err := NewRouter(
		&config.HTTP{Env: "test", Port: "0"},
		tokens,
		NewAuthHandler(userService, log, metrics),
		NewMotorcycleHandler(motorcycleService, log, metrics),
		NewServiceRecordHandler(serviceRecordService, log, metrics),
		NewComplaintHandler(complaintService, log, metrics),
		NewReminderHandler(reminderService, log, metrics),
	)
	require.NoError(t, err)

	return &testServer{
		engine:    router.Engine(),
		reminders: reminders,
		tokens:    tokens,
		registry:  registry,
	}
}

// do sends body as JSON unless it is nil and decodes the envelope.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

// doRaw sends a bodiless request with the Authorization header as given.
func (s *testServer) doRaw(t *testing.T, method, path, authorization string) (int, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

// counter reads a counter sample from the test registry, 0 when absent.
func (s *testServer) counter(t *testing.T, name, label, value string) float64 {
	t.Helper()

	families, err := s.registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, pair := range m.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// signUp registers and logs in a user, returning the bearer token.
func (s *testServer) signUp(t *testing.T, email string) string {
	t.Helper()

	code, resp := s.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusCreated, code, resp.Message)

	code, resp = s.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, code, resp.Message)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func motorcycleBody(plate, usage string, km int) gin.H {
	return gin.H{
		"brand":        "Honda",
		"model":        "Vario 160",
		"plate_number": plate,
		"year":         2023,
		"stnk_expiry":  "2028-03-01",
		"usage_type":   usage,
		"initial_km":   km,
	}
}

// createMotorcycle returns the new motorcycle id.
func (s *testServer) createMotorcycle(t *testing.T, token, plate, usage string, km int) string {
	t.Helper()

	code, resp := s.do(t, http.MethodPost, "/motorcycles", token, motorcycleBody(plate, usage, km))
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	return created.ID
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/fitness-backend/internal/application"
	"github.com/oksasatya/fitness-backend/internal/domain/entity"
	repo "github.com/oksasatya/fitness-backend/internal/domain/repository"
	handlers "github.com/oksasatya/fitness-backend/internal/interface/http"
	"github.com/oksasatya/fitness-backend/internal/interface/middleware"
	"github.com/oksasatya/fitness-backend/internal/router/modules"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
	"github.com/oksasatya/fitness-backend/pkg/validation"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func (m *memUsers) Create(_ context.Context, username, email, hash string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return nil, repo.ErrDuplicateEmail
		}
	}
	m.seq++
	u := &entity.User{ID: fmt.Sprintf("u%d", m.seq), Username: username, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	m.users[u.ID] = u
	return u, nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type memPlans struct{ plans []entity.TrainingPlan }

func (m *memPlans) List(_ context.Context, level string) ([]entity.TrainingPlan, error) {
	out := []entity.TrainingPlan{}
	for _, p := range m.plans {
		if level == "" || p.Level == level {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPlans) Get(_ context.Context, idOrSlug string) (*entity.TrainingPlan, error) {
	for _, p := range m.plans {
		if p.ID == idOrSlug || p.Slug == idOrSlug {
			cp := p
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memPlans) Upsert(context.Context, *entity.TrainingPlan) error { return nil }

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	logger := helpers.NewDiscardLogger()

	tokens, err := helpers.NewTokenManager("router_test_secret_0123456789abcdef", "fitness-test", 30*24*time.Hour)
	require.NoError(t, err)

	users := &memUsers{users: map[string]*entity.User{}}
	authSvc := application.NewAuthService(users, tokens, logger)
	exSvc := application.NewExerciseService([]entity.Exercise{
		{ID: "0001", Name: "3/4 sit-up", BodyPart: "waist", Target: "abs"},
		{ID: "0002", Name: "barbell curl", BodyPart: "upper arms", Target: "biceps"},
	}, nil, logger)
	planSvc := application.NewPlanService(&memPlans{plans: []entity.TrainingPlan{
		{ID: "p1", Slug: "beginner-full-body", Level: "beginner", Workouts: []entity.PlanWorkout{}},
	}}, nil, time.Minute, logger)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware())
	reg := NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), tokens))
	reg.Add(modules.NewPlanModule(handlers.NewPlanHandler(planSvc, logger)))
	reg.AddRoot(modules.NewExerciseModule(handlers.NewExerciseHandler(exSvc, logger)))
	reg.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(nil)))
	reg.RegisterAll()
	return engine
}

func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func tokenOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestAuthFlow_EndToEnd(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "alice", "email": "a@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := tokenOf(t, w)

	w = do(t, r, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice","email":"a@x.com","stats":{"totalCalories":0,"totalMinutes":0,"totalWorkouts":0}}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "a@x.com", "password": "wrong"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgInvalidCredentials, messageOf(t, w))

	w = do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "a@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	fresh := tokenOf(t, w)

	w = do(t, r, http.MethodGet, "/api/auth/profile", nil, fresh)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignup_Errors(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "alice", "email": "a@x.com", "password": "12345"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgValidation, messageOf(t, w))

	w = do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"email": "a@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgValidation, messageOf(t, w))

	w = do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "alice", "email": "a@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "bob", "email": "a@x.com", "password": "secret2"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgDuplicateEmail, messageOf(t, w))
}

func TestLogin_UnknownEmail(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgInvalidCredentials, messageOf(t, w))

	w = do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@x.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, handlers.MsgValidation, messageOf(t, w))
}

func TestProfile_Gate(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/api/auth/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, middleware.MsgUnauthenticated, messageOf(t, w))

	w = do(t, r, http.MethodGet, "/api/auth/profile", nil, "not-a-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, middleware.MsgInvalidToken, messageOf(t, w))
}

func TestExerciseRoutes(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.RootBanner, w.Body.String())

	w = do(t, r, http.MethodGet, "/exercises?page=1&limit=1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var page []entity.Exercise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page, 1)
	assert.Equal(t, "0001", page[0].ID)

	w = do(t, r, http.MethodGet, "/exercises?page=9", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/bodyparts", nil, "")
	assert.JSONEq(t, `["waist","upper arms"]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/exercises/bodypart/WAIST", nil, "")
	assert.Contains(t, w.Body.String(), `"bodyPart":"waist"`)

	w = do(t, r, http.MethodGet, "/exercises/search?q=curl", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barbell curl")

	w = do(t, r, http.MethodGet, "/exercises/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/exercises/0002", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/exercises/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, handlers.MsgNotFound, messageOf(t, w))
}

func TestPlanAndHealthRoutes(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/api/training-plans?level=beginner", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "beginner-full-body")

	w = do(t, r, http.MethodGet, "/api/training-plans?level=godlike", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/training-plans/beginner-full-body", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/training-plans/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

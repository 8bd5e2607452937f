package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"carelink/internal/config"
	"carelink/internal/models"
	"carelink/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func newUserTestServer(repo *MockUserRepository) (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{
		config:   &config.Config{},
		userRepo: repo,
	}
	s.userService = service.NewUserService(repo)
	return app, s
}

func TestNewUserForm(t *testing.T) {
	app, s := newUserTestServer(new(MockUserRepository))
	app.Get("/users/new", s.NewUserForm)

	resp, err := app.Test(httptest.NewRequest("GET", "/users/new", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(body))
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"email":      "dana@example.kz",
				"given_name": "Dana",
				"surname":    "Bekova",
				"city":       "Astana",
				"password":   "secret123",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "dana@example.kz").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"email":      "exists@example.kz",
				"given_name": "Dana",
				"surname":    "Bekova",
				"password":   "secret123",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "exists@example.kz").
					Return(&models.User{UserID: 1, Email: "exists@example.kz"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Missing email",
			body: map[string]string{
				"given_name": "Dana",
				"surname":    "Bekova",
				"password":   "secret123",
			},
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)
			app, s := newUserTestServer(mockRepo)
			app.Post("/users", s.CreateUser)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(4)).
			Return(&models.User{UserID: 4, Email: "dana@example.kz"}, nil)
		app, s := newUserTestServer(mockRepo)
		app.Get("/users/:id", s.GetUser)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/4", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
		assert.Equal(t, "dana@example.kz", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("User", uint(99)))
		app, s := newUserTestServer(mockRepo)
		app.Get("/users/:id", s.GetUser)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/99", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		app, s := newUserTestServer(mockRepo)
		app.Get("/users/:id", s.GetUser)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("surfaces read failures", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).
			Return(nil, models.NewInternalError(assert.AnError))
		app, s := newUserTestServer(mockRepo)
		app.Get("/users", s.ListUsers)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, models.CodeInternal, body.Code)
	})

	t.Run("returns the rows", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).Return([]models.User{
			{UserID: 1, Email: "a@example.kz"},
			{UserID: 2, Email: "b@example.kz"},
		}, nil)
		app, s := newUserTestServer(mockRepo)
		app.Get("/users", s.ListUsers)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var users []models.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
		assert.Len(t, users, 2)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).
			Return(models.NewNotFoundError("User", uint(7)))
		app, s := newUserTestServer(mockRepo)
		app.Delete("/users/:id", s.DeleteUser)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/7", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)
		app, s := newUserTestServer(mockRepo)
		app.Delete("/users/:id", s.DeleteUser)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/users/7", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

package users

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "aibuddy/pkg/errors"
	"aibuddy/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) PersistUser(req models.CreateUserRequest, hashedPassword []byte) error {
	args := m.Called(req, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(id int, changes *models.UserChanges) error {
	args := m.Called(id, changes)
	return args.Error(0)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Set("role", "admin")
	return c, w
}

func stringPtr(s string) *string  { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestRegisterUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	tests := []struct {
		name           string
		payload        models.CreateUserRequest
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "successful registration",
			payload: models.CreateUserRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockRepo.On("PersistUser", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "short password",
			payload: models.CreateUserRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "abc",
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			payload: models.CreateUserRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockRepo.On("PersistUser", mock.Anything, mock.Anything).
					Return(custom_error.WrapDBError("user already exists", "23505"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "repository error",
			payload: models.CreateUserRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockRepo.On("PersistUser", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()
			c, w := setupTestContext()

			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))

			handler.RegisterUser(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegisterUserNeverGrantsElevatedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	mockRepo.On("PersistUser", mock.MatchedBy(func(req models.CreateUserRequest) bool {
		return req.Role == "user"
	}), mock.Anything).Return(nil)

	c, w := setupTestContext()
	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     "admin",
	})
	c.Request = httptest.NewRequest("POST", "/users", bytes.NewBuffer(body))

	handler.RegisterUser(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	tests := []struct {
		name           string
		userID         string
		payload        models.UpdateUserRequest
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "successful update",
			userID: "1",
			payload: models.UpdateUserRequest{
				WeightLbs:      floatPtr(180.5),
				DailyWaterGoal: floatPtr(72),
			},
			setupMock: func() {
				mockRepo.On("GetUser", 1).Return(&models.User{
					ID:       1,
					Username: "testuser",
					Role:     "user",
				}, nil)
				mockRepo.On("UpdateUser", 1, mock.MatchedBy(func(changes *models.UserChanges) bool {
					return changes.WeightLbs != nil && *changes.WeightLbs == 180.5
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "invalid weight",
			userID: "1",
			payload: models.UpdateUserRequest{
				WeightLbs: floatPtr(-5),
			},
			setupMock: func() {
				mockRepo.On("GetUser", 1).Return(&models.User{ID: 1, Role: "user"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: "999",
			payload: models.UpdateUserRequest{
				WeightLbs: floatPtr(180),
			},
			setupMock: func() {
				mockRepo.On("GetUser", 999).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "no changes returns current user",
			userID:  "1",
			payload: models.UpdateUserRequest{},
			setupMock: func() {
				mockRepo.On("GetUser", 1).Return(&models.User{ID: 1, Role: "user"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()
			c, w := setupTestContext()

			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest("PATCH", "/users/"+tt.userID, bytes.NewBuffer(body))
			c.Params = []gin.Param{{Key: "id", Value: tt.userID}}

			handler.UpdateUser(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateUserRoleChangeRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	mockRepo.On("GetUser", 1).Return(&models.User{ID: 1, Role: "user"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Set("role", "user")

	body, _ := json.Marshal(models.UpdateUserRequest{Role: stringPtr("admin")})
	c.Request = httptest.NewRequest("PATCH", "/users/1", bytes.NewBuffer(body))
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.UpdateUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserForbiddenForOtherUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "2")
	c.Set("role", "user")
	c.Request = httptest.NewRequest("GET", "/users/1", nil)
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.GetUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockRepo := new(MockUserRepository)
	handler := NewHandler(mockRepo)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "successful list retrieval",
			setupMock: func() {
				mockRepo.On("GetUsers").Return([]models.User{
					{ID: 1, Username: "user1"},
					{ID: 2, Username: "user2"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.On("GetUsers").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMock()
			c, w := setupTestContext()
			c.Request = httptest.NewRequest("GET", "/users", nil)

			handler.GetUserList(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

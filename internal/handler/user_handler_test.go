package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"grainmarket-be/internal/metrics"
	"grainmarket-be/internal/user"
	"grainmarket-be/internal/utils"
	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string, role user.Role) (string, user.User, error) {
	args := m.Called(ctx, email, password, role)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id uint64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc user.Service, callerID uint64) *gin.Engine {
		h := &Handler{
			UserSvc:  svc,
			Metrics:  metrics.NewRegistry(),
			validate: validation.New(),
		}
		r := gin.New()
		r.GET("/me", func(c *gin.Context) {
			if callerID != 0 {
				ctx := utils.SetUserContext(c.Request.Context(), callerID, "", "")
				c.Request = c.Request.WithContext(ctx)
			}
			h.Me(c)
		})
		return r
	}

	t.Run("Returns Caller Record", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByID", mock.Anything, uint64(7)).
			Return(user.User{ID: 7, Email: "farmer@example.com", Role: user.RoleFarmer}, nil)

		r := newRouter(svc, 7)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"farmer@example.com"`)
		svc.AssertExpectations(t)
	})

	t.Run("Unknown Caller Maps To Not Found", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("GetUserByID", mock.Anything, uint64(99)).
			Return(user.User{}, user.ErrUserNotFound)

		r := newRouter(svc, 99)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

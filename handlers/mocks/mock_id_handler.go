package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockIDHandler struct {
	mock.Mock
}

func (m *MockIDHandler) EncodeID(c *gin.Context) {
	m.Called(c)
}

func (m *MockIDHandler) DecodeID(c *gin.Context) {
	m.Called(c)
}

func (m *MockIDHandler) HealthCheck(c *gin.Context) {
	m.Called(c)
}

func (m *MockIDHandler) RateLimitMiddleware() gin.HandlerFunc {
	args := m.Called()
	return args.Get(0).(gin.HandlerFunc)
}

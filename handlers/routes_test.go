package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-sqid/config"
	"go-sqid/handlers/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*gin.Engine, *mocks.MockIDHandler, *config.Config) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockHandler := &mocks.MockIDHandler{}
	mockHandler.On("RateLimitMiddleware").Return(gin.HandlerFunc(func(c *gin.Context) {}))
	cfg := config.DefaultConfig()
	return router, mockHandler, cfg
}

func TestRegisterRoutes_EncodeID(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("EncodeID", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.JSON(http.StatusOK, gin.H{})
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("POST", "/api/v1/ids/encode", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if status := resp.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestRegisterRoutes_DecodeID(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("DecodeID", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.JSON(http.StatusOK, gin.H{})
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("GET", "/api/v1/ids/86Rf07", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if status := resp.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestRegisterRoutes_HealthCheck(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("HealthCheck", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.JSON(http.StatusOK, gin.H{})
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if status := resp.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestRegisterRoutes_SetsRequestID(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("HealthCheck", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.String(http.StatusOK, "OK")
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated X-Request-ID header on the response")
	}
}

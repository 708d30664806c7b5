// Package handlers provides HTTP request handlers for the ID codec service.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"go-sqid/config"
	"go-sqid/services"
	"go-sqid/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	invalidRequestBody    = "Invalid request body"
	invalidNumbersMessage = "Numbers must be a non-empty array of non-negative integers"
	invalidIDMessage      = "Invalid identifier"
	errorEncodingNumbers  = "Error encoding numbers"
	errorDecodingID       = "Error decoding identifier"
	errorTimeout          = "Request timed out"
	blockedOutMessage     = "Could not produce an unblocked identifier for this input"
)

// IDHandlerInterface defines the methods that an ID handler should implement.
type IDHandlerInterface interface {
	EncodeID(c *gin.Context)
	DecodeID(c *gin.Context)
	HealthCheck(c *gin.Context)
	RateLimitMiddleware() gin.HandlerFunc
}

// IDHandler struct holds the dependencies for handling codec operations.
type IDHandler struct {
	service  services.CodecService
	validate *validator.Validate
	limiter  *rate.Limiter
	config   *config.Config
	logger   *zap.Logger
}

// NewIDHandler creates and returns a new IDHandler instance. It initializes
// the handler with the provided codec service, a new validator, and a rate
// limiter configured with the settings from the config.
func NewIDHandler(ctx context.Context, service services.CodecService, cfg *config.Config, logger *zap.Logger) (IDHandlerInterface, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.RateLimit <= 0 || cfg.RatePeriod <= 0 {
		return nil, errors.New("invalid rate limit configuration")
	}

	handler := &IDHandler{
		service:  service,
		validate: validator.New(),
		limiter:  rate.NewLimiter(rate.Every(cfg.RatePeriod), cfg.RateLimit),
		config:   cfg,
		logger:   logger,
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return handler, nil
}

// handleError is a helper function to handle errors and send appropriate responses
func (h *IDHandler) handleError(c *gin.Context, err error, customMessages map[error]string) {
	var statusCode int
	var errorMessage string

	switch {
	case errors.Is(err, services.ErrInvalidNumbers):
		statusCode = http.StatusBadRequest
		errorMessage = customMessages[services.ErrInvalidNumbers]
	case errors.Is(err, services.ErrInvalidID):
		statusCode = http.StatusBadRequest
		errorMessage = customMessages[services.ErrInvalidID]
	case errors.Is(err, services.ErrTooManyAttempts):
		statusCode = http.StatusUnprocessableEntity
		errorMessage = customMessages[services.ErrTooManyAttempts]
	case errors.Is(err, context.DeadlineExceeded):
		statusCode = http.StatusRequestTimeout
		errorMessage = customMessages[context.DeadlineExceeded]
	default:
		h.logger.Error("Unexpected error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errorMessage = customMessages[err]
		if errorMessage == "" {
			errorMessage = "Internal server error"
		}
	}

	c.JSON(statusCode, gin.H{"error": errorMessage})
}

// EncodeID handles the conversion of a number sequence into an identifier.
// It validates the input, encodes it, and returns the identifier together
// with the numbers it represents.
func (h *IDHandler) EncodeID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	var input types.EncodeRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Error("Error decoding request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestBody})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		h.logger.Error("Invalid input", zap.Error(err), zap.Uint64s("numbers", input.Numbers))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidNumbersMessage})
		return
	}

	id, err := h.service.EncodeNumbers(ctx, input.Numbers)
	if err != nil {
		h.handleError(c, err, map[error]string{
			services.ErrInvalidNumbers:  invalidNumbersMessage,
			services.ErrTooManyAttempts: blockedOutMessage,
			context.DeadlineExceeded:    errorTimeout,
			nil:                         errorEncodingNumbers,
		})
		return
	}

	response := types.IDResponse{
		ID:      id,
		Numbers: input.Numbers,
	}
	c.JSON(http.StatusOK, response)
}

// DecodeID recovers the number sequence for a given identifier.
// It returns the numbers in a JSON response, or an appropriate error if the
// identifier is malformed.
func (h *IDHandler) DecodeID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	id := c.Param("id")

	numbers, err := h.service.DecodeID(ctx, id)
	if err != nil {
		h.handleError(c, err, map[error]string{
			services.ErrInvalidID:    invalidIDMessage,
			context.DeadlineExceeded: errorTimeout,
			nil:                      errorDecodingID,
		})
		return
	}

	response := types.IDResponse{
		ID:      id,
		Numbers: numbers,
	}
	c.JSON(http.StatusOK, response)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCodecService is a mock CodecService interface
type MockCodecService struct {
	mock.Mock
}

func (m *MockCodecService) EncodeNumbers(ctx context.Context, numbers []uint64) (string, error) {
	args := m.Called(ctx, numbers)
	return args.String(0), args.Error(1)
}

func (m *MockCodecService) DecodeID(ctx context.Context, id string) ([]uint64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

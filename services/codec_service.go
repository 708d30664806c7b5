package services

import (
	"context"
	"errors"

	"go-sqid/sqid"

	"go.uber.org/zap"
)

var (
	ErrInvalidNumbers  = errors.New("numbers cannot be empty")
	ErrInvalidID       = errors.New("invalid identifier")
	ErrTooManyAttempts = errors.New("could not produce an unblocked identifier")
)

func handleCodecError(err error) error {
	switch {
	case errors.Is(err, sqid.ErrMaxAttempts):
		return ErrTooManyAttempts
	case errors.Is(err, sqid.ErrInvalidIdentifier), errors.Is(err, sqid.ErrInvalidSymbol):
		return ErrInvalidID
	default:
		return err
	}
}

// CodecService converts between number sequences and identifiers.
type CodecService interface {
	EncodeNumbers(ctx context.Context, numbers []uint64) (string, error)
	DecodeID(ctx context.Context, id string) ([]uint64, error)
}

type codecService struct {
	codec  *sqid.Sqids
	logger *zap.Logger
}

// NewCodecService wraps an immutable codec instance. The instance is shared
// by every call; the codec itself guarantees that is safe.
func NewCodecService(codec *sqid.Sqids, logger *zap.Logger) CodecService {
	return &codecService{codec: codec, logger: logger}
}

func (s *codecService) EncodeNumbers(ctx context.Context, numbers []uint64) (string, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("Encode operation cancelled", zap.Int("count", len(numbers)))
		return "", ctx.Err()
	default:
		if len(numbers) == 0 {
			return "", ErrInvalidNumbers
		}

		id, err := s.codec.Encode(numbers)
		if err != nil {
			s.logger.Error("Failed to encode numbers",
				zap.Uint64s("numbers", numbers),
				zap.Error(err))
			return "", handleCodecError(err)
		}

		s.logger.Info("Numbers encoded successfully",
			zap.Uint64s("numbers", numbers),
			zap.String("id", id))
		return id, nil
	}
}

func (s *codecService) DecodeID(ctx context.Context, id string) ([]uint64, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("Decode operation cancelled", zap.String("id", id))
		return nil, ctx.Err()
	default:
		numbers, err := s.codec.Decode(id)
		if err != nil {
			s.logger.Warn("Failed to decode identifier",
				zap.String("id", id),
				zap.Error(err))
			return nil, handleCodecError(err)
		}

		s.logger.Info("Identifier decoded successfully",
			zap.String("id", id),
			zap.Uint64s("numbers", numbers))
		return numbers, nil
	}
}

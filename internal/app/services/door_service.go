package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models/dto"
	"github.com/eduface/eduface/internal/pkg/apperrors"
	"github.com/eduface/eduface/internal/pkg/door"
)

// DoorService forwards open/close commands to the door actuator
type DoorService struct {
	actuator door.Actuator
	logger   zerolog.Logger
}

// NewDoorService creates a new door service instance
func NewDoorService(actuator door.Actuator, logger zerolog.Logger) *DoorService {
	return &DoorService{
		actuator: actuator,
		logger:   logger,
	}
}

// Trigger relays the action to the actuator and returns its outcome. An
// actuator exit status lands in the response body; only a relay-level failure
// (timeout, unrunnable script) becomes an error.
func (s *DoorService) Trigger(ctx context.Context, action string) (*dto.DoorResponse, error) {
	act := door.Action(action)
	if !act.Valid() {
		return nil, apperrors.ErrInvalidAction
	}

	result, err := s.actuator.Trigger(ctx, act)
	if err != nil {
		s.logger.Error().Err(err).Str("action", action).Msg("Door relay failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDoorRelayFailed, err)
	}

	if result.ExitCode != 0 {
		s.logger.Warn().Int("exitCode", result.ExitCode).Str("action", action).Msg("Door actuator exited non-zero")
	}

	return &dto.DoorResponse{
		Status:   result.Status,
		ExitCode: result.ExitCode,
		Output:   result.Output,
	}, nil
}

package service

import (
	"github.com/rs/zerolog"
	"github.com/themonkeyd/devmeetingbot/internal/domain/contract"
)

type Services struct {
	Rotation contract.RotationService
}

// New loads the persisted state through the given store and wires the
// services. A load failure is fatal: running with a silently-empty state
// would mask data loss.
func New(store contract.StateStore, log zerolog.Logger) (*Services, error) {
	rotation, err := newRotation(store, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Rotation: rotation,
	}, nil
}

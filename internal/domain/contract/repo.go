package contract

import "github.com/themonkeyd/devmeetingbot/internal/domain/entity"

// StateStore defines the contract for the durable rotation state.
type StateStore interface {
	// Load reads the persisted state, returning the default empty structure
	// when no prior state exists. Any other failure is an error.
	Load() (*entity.State, error)

	// Save overwrites the persisted state atomically.
	Save(state *entity.State) error

	Close() error
}

package contract

import "github.com/themonkeyd/devmeetingbot/internal/domain/entity"

// RotationService defines the contract for the rotation resolver.
type RotationService interface {
	// ResolveSpeaker returns the meeting leader for the given month.
	// The year only matters for months outside both fixed tables, where it
	// keys the persisted random assignment.
	ResolveSpeaker(month, year int) (string, error)

	// CycleType labels the five-month cycle a month belongs to
	// (normal/inversé). Display only.
	CycleType(month int) (string, error)

	// Planning builds the five-month planning view around currentMonth.
	Planning(currentMonth, year int) (*entity.Planning, error)

	// Reset discards all persisted state.
	Reset() error
}

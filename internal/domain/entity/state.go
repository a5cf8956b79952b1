package entity

import "fmt"

// State is the persisted rotation state. The three fields and their JSON
// names are a compatibility contract with existing data files: history and
// cycle_count are reserved and currently never populated, but they must
// round-trip through every storage backend.
type State struct {
	History     map[string]string `json:"history"`
	RandomTours map[string]string `json:"random_tours"`
	CycleCount  int               `json:"cycle_count"`
}

// NewState returns an empty state with non-nil maps.
func NewState() *State {
	return &State{
		History:     map[string]string{},
		RandomTours: map[string]string{},
		CycleCount:  0,
	}
}

// TourKey builds the random_tours key for a given year and month.
// No zero padding: "2025-9", matching existing persisted files.
func TourKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

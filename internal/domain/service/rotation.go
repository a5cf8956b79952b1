package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/themonkeyd/devmeetingbot/internal/domain"
	"github.com/themonkeyd/devmeetingbot/internal/domain/contract"
	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
)

// ErrInvalidMonth is returned when a caller passes a month outside [1,12].
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

type rotationService struct {
	store contract.StateStore
	log   zerolog.Logger

	// mu serializes access to state and rng: Telegram handlers and the
	// monthly cron job call into the resolver from separate goroutines, and
	// the mutate-then-persist sequence for a tour key must not interleave.
	mu    sync.Mutex
	state *entity.State
	rng   *rand.Rand
}

func newRotation(store contract.StateStore, log zerolog.Logger) (*rotationService, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation state: %w", err)
	}

	return &rotationService{
		store: store,
		log:   log,
		state: state,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// ResolveSpeaker returns the meeting leader for the given month, checking
// fixed table 1, then fixed table 2, then the persisted random assignments.
// A random pick is drawn at most once per (year, month) key and persisted
// immediately, so repeated calls always answer the same name.
func (s *rotationService) ResolveSpeaker(month, year int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	if name, ok := domain.Tour1[month]; ok {
		return name, nil
	}
	if name, ok := domain.Tour2[month]; ok {
		return name, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveRandomLocked(month, year), nil
}

func (s *rotationService) resolveRandomLocked(month, year int) string {
	key := entity.TourKey(year, month)
	if name, ok := s.state.RandomTours[key]; ok {
		return name
	}

	name := domain.Participants[s.rng.Intn(len(domain.Participants))]
	s.state.RandomTours[key] = name

	if err := s.store.Save(s.state); err != nil {
		// The in-memory pick still answers this request, but a restart
		// before the next successful save will re-roll this month.
		s.log.Error().Err(err).Str("tour_key", key).Str("speaker", name).
			Msg("failed to persist random assignment")
	} else {
		s.log.Info().Str("tour_key", key).Str("speaker", name).
			Msg("random assignment drawn")
	}

	return name
}

// CycleType labels the five-month cycle a month belongs to. Cycles are
// anchored so that September starts cycle 0; the label alternates every five
// months and is purely cosmetic. Note the anchor does not line up with the
// tour table boundaries (November/April); the mismatch is historical and the
// labels are kept as-is.
func (s *rotationService) CycleType(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	var cycle int
	if month >= 9 {
		cycle = (month - 9) / 5
	} else {
		cycle = (month + 3) / 5
	}

	if cycle%2 == 0 {
		return domain.CycleNormal, nil
	}
	return domain.CycleInverted, nil
}

// Planning builds the five-month planning view around currentMonth. The
// November–March and April–August windows read their tour table directly;
// the September/October window resolves month by month, drawing and
// persisting the September/October random picks as a side effect.
func (s *rotationService) Planning(currentMonth, year int) (*entity.Planning, error) {
	if currentMonth < 1 || currentMonth > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, currentMonth)
	}

	var (
		months []int
		tour   map[int]string
		label  string
	)
	switch {
	case currentMonth >= 11 || currentMonth <= 3:
		months, tour, label = []int{11, 12, 1, 2, 3}, domain.Tour1, domain.PlanningNormal
	case currentMonth <= 8:
		months, tour, label = []int{4, 5, 6, 7, 8}, domain.Tour2, domain.PlanningInverted
	default: // September and October
		months, label = []int{9, 10, 11, 12, 1}, domain.PlanningRandom
	}

	nextMonth := currentMonth + 1
	if nextMonth > 12 {
		nextMonth = 1
	}

	planning := &entity.Planning{
		CycleLabel: label,
		Entries:    make([]entity.PlanningEntry, 0, len(months)),
	}
	for _, m := range months {
		var speaker string
		if tour != nil {
			var ok bool
			if speaker, ok = tour[m]; !ok {
				speaker = domain.UnknownSpeaker
			}
		} else {
			keyYear := year
			if m < 9 {
				// Only the January slot wrapped past December; September
				// and October stay keyed to the current year so the view
				// answers from the picks already persisted for them.
				keyYear = year + 1
			}
			resolved, err := s.ResolveSpeaker(m, keyYear)
			if err != nil {
				return nil, err
			}
			speaker = resolved
		}

		planning.Entries = append(planning.Entries, entity.PlanningEntry{
			Month:     m,
			MonthName: domain.MonthNames[m],
			Speaker:   speaker,
			IsNext:    m == nextMonth,
		})
	}

	return planning, nil
}

// Reset discards all persisted state, including the reserved history and
// cycle_count fields, and writes the empty structure back.
func (s *rotationService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = entity.NewState()
	if err := s.store.Save(s.state); err != nil {
		return fmt.Errorf("failed to persist reset: %w", err)
	}

	s.log.Info().Msg("rotation state reset")
	return nil
}

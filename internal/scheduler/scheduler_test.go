package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnnouncer struct {
	calls int
	err   error
}

func (f *fakeAnnouncer) SendMonthlyAnnouncement() error {
	f.calls++
	return f.err
}

func TestCronSpec(t *testing.T) {
	assert.Equal(t, "0 8 1 * *", cronSpec(Config{Day: 1, Hour: 8}))
	assert.Equal(t, "0 17 15 * *", cronSpec(Config{Day: 15, Hour: 17}))
}

func TestCronSpec_ParsesAndFiresMonthly(t *testing.T) {
	spec := cronSpec(Config{Day: 1, Hour: 8})

	sched, err := cron.ParseStandard(spec)
	require.NoError(t, err)

	loc, err := time.LoadLocation("Africa/Douala")
	require.NoError(t, err)

	from := time.Date(2025, time.September, 20, 12, 0, 0, 0, loc)
	next := sched.Next(from)
	assert.Equal(t, time.Date(2025, time.October, 1, 8, 0, 0, 0, loc), next)

	following := sched.Next(next)
	assert.Equal(t, time.Date(2025, time.November, 1, 8, 0, 0, 0, loc), following)
}

func TestScheduler_StartStop(t *testing.T) {
	loc := time.UTC
	announcer := &fakeAnnouncer{}

	s := New(Config{Day: 1, Hour: 8}, announcer, loc, zerolog.Nop())
	require.NoError(t, s.Start())

	// Idempotent start.
	require.NoError(t, s.Start())

	s.Stop()
	assert.Nil(t, s.cron)
	assert.Zero(t, announcer.calls)
}

func TestScheduler_AnnounceLogsAndSwallowsErrors(t *testing.T) {
	announcer := &fakeAnnouncer{err: errors.New("telegram unreachable")}

	s := New(Config{Day: 1, Hour: 8}, announcer, time.UTC, zerolog.Nop())

	// Must not panic or propagate: the failure stops at this boundary.
	s.announce()
	assert.Equal(t, 1, announcer.calls)
}

package service

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
	"github.com/themonkeyd/devmeetingbot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStateStore *mocks.MockStateStore
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStateStore: mocks.NewMockStateStore(ctrl),
	}

	return
}

// newTestRotation builds a rotation service over the mocked store with the
// given initial state and a fixed random seed.
func newTestRotation(t *testing.T, m allMocks, state *entity.State) *rotationService {
	t.Helper()

	if state == nil {
		state = entity.NewState()
	}
	m.mockStateStore.EXPECT().Load().Return(state, nil).Times(1)

	svc, err := newRotation(m.mockStateStore, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, svc)

	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

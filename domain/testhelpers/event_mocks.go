package testhelpers

import (
	"context"

	"probtutor/events"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of events.Publisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// SequenceSource is a random.Source that replays fixed values. Intn returns
// the next int modulo n; Float64 returns the next float. Both wrap around.
type SequenceSource struct {
	Ints   []int
	Floats []float64

	i, f int
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.i%len(s.Ints)] % n
	s.i++
	return v
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.f%len(s.Floats)]
	s.f++
	return v
}

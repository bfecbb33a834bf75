package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Loocist23/2ta-mobile-app/internal/testutil"
)

// newTestQueue wires a queue to a manual clock and an event channel.
func newTestQueue(t *testing.T, opts ...Option) (*Queue, *testutil.ManualClock, chan Event) {
	t.Helper()
	clock := testutil.NewManualClock()
	events := make(chan Event, 64)

	opts = append(opts,
		WithClock(clock),
		WithSubscriber(func(ev Event) { events <- ev }),
	)
	q := NewQueue(opts...)
	t.Cleanup(q.Close)
	return q, clock, events
}

func waitEvent(t *testing.T, events chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for toast event")
		return Event{}
	}
}

// driveLifecycle advances the clock through one full notice lifecycle and
// returns the four observed events.
func driveLifecycle(t *testing.T, clock *testutil.ManualClock, events chan Event, rest time.Duration) [4]Event {
	t.Helper()
	var out [4]Event

	out[0] = waitEvent(t, events) // entering
	clock.BlockUntil(1)
	clock.Advance(enterDuration)

	out[1] = waitEvent(t, events) // resting
	clock.BlockUntil(1)
	clock.Advance(rest)

	out[2] = waitEvent(t, events) // exiting
	clock.BlockUntil(1)
	clock.Advance(exitDuration)

	out[3] = waitEvent(t, events) // dismissed
	return out
}

func TestQueue_Lifecycle(t *testing.T) {
	q, clock, events := newTestQueue(t)

	q.Show(Options{Message: "saved", Severity: SeveritySuccess, Duration: time.Second})

	evs := driveLifecycle(t, clock, events, time.Second)
	assert.Equal(t, PhaseEntering, evs[0].Phase)
	assert.Equal(t, PhaseResting, evs[1].Phase)
	assert.Equal(t, PhaseExiting, evs[2].Phase)
	assert.Equal(t, PhaseDismissed, evs[3].Phase)

	for _, ev := range evs {
		assert.Equal(t, "saved", ev.Notice.Message)
		assert.Equal(t, SeveritySuccess, ev.Notice.Severity)
	}

	// The display slot is empty after dismissal.
	_, phase, ok := q.Current()
	assert.False(t, ok)
	assert.Equal(t, PhaseIdle, phase)
}

func TestQueue_RestingDoesNotCountEnterTime(t *testing.T) {
	clock := testutil.NewManualClock()
	events := make(chan Event, 64)
	q := NewQueue(
		WithClock(clock),
		WithSubscriber(func(ev Event) { events <- ev }),
	)
	t.Cleanup(q.Close)

	q.Show(Options{Message: "m", Duration: time.Second})

	waitEvent(t, events) // entering
	clock.BlockUntil(1)
	clock.Advance(enterDuration)
	waitEvent(t, events) // resting

	// Advancing by less than the rest duration must not dismiss.
	clock.BlockUntil(1)
	clock.Advance(time.Second - time.Millisecond)
	_, phase, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, PhaseResting, phase)

	clock.Advance(time.Millisecond)
	assert.Equal(t, PhaseExiting, waitEvent(t, events).Phase)
}

func TestQueue_FIFOOrderNoDrops(t *testing.T) {
	q, clock, events := newTestQueue(t)

	// Burst while the first notice is still displaying.
	q.Show(Options{Message: "first", Duration: time.Second})
	q.Show(Options{Message: "second", Duration: time.Second})
	q.Show(Options{Message: "third", Duration: time.Second})

	var order []string
	var ids []int64
	for i := 0; i < 3; i++ {
		evs := driveLifecycle(t, clock, events, time.Second)
		order = append(order, evs[0].Notice.Message)
		ids = append(ids, evs[0].Notice.ID)
	}

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, 0, q.Pending())
}

func TestQueue_Defaults(t *testing.T) {
	q, clock, events := newTestQueue(t, WithDefaultDuration(500*time.Millisecond))

	q.Show(Options{Message: "plain"})

	ev := waitEvent(t, events)
	assert.Equal(t, SeverityInfo, ev.Notice.Severity)
	assert.Equal(t, 500*time.Millisecond, ev.Notice.Duration)

	// Drain so Cleanup's Close does not race the lifecycle.
	clock.BlockUntil(1)
	clock.Advance(enterDuration)
	waitEvent(t, events)
	clock.BlockUntil(1)
	clock.Advance(500 * time.Millisecond)
	waitEvent(t, events)
	clock.BlockUntil(1)
	clock.Advance(exitDuration)
	waitEvent(t, events)
	assert.Equal(t, 0, q.Pending())
}

func TestQueue_CloseDiscardsPending(t *testing.T) {
	q := NewQueue(WithClock(testutil.NewManualClock()))

	q.Show(Options{Message: "first"})
	q.Show(Options{Message: "second"})

	q.Close()
	q.Close() // idempotent

	// Showing after close is a no-op.
	q.Show(Options{Message: "late"})
	_, _, ok := q.Current()
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	n.Show(Options{Message: "ignored"}) // must not panic
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "entering", PhaseEntering.String())
	assert.Equal(t, "resting", PhaseResting.String())
	assert.Equal(t, "exiting", PhaseExiting.String())
	assert.Equal(t, "dismissed", PhaseDismissed.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

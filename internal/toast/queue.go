package toast

import (
	"sync"
	"time"
)

// Severity tags a notice for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Display timings. Enter and exit cover the viewport animations; the rest
// duration is how long a notice stays readable and may be overridden per
// notice.
const (
	DefaultDuration = 3200 * time.Millisecond
	enterDuration   = 160 * time.Millisecond
	exitDuration    = 180 * time.Millisecond
)

// Options describes a notice to enqueue.
type Options struct {
	Message  string
	Severity Severity      // defaults to SeverityInfo
	Duration time.Duration // rest duration, defaults to DefaultDuration
}

// Notice is one enqueued notice. IDs are assigned from a per-queue
// monotonic counter.
type Notice struct {
	ID       int64
	Message  string
	Severity Severity
	Duration time.Duration
}

// Phase is the lifecycle state of the displayed notice.
type Phase int

const (
	// PhaseIdle means the display slot is empty.
	PhaseIdle Phase = iota
	// PhaseEntering means the notice is animating in.
	PhaseEntering
	// PhaseResting means the notice is fully visible.
	PhaseResting
	// PhaseExiting means the notice is animating out.
	PhaseExiting
	// PhaseDismissed is reported once when a notice completes. The slot is
	// empty afterwards; it never persists as the queue state.
	PhaseDismissed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEntering:
		return "entering"
	case PhaseResting:
		return "resting"
	case PhaseExiting:
		return "exiting"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Event reports a lifecycle transition of a notice to the subscriber.
type Event struct {
	Notice Notice
	Phase  Phase
}

// Notifier is the handle collaborators use to raise user-facing notices.
type Notifier interface {
	Show(opts Options)
}

// Nop is a Notifier that discards every notice. Used where no viewport is
// attached (tests, headless commands).
type Nop struct{}

// Show implements Notifier.
func (Nop) Show(Options) {}

// Clock abstracts timer creation so tests can drive the lifecycle
// deterministically.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// realClock delegates to the time package.
type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Queue is the process-wide single-consumer display queue.
//
// Thread-safety: Show may be called from any goroutine; a single internal
// goroutine consumes the queue and drives the display lifecycle.
type Queue struct {
	mu      sync.Mutex
	pending []Notice
	current *Notice
	phase   Phase
	nextID  int64
	closed  bool

	clock    Clock
	restFor  time.Duration
	onEvent  func(Event)
	signal   chan struct{} // coalesced availability signal (buffered, size 1)
	done     chan struct{}
	finished chan struct{}
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock substitutes the timer source. Tests use a manual clock.
func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithDefaultDuration overrides the rest duration applied to notices that
// do not specify their own.
func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.restFor = d
		}
	}
}

// WithSubscriber registers the single lifecycle subscriber, typically the
// viewport renderer. Events are delivered in order from the queue's own
// goroutine; the subscriber must not block.
func WithSubscriber(fn func(Event)) Option {
	return func(q *Queue) { q.onEvent = fn }
}

// NewQueue creates a queue and starts its consumer goroutine.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		pending:  make([]Notice, 0, 8),
		clock:    realClock{},
		restFor:  DefaultDuration,
		signal:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Show implements Notifier. Append-only: notices are never dropped while
// the queue is open. Showing on a closed queue is a no-op.
func (q *Queue) Show(opts Options) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.nextID++
	notice := Notice{
		ID:       q.nextID,
		Message:  opts.Message,
		Severity: opts.Severity,
		Duration: opts.Duration,
	}
	if notice.Severity == "" {
		notice.Severity = SeverityInfo
	}
	if notice.Duration <= 0 {
		notice.Duration = q.restFor
	}
	q.pending = append(q.pending, notice)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Current returns the displayed notice and its phase. ok is false when the
// display slot is empty.
func (q *Queue) Current() (notice Notice, phase Phase, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return Notice{}, PhaseIdle, false
	}
	return *q.current, q.phase, true
}

// Pending returns the number of queued, not yet displayed notices.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close stops the consumer goroutine and discards pending notices. It
// blocks until the goroutine has exited. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.finished
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.done)
	<-q.finished
}

// run is the single consumer loop: dequeue, walk the lifecycle, repeat.
// The display slot is cleared on exit so a closed queue reads as idle.
func (q *Queue) run() {
	defer func() {
		q.mu.Lock()
		q.current = nil
		q.phase = PhaseIdle
		q.mu.Unlock()
		close(q.finished)
	}()

	for {
		notice, ok := q.next()
		if !ok {
			return
		}

		q.transition(notice, PhaseEntering)
		if !q.sleep(enterDuration) {
			return
		}

		// Auto-dismiss counts from the moment the notice finished entering.
		q.transition(notice, PhaseResting)
		if !q.sleep(notice.Duration) {
			return
		}

		q.transition(notice, PhaseExiting)
		if !q.sleep(exitDuration) {
			return
		}

		q.dismiss(notice)
	}
}

// next blocks until a notice is available or the queue is closed, then
// moves it into the display slot.
func (q *Queue) next() (Notice, bool) {
	for {
		q.mu.Lock()
		if len(q.pending) > 0 {
			notice := q.pending[0]
			// Nil out the slot so the backing array does not retain it.
			q.pending[0] = Notice{}
			if len(q.pending) == 1 {
				q.pending = q.pending[:0]
			} else {
				q.pending = q.pending[1:]
			}
			q.current = &notice
			q.phase = PhaseEntering
			q.mu.Unlock()
			return notice, true
		}
		q.mu.Unlock()

		select {
		case <-q.done:
			return Notice{}, false
		case <-q.signal:
		}
	}
}

func (q *Queue) sleep(d time.Duration) bool {
	select {
	case <-q.done:
		return false
	case <-q.clock.After(d):
		return true
	}
}

func (q *Queue) transition(notice Notice, phase Phase) {
	q.mu.Lock()
	q.phase = phase
	fn := q.onEvent
	q.mu.Unlock()

	if fn != nil {
		fn(Event{Notice: notice, Phase: phase})
	}
}

func (q *Queue) dismiss(notice Notice) {
	q.mu.Lock()
	q.current = nil
	q.phase = PhaseIdle
	fn := q.onEvent
	q.mu.Unlock()

	if fn != nil {
		fn(Event{Notice: notice, Phase: PhaseDismissed})
	}
}

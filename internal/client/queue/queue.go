// Package queue is the moderator's work queue: it loads pending records,
// orders them for display, walks them one at a time and applies decisions.
//
// The queue is not safe for concurrent use.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// ErrNothingSelected is returned by Verify and Reject when there is no
// current record to act on.
var ErrNothingSelected = errors.New("nothing available")

// Record is anything with a primary key.
type Record interface {
	RecordID() int64
}

// Source is the remote side of a queue. Verify and Reject may return a
// confirmation message to show the moderator; "" means none.
type Source[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Verify(ctx context.Context, id int64) (string, error)
	Reject(ctx context.Context, id int64) (string, error)
}

// View derives the displayed order from the server list.
type View[T Record] func(items []T, today models.Date) []T

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a transient message for the moderator.
type Notice struct {
	Message string
	Error   bool
	Expires time.Time
}

// Options tunes a Queue. Zero values fall back to defaults.
type Options struct {
	NoticeDuration time.Duration
	Now            func() time.Time
}

// DefaultNoticeDuration is how long a notice stays visible.
const DefaultNoticeDuration = 3 * time.Second

type Queue[T Record] struct {
	src       Source[T]
	view      View[T]
	now       func() time.Time
	noticeTTL time.Duration

	state  State
	loaded bool
	items  []T
	cursor int
	notice *Notice
}

// New returns a queue in the Loading state. Call Load to fetch records.
func New[T Record](src Source[T], view View[T], opts Options) *Queue[T] {
	q := &Queue[T]{
		src:       src,
		view:      view,
		now:       opts.Now,
		noticeTTL: opts.NoticeDuration,
		state:     StateLoading,
	}
	if q.now == nil {
		q.now = time.Now
	}
	if q.noticeTTL <= 0 {
		q.noticeTTL = DefaultNoticeDuration
	}
	if q.view == nil {
		q.view = ServerOrder[T]
	}
	return q
}

// Load fetches the pending list and resets the cursor to the first record.
// On failure the queue enters the Error state and keeps whatever it showed
// before.
func (q *Queue[T]) Load(ctx context.Context) error {
	q.state = StateLoading

	items, err := q.src.List(ctx)
	if err != nil {
		q.fail(err)
		return err
	}

	q.items = q.view(items, models.DateOf(q.now()))
	q.cursor = 0
	q.loaded = true
	q.state = StateReady
	return nil
}

// Verify approves the current record and reloads.
func (q *Queue[T]) Verify(ctx context.Context) error {
	return q.decide(ctx, q.src.Verify)
}

// Reject rejects the current record and reloads.
func (q *Queue[T]) Reject(ctx context.Context) error {
	return q.decide(ctx, q.src.Reject)
}

func (q *Queue[T]) decide(ctx context.Context, op func(context.Context, int64) (string, error)) error {
	cur, ok := q.Current()
	if !ok {
		return ErrNothingSelected
	}

	msg, err := op(ctx, cur.RecordID())
	if err != nil {
		q.fail(err)
		return err
	}

	if err := q.Load(ctx); err != nil {
		return err
	}
	if msg != "" {
		q.setNotice(msg, false)
	}
	return nil
}

func (q *Queue[T]) fail(err error) {
	q.state = StateError
	q.setNotice(err.Error(), true)
}

func (q *Queue[T]) setNotice(msg string, isErr bool) {
	q.notice = &Notice{Message: msg, Error: isErr, Expires: q.now().Add(q.noticeTTL)}
}

// expire drops a notice whose display time is over. An expired error notice
// leaves the Error state the same way Dismiss does.
func (q *Queue[T]) expire() {
	if q.notice != nil && !q.now().Before(q.notice.Expires) {
		q.Dismiss()
	}
}

// Dismiss hides the current notice. After an error the queue returns to the
// last loaded list, or stays in Error if nothing was ever loaded.
func (q *Queue[T]) Dismiss() {
	q.notice = nil
	if q.state == StateError && q.loaded {
		q.state = StateReady
	}
}

// Notice returns the visible notice, if any.
func (q *Queue[T]) Notice() (Notice, bool) {
	q.expire()
	if q.notice == nil {
		return Notice{}, false
	}
	return *q.notice, true
}

func (q *Queue[T]) State() State {
	q.expire()
	return q.state
}

// Len is the number of records in the displayed view.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Index is the cursor position.
func (q *Queue[T]) Index() int {
	return q.cursor
}

// Current returns the record under the cursor. It reports false when the
// queue is not Ready or the view is empty.
func (q *Queue[T]) Current() (T, bool) {
	var zero T
	if q.State() != StateReady || len(q.items) == 0 {
		return zero, false
	}
	return q.items[q.cursor], true
}

func (q *Queue[T]) CanPrev() bool {
	return q.State() == StateReady && q.cursor > 0
}

func (q *Queue[T]) CanNext() bool {
	return q.State() == StateReady && q.cursor < len(q.items)-1
}

// Next moves the cursor forward. It reports false without moving at the end.
func (q *Queue[T]) Next() bool {
	if !q.CanNext() {
		return false
	}
	q.cursor++
	return true
}

// Prev moves the cursor back. It reports false without moving at the start.
func (q *Queue[T]) Prev() bool {
	if !q.CanPrev() {
		return false
	}
	q.cursor--
	return true
}

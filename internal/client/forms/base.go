package forms

import (
	"context"
	"maps"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/trademinutes/tmclient/internal/client/debuglog"
	"github.com/trademinutes/tmclient/internal/logging"
)

// View is a consistent snapshot of a form for rendering.
type View struct {
	State   State
	Success string
	Error   string
	Fields  map[string]string
}

// Option configures a form.
type Option func(*base)

// WithAfterFunc replaces time.AfterFunc for delayed follow-ups.
func WithAfterFunc(fn func(d time.Duration, f func())) Option {
	return func(b *base) { b.after = fn }
}

// WithTrace makes the form write its debug trace into t.
func WithTrace(t *debuglog.Trace) Option {
	return func(b *base) { b.trace = t }
}

func WithLogger(l logging.Logger) Option {
	return func(b *base) { b.log = l }
}

type submission struct {
	validate func(v map[string]string) fieldErrors
	run      func(ctx context.Context, v map[string]string) (string, error)
	// failure turns a remote error into the message shown to the user.
	failure func(err error) string
	// then runs once the form has moved to succeeded.
	then func()
	// clear empties the draft on success.
	clear bool
}

type base struct {
	mu        sync.Mutex
	state     State
	values    map[string]string
	fieldErrs map[string]string
	success   string
	failure   string

	after func(time.Duration, func())
	trace *debuglog.Trace
	debug *zap.Logger
	log   logging.Logger
}

func (b *base) init(opts []Option) {
	b.values = map[string]string{}
	b.fieldErrs = map[string]string{}
	b.after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	b.log = logging.Nop()
	for _, opt := range opts {
		opt(b)
	}
	if b.trace == nil {
		b.trace = debuglog.NewTrace()
	}
	b.debug = debuglog.NewLogger(b.trace)
}

// Set updates one field. Editing a failed form returns it to editing.
func (b *base) Set(field, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[field] = value
	delete(b.fieldErrs, field)
	if b.state == StateFailed {
		b.state = StateEditing
	}
}

func (b *base) Value(field string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values[field]
}

func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *base) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return View{
		State:   b.state,
		Success: b.success,
		Error:   b.failure,
		Fields:  maps.Clone(b.fieldErrs),
	}
}

// Trace is the form's debug trace, reset at the start of every submit.
func (b *base) Trace() *debuglog.Trace {
	return b.trace
}

func (b *base) submit(ctx context.Context, s submission) error {
	b.mu.Lock()
	if b.state == StateSubmitting {
		b.mu.Unlock()
		return ErrSubmitInProgress
	}
	b.trace.Reset()
	b.success, b.failure = "", ""
	v := maps.Clone(b.values)

	if errs := s.validate(v); len(errs) > 0 {
		verr := &ValidationError{Fields: errs}
		b.fieldErrs = maps.Clone(errs)
		b.state = StateEditing
		b.failure = verr.Error()
		b.mu.Unlock()
		b.debug.Warn("Validation failed", zap.Any("fields", map[string]string(errs)))
		return verr
	}
	b.fieldErrs = map[string]string{}
	b.state = StateSubmitting
	b.mu.Unlock()

	msg, err := s.run(ctx, v)

	b.mu.Lock()
	if err != nil {
		b.state = StateFailed
		b.failure = err.Error()
		if s.failure != nil {
			b.failure = s.failure(err)
		}
		b.mu.Unlock()
		b.log.Warn(ctx, "form submit failed", "error", err)
		return err
	}
	b.state = StateSucceeded
	b.success = msg
	if s.clear {
		b.values = map[string]string{}
	}
	b.mu.Unlock()

	if s.then != nil {
		s.then()
	}
	return nil
}

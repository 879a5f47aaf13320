package scope

import (
	"errors"
	"fmt"

	"github.com/ehllie/monadic"
	"github.com/google/uuid"
)

// ErrScopeClosed is raised if a handle is used after its scope has been left.
var ErrScopeClosed = errors.New("handle used outside of its scope")

// ErrNoHandle is raised if Check is called with a nil handle.
var ErrNoHandle = errors.New("check without scope handle")

// Handle is the callback argument a scope body receives. It is only valid during
// the one invocation of the body it has been created for.
type Handle struct {
	id    uuid.UUID
	name  string
	open  bool
	trail *Trail
	frame *Frame
}

// ID returns the identity of the boundary h belongs to.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Name returns the label of the scope, or its ID if it is unnamed.
func (h *Handle) Name() string {
	if h.name == "" {
		return h.id.String()
	}
	return h.name
}

// Open is true while the body of h's scope is running.
func (h *Handle) Open() bool {
	return h.open
}

func (h *Handle) String() string {
	return fmt.Sprintf("scope[%s]", h.Name())
}

// abort is the unwind signal. It carries the ID of the boundary it is meant for and
// the container which caused it.
type abort struct {
	id    uuid.UUID
	cause any
}

func (a *abort) String() string {
	return fmt.Sprintf("abort of scope %s by %v", a.id, a.cause)
}

// Run calls body exactly once, inside a fresh unwind boundary. If body returns
// normally, its return value is the result of Run. If body is aborted by Check
// on a container which is not ok, Run returns onAbort(container) instead.
//
// Panics other than the abort signal for this boundary are re-raised unchanged.
func Run[R any](body func(*Handle) R, onAbort func(cause any) R, opts ...Option) (res R) {
	h := &Handle{id: uuid.New(), open: true}
	for _, option := range opts {
		option(h)
	}
	if h.trail != nil {
		h.frame = h.trail.enter(h)
	}
	tracer().Debugf("%s: enter", h)
	defer func() {
		h.open = false
		r := recover()
		if r == nil {
			tracer().Debugf("%s: exit", h)
			h.leave(false)
			return
		}
		if a, ok := r.(*abort); ok && a.id == h.id {
			tracer().Debugf("%s: aborted by %v", h, a.cause)
			h.leave(true)
			res = onAbort(a.cause)
			return
		}
		_, unwound := r.(*abort) // an enclosing scope is aborting
		h.leave(unwound)
		panic(r)
	}()
	return body(h)
}

func (h *Handle) leave(aborted bool) {
	if h.trail != nil {
		h.trail.leave(h.frame, aborted)
	}
}

// Check returns the value of c if c is ok. Otherwise it aborts the body of the scope
// h belongs to; no code following the call will run. A nil container is not ok.
func Check[T any](h *Handle, c monadic.Container[T]) T {
	if h == nil {
		panic(ErrNoHandle)
	}
	if !h.open {
		panic(fmt.Errorf("%w: %s", ErrScopeClosed, h))
	}
	var v T
	ok := false
	if !monadic.IsNil(c) {
		v, ok = c.Get()
	}
	if h.frame != nil {
		h.frame.step(c, ok)
	}
	if ok {
		return v
	}
	panic(&abort{id: h.id, cause: c})
}

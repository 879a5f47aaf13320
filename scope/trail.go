package scope

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Trail records the checked steps of one or more scopes. An empty Trail is ready to
// use. A Trail is not safe for concurrent use.
type Trail struct {
	Scopes []*Frame // top-level scopes, in order of entry
	active []*Frame
}

// Frame is the record of a single scope invocation.
type Frame struct {
	Name    string
	Steps   []Step
	Aborted bool
	Done    bool
}

// Step is the record of a single Check. Exactly one of Container and Scope is set.
type Step struct {
	Container string // printable form of the checked container
	Ok        bool
	Scope     *Frame // a nested scope entered at this point
}

func (t *Trail) enter(h *Handle) *Frame {
	f := &Frame{Name: h.Name()}
	if n := len(t.active); n > 0 {
		parent := t.active[n-1]
		parent.Steps = append(parent.Steps, Step{Scope: f})
	} else {
		t.Scopes = append(t.Scopes, f)
	}
	t.active = append(t.active, f)
	return f
}

func (t *Trail) leave(f *Frame, aborted bool) {
	f.Aborted = aborted
	f.Done = true
	// An outer abort may unwind through scopes which did not see it; pop up to f.
	for n := len(t.active); n > 0; n-- {
		top := t.active[n-1]
		t.active = t.active[:n-1]
		if top == f {
			break
		}
	}
}

func (f *Frame) step(c any, ok bool) {
	f.Steps = append(f.Steps, Step{Container: fmt.Sprintf("%v", c), Ok: ok})
}

// Len returns the number of steps recorded for f, not counting nested scopes.
func (f *Frame) Len() int {
	n := 0
	for _, s := range f.Steps {
		if s.Scope == nil {
			n++
		}
	}
	return n
}

func (f *Frame) String() string {
	switch {
	case f.Aborted:
		return f.Name + " ✗"
	case f.Done:
		return f.Name + " ✓"
	}
	return f.Name + " …"
}

// String renders the trail as a tree of scopes and steps.
func (t *Trail) String() string {
	p := tp.New()
	for _, f := range t.Scopes {
		printFrame(p, f)
	}
	return p.String()
}

func printFrame(p tp.Tree, f *Frame) {
	branch := p.AddBranch(f.String())
	for _, s := range f.Steps {
		if s.Scope != nil {
			printFrame(branch, s.Scope)
			continue
		}
		mark := "✓"
		if !s.Ok {
			mark = "✗"
		}
		branch.AddNode(mark + " " + s.Container)
	}
}

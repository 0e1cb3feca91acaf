package batch

import (
	"context"
	"errors"
	"sync"

	"github.com/AzielCF/az-learn/domains/remote"
)

type State string

const (
	StateInitial      State = "INITIAL"
	StateLoadingFirst State = "LOADING_FIRST"
	StateLoadingMore  State = "LOADING_MORE"
	StateReady        State = "READY"
	StateExhausted    State = "EXHAUSTED"
)

var (
	ErrLoadInProgress = errors.New("batch: a load is already in progress")
	ErrNotStarted     = errors.New("batch: first page not loaded")
)

// View accumulates the pages of one list screen:
//
//	INITIAL -> LOADING_FIRST -> READY <-> LOADING_MORE
//	                         \-> EXHAUSTED
//
// A failed load returns the view to the state it was in before the load.
type View struct {
	loader *Loader
	base   Request

	mu     sync.Mutex
	state  State
	items  []remote.Document
	cursor *remote.Document
}

// NewView binds a view to a list. base.LastVisible is ignored.
func NewView(loader *Loader, base Request) *View {
	base.LastVisible = nil
	return &View{loader: loader, base: base, state: StateInitial}
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Items returns a copy of everything loaded so far, in order.
func (v *View) Items() []remote.Document {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]remote.Document(nil), v.items...)
}

// Reset forgets loaded pages. It does not touch the cache.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateInitial
	v.items = nil
	v.cursor = nil
}

// LoadFirst loads the first page, possibly from cache. Calling it again after
// the first page is loaded reloads from scratch.
func (v *View) LoadFirst(ctx context.Context) (Page, error) {
	v.mu.Lock()
	if v.state == StateLoadingFirst || v.state == StateLoadingMore {
		v.mu.Unlock()
		return Page{}, ErrLoadInProgress
	}
	prev := v.state
	v.state = StateLoadingFirst
	v.mu.Unlock()

	page, err := v.loader.LoadBatch(ctx, v.base)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = prev
		return Page{}, err
	}
	v.items = append([]remote.Document(nil), page.Items...)
	v.settle(page)
	return page, nil
}

// LoadMore appends the next page. It is a no-op once the list is exhausted.
func (v *View) LoadMore(ctx context.Context) (Page, error) {
	v.mu.Lock()
	switch v.state {
	case StateExhausted:
		v.mu.Unlock()
		return Page{}, nil
	case StateInitial:
		v.mu.Unlock()
		return Page{}, ErrNotStarted
	case StateLoadingFirst, StateLoadingMore:
		v.mu.Unlock()
		return Page{}, ErrLoadInProgress
	}
	v.state = StateLoadingMore
	req := v.base
	req.CacheKey = ""
	req.LastVisible = v.cursor
	replace := v.cursor == nil
	v.mu.Unlock()

	page, err := v.loader.LoadBatch(ctx, req)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateReady
		return Page{}, err
	}
	if replace {
		// An empty cached first page has no cursor: restart from the remote head.
		v.items = append([]remote.Document(nil), page.Items...)
	} else {
		v.items = append(v.items, page.Items...)
	}
	v.settle(page)
	return page, nil
}

func (v *View) settle(page Page) {
	v.cursor = page.Cursor()
	if page.HasMore {
		v.state = StateReady
	} else {
		v.state = StateExhausted
	}
}

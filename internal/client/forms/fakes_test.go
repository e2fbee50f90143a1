package forms

import (
	"context"
	"sync"
	"time"

	"github.com/trademinutes/tmclient/internal/client/models"
)

type fakeAuth struct {
	mu sync.Mutex

	loginCalls, registerCalls, resetCalls, updateCalls int

	token   string
	err     error
	block   chan struct{}
	updated models.Profile
	reset   [2]string
}

func (f *fakeAuth) wait() {
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	f.mu.Lock()
	f.loginCalls++
	f.mu.Unlock()
	f.wait()
	return f.token, f.err
}

func (f *fakeAuth) Register(_ context.Context, _, _, _ string) error {
	f.mu.Lock()
	f.registerCalls++
	f.mu.Unlock()
	f.wait()
	return f.err
}

func (f *fakeAuth) ResetPassword(_ context.Context, tok, pw string) error {
	f.mu.Lock()
	f.resetCalls++
	f.reset = [2]string{tok, pw}
	f.mu.Unlock()
	return f.err
}

func (f *fakeAuth) FetchProfile(context.Context, string) (models.Profile, error) {
	return models.Profile{}, f.err
}

func (f *fakeAuth) UpdateProfile(_ context.Context, _ string, p models.Profile) error {
	f.mu.Lock()
	f.updateCalls++
	f.updated = p
	f.mu.Unlock()
	return f.err
}

func (f *fakeAuth) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls + f.registerCalls + f.resetCalls + f.updateCalls
}

type fakeSessions struct {
	token, email string
	err          error
}

func (f *fakeSessions) SaveSession(_ context.Context, token, email string) error {
	if f.err != nil {
		return f.err
	}
	f.token, f.email = token, email
	return nil
}

func (f *fakeSessions) Token(context.Context) (string, error) {
	return f.token, f.err
}

type fakeNav struct {
	mu     sync.Mutex
	routes []string
}

func (f *fakeNav) Navigate(r string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = append(f.routes, r)
}

func (f *fakeNav) Routes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.routes...)
}

// timers captures scheduled follow-ups so tests can fire them by hand.
type timers struct {
	mu     sync.Mutex
	delays []time.Duration
	fns    []func()
}

func (tm *timers) after(d time.Duration, fn func()) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.delays = append(tm.delays, d)
	tm.fns = append(tm.fns, fn)
}

func (tm *timers) fire() {
	tm.mu.Lock()
	fns := tm.fns
	tm.fns = nil
	tm.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/service"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
	"github.com/shayar/PhdMatcher-FE/models"
)

// Controller owns the session state. It is safe for concurrent use.
type Controller struct {
	auth   service.AuthService
	logger *logger.Logger

	// opMu serialises the operations that change the stored token.
	opMu sync.Mutex

	mu              sync.Mutex
	state           State
	generation      uint64
	cancelInFlight  context.CancelFunc
	inFlight        int
	observers       map[uint64]func(State)
	nextObserverID  uint64
	refreshFailures int
}

// New returns a controller in the Initializing state. It performs no I/O;
// call [Controller.Initialize] to restore a stored session.
func New(auth service.AuthService, log *logger.Logger) *Controller {
	return &Controller{
		auth:      auth,
		logger:    log.WithComponent("session"),
		state:     State{Status: StatusInitializing},
		observers: make(map[uint64]func(State)),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every applied transition. fn runs on
// the goroutine that applied the transition, outside the controller's lock;
// compare State.Version to drop snapshots that arrive out of order.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// RefreshFailures returns how many Refresh calls in a row have failed.
func (c *Controller) RefreshFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshFailures
}

// Initialize restores the session from the stored token. Without a token it
// goes straight to Anonymous and makes no request. A token the backend does
// not accept is cleared, and so is one whose check ran out of time. Only when
// ctx is cancelled (the caller went away) the token is kept; the session
// becomes Anonymous either way. Failures are logged, never returned.
func (c *Controller) Initialize(ctx context.Context) {
	opCtx, gen, done := c.begin(ctx)
	defer done()

	if !c.auth.IsAuthenticated(opCtx) {
		c.logger.Debug().Msg("no stored token")
		c.commit(gen, anonymous())
		return
	}

	user, err := c.auth.CurrentUser(opCtx)
	if err != nil {
		if errors.Is(opCtx.Err(), context.Canceled) {
			c.logger.Info().Err(err).Msg("session check abandoned")
			c.commit(gen, anonymous())
			return
		}
		c.logger.Warn().Err(err).Msg("stored token rejected, clearing it")
		c.auth.Logout(context.WithoutCancel(opCtx))
		c.commit(gen, anonymous())
		return
	}

	c.commit(gen, authenticated(user))
}

// Login signs in with email and password. On any failure after the input
// check the stored token is cleared, the session is Anonymous and the error
// is returned.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if err := validators.ValidateLogin(email, password); err != nil {
		return err
	}

	opCtx, gen, done := c.begin(ctx)
	defer done()

	_, err := c.auth.Login(opCtx, models.LoginRequest{Email: email, Password: password})
	return c.finishSignIn(opCtx, gen, "login", err)
}

// Register validates form locally, creates the account and signs in. A form
// that fails validation is rejected before any request and leaves the
// session untouched.
func (c *Controller) Register(ctx context.Context, form models.RegisterForm) error {
	if err := validators.ValidateRegistration(form); err != nil {
		return err
	}

	opCtx, gen, done := c.begin(ctx)
	defer done()

	_, err := c.auth.Register(opCtx, form.RegisterRequest)
	return c.finishSignIn(opCtx, gen, "register", err)
}

// Logout clears the stored token and moves to Anonymous. It never fails and
// calling it again is a no-op.
func (c *Controller) Logout(ctx context.Context) {
	opCtx, gen, done := c.begin(ctx)
	defer done()

	c.auth.Logout(context.WithoutCancel(opCtx))
	c.commit(gen, anonymous())
}

// Refresh re-reads the current user without touching the token. Failures
// are logged and counted but never sign the user out. The result is dropped
// if a token-changing operation ran at any point during the refresh or any
// transition was committed meanwhile.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	gen, version, busy := c.generation, c.state.Version, c.inFlight > 0
	c.mu.Unlock()
	if busy {
		c.logger.Debug().Msg("refresh skipped, session operation in flight")
		return
	}

	user, err := c.auth.CurrentUser(ctx)

	c.mu.Lock()
	if gen != c.generation || version != c.state.Version || c.inFlight > 0 ||
		c.state.Status != StatusAuthenticated {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.refreshFailures++
		failures := c.refreshFailures
		c.mu.Unlock()
		c.logger.Warn().Err(err).Int("consecutive_failures", failures).Msg("error refreshing user")
		return
	}
	c.refreshFailures = 0
	next := c.apply(authenticated(user))
	observers := c.snapshotObservers()
	c.mu.Unlock()

	notify(observers, next)
}

func (c *Controller) finishSignIn(ctx context.Context, gen uint64, op string, err error) error {
	if err != nil {
		c.logger.Info().Err(err).Str("op", op).Msg("sign-in rejected")
		c.auth.Logout(context.WithoutCancel(ctx))
		c.commit(gen, anonymous())
		return err
	}

	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("op", op).Msg("error fetching user after sign-in")
		c.auth.Logout(context.WithoutCancel(ctx))
		c.commit(gen, anonymous())
		return err
	}

	c.commit(gen, authenticated(user))
	return nil
}

// begin cancels the operation in flight, takes a new generation and waits
// for the predecessor to finish. done must be called when the operation
// returns.
func (c *Controller) begin(parent context.Context) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(parent)

	c.mu.Lock()
	if c.cancelInFlight != nil {
		c.cancelInFlight()
	}
	c.cancelInFlight = cancel
	c.generation++
	c.inFlight++
	gen := c.generation
	c.mu.Unlock()

	c.opMu.Lock()
	return ctx, gen, func() {
		c.opMu.Unlock()
		cancel()

		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}
}

// commit applies next if gen is still the newest operation and notifies the
// observers.
func (c *Controller) commit(gen uint64, next State) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug().Uint64("generation", gen).Msg("dropping superseded result")
		return
	}
	if next.Status == StatusAnonymous && c.state.Status == StatusAnonymous {
		c.mu.Unlock()
		return
	}
	c.refreshFailures = 0
	applied := c.apply(next)
	observers := c.snapshotObservers()
	c.mu.Unlock()

	c.logger.Debug().Stringer("status", applied.Status).Uint64("version", applied.Version).Msg("session transition")
	notify(observers, applied)
}

// apply must be called with mu held.
func (c *Controller) apply(next State) State {
	next.Version = c.state.Version + 1
	c.state = next
	return next
}

// snapshotObservers must be called with mu held.
func (c *Controller) snapshotObservers() []func(State) {
	out := make([]func(State), 0, len(c.observers))
	for _, fn := range c.observers {
		out = append(out, fn)
	}
	return out
}

func notify(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}

func anonymous() State {
	return State{Status: StatusAnonymous}
}

func authenticated(user models.User) State {
	return State{Status: StatusAuthenticated, User: &user}
}

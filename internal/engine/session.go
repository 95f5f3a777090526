package engine

import (
	"context"
	"sync"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

const mailboxSize = 16

// Command is one unit of work run against the engine
type Command func(ctx context.Context, e *Engine) error

// Guard vets a Reset before anything is aborted. It runs on the caller's
// goroutine, so it may only use the engine's fixed configuration, as
// ValidateSnapshot does.
type Guard func(e *Engine) error

type envelope struct {
	run   Command
	epoch uint64
	done  chan error
}

// Session is the single owner of an Engine. Commands run one at a time in
// submission order, so a move sequence is never interleaved with another
// action. Reset cancels the running command and drops everything queued
// before it.
type Session struct {
	engine  *Engine
	mailbox chan *envelope

	mu      sync.Mutex
	epoch   uint64
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewSession wraps engine. Commands are processed once Run is started.
func NewSession(engine *Engine) *Session {
	return &Session{
		engine:  engine,
		mailbox: make(chan *envelope, mailboxSize),
		stopped: make(chan struct{}),
	}
}

// Run processes commands until ctx is done. Commands run with a context
// derived from ctx, not from the caller's, so a caller that goes away does
// not abort a move halfway.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.stopped)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env := <-s.mailbox:
			s.process(ctx, env)
		}
	}
}

func (s *Session) process(ctx context.Context, env *envelope) {
	s.mu.Lock()
	if env.epoch != s.epoch {
		s.mu.Unlock()
		env.done <- errors.Canceled("superseded by a new game")
		return
	}
	cmdCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	err := env.run(cmdCtx, s.engine)

	s.mu.Lock()
	s.cancel = nil
	s.mu.Unlock()
	cancel()

	env.done <- err
}

// Do queues cmd and waits for its result
func (s *Session) Do(ctx context.Context, cmd Command) error {
	return s.submit(ctx, cmd, false)
}

// Reset aborts the running command, discards queued ones and then runs
// cmd. New games and loads go through Reset. When a guard fails the
// session is left alone and the guard's error is returned.
func (s *Session) Reset(ctx context.Context, cmd Command, guards ...Guard) error {
	for _, guard := range guards {
		if err := guard(s.engine); err != nil {
			return err
		}
	}
	return s.submit(ctx, cmd, true)
}

func (s *Session) submit(ctx context.Context, cmd Command, reset bool) error {
	s.mu.Lock()
	if reset {
		s.epoch++
		if s.cancel != nil {
			s.cancel()
		}
	}
	env := &envelope{run: cmd, epoch: s.epoch, done: make(chan error, 1)}
	s.mu.Unlock()

	select {
	case s.mailbox <- env:
	case <-s.stopped:
		return errors.Unavailable("session is closed")
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-env.done:
		return err
	case <-s.stopped:
		return errors.Unavailable("session is closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

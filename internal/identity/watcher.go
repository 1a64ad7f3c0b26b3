// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"time"

	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/types"
)

// SessionReader is the slice of the client the watcher needs.
type SessionReader interface {
	CurrentSession(ctx context.Context) (*types.Session, error)
}

// Watcher polls the identity provider and delivers session transitions to
// the subscriber in the order they are observed. Each transition is sent
// exactly once; consumers must tolerate nil-to-nil duplicates after
// transient read failures.
type Watcher struct {
	reader   SessionReader
	interval time.Duration
	logger   logging.LoggerInterface
}

func NewWatcher(reader SessionReader, interval time.Duration, logger logging.LoggerInterface) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{reader: reader, interval: interval, logger: logger}
}

// Subscribe starts the poll loop and returns the transition channel plus an
// unsubscribe function. The channel is closed on unsubscribe. The baseline
// is the session the subscriber has already observed; a sign-in between
// that observation and the first poll is reported as a transition.
func (w *Watcher) Subscribe(baseline *types.Session) (<-chan *types.Session, func()) {
	ch := make(chan *types.Session)
	ctx, cancel := context.WithCancel(context.Background())

	go w.run(ctx, ch, baseline)

	return ch, cancel
}

func (w *Watcher) run(ctx context.Context, ch chan<- *types.Session, last *types.Session) {
	defer close(ch)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		current, err := w.reader.CurrentSession(ctx)
		if err != nil {
			w.logger.Debugf("session poll failed: %v", err)
			continue
		}

		if !sessionChanged(last, current) {
			continue
		}

		// Blocking send keeps delivery ordered: the next poll result is
		// not considered until the subscriber has taken this one.
		select {
		case <-ctx.Done():
			return
		case ch <- current:
		}

		last = current
	}
}

func sessionChanged(a, b *types.Session) bool {
	if (a == nil) != (b == nil) {
		return true
	}
	if a == nil {
		return false
	}
	return a.UserID != b.UserID
}

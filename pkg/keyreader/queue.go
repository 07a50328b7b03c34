package keyreader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/seagrayinc/hidkeys/internal/hidif"
)

// queueDepth bounds the event ring buffer; once full, the oldest pending
// events are dropped by the framework.
const queueDepth = 200

// setupQueue runs phase 2: allocate the queue, size it, register every
// non-ignored resolved key as interesting, then start it. Any failure
// releases the queue and leaves the poll path untouched.
func (r *Reader) setupQueue(s *session) error {
	q, err := s.iface.AllocQueue()
	if err != nil {
		return fmt.Errorf("queue allocation failed: %w", err)
	}
	if err := r.armQueue(q); err != nil {
		if rerr := q.Release(); rerr != nil {
			r.log.Warn("queue release reported an error", slog.Any("error", rerr))
		}
		return err
	}
	s.queue = q
	return nil
}

func (r *Reader) armQueue(q hidif.Queue) error {
	if err := q.Create(queueDepth); err != nil {
		return fmt.Errorf("queue creation failed: %w", err)
	}

	var failed int
	for i := range r.cat.keys {
		k := &r.cat.keys[i]
		if k.Cookie == 0 || k.Ignore {
			continue
		}
		if err := q.AddElement(k.Cookie); err != nil {
			r.log.Warn("failed to add element to queue",
				slog.String("key", k.Name), slog.Any("error", err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d elements could not be added to the queue", failed)
	}

	if err := q.Start(); err != nil {
		return fmt.Errorf("queue start failed: %w", err)
	}
	return nil
}

// Drain pulls every currently pending event from the queue with zero wait
// and returns them classified in arrival order: zero, one or many per
// call. An empty slice just means nothing happened since the last drain.
// Any failure other than the normal underrun is reported through OnError
// and returned alongside whatever was drained first.
func (r *Reader) Drain() ([]KeyEvent, error) {
	if r.session == nil || !r.queueReady {
		return nil, ErrQueueUnavailable
	}

	var events []KeyEvent
	for {
		ev, err := r.session.queue.Next()
		if err != nil {
			if errors.Is(err, hidif.ErrUnderrun) {
				return events, nil
			}
			if errors.Is(err, hidif.ErrDeviceGone) {
				r.invalidate("Keyboard device detached during queue drain.")
				return events, err
			}
			r.report(fmt.Sprintf("Reading from the keyboard queue failed: %v", err))
			return events, fmt.Errorf("queue read failed: %w", err)
		}

		// keyboards report their keys as button elements; anything else is
		// noise we have never observed in practice
		if ev.Type != hidif.ElementTypeInputButton {
			r.log.Debug("non-button event from keyboard queue",
				slog.Int("type", int(ev.Type)))
			continue
		}

		k := r.cat.byCookie(ev.Cookie)
		if k == nil {
			r.log.Warn("event for an unresolved cookie",
				slog.Uint64("cookie", uint64(ev.Cookie)))
			continue
		}
		events = append(events, KeyEvent{
			Key:       k.Name,
			Usage:     k.Usage,
			Pressed:   ev.Value != 0,
			Timestamp: ev.Timestamp,
		})
	}
}

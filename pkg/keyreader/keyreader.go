// Package keyreader counts the currently depressed keys on the primary
// keyboard and optionally drains discrete press/release events from a
// device event queue. It owns one device session: locate the keyboard,
// bind its driver interface, build the tracked-key catalog, resolve each
// key to an element cookie, and then service Count and Drain against the
// resolved catalog.
package keyreader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/seagrayinc/hidkeys/internal/hidif"
	"github.com/seagrayinc/hidkeys/pkg/usage"
)

// CountFailed is the sentinel Count returns for a session that never
// completed initialization or was invalidated by device loss.
const CountFailed = -1

// Config tunes a Reader. The zero value polls only and drops diagnostics.
type Config struct {
	// EnableQueue also sets up the event queue during construction. Queue
	// setup failure leaves poll mode fully functional.
	EnableQueue bool

	// OnError receives a human-readable message for every initialization
	// or runtime failure, prefixed by whatever device properties were
	// gathered before the failure. Nil drops diagnostics.
	OnError func(msg string)

	// Logger is the structured trace sink. Nil discards.
	Logger *slog.Logger

	// DebugChecks samples the error pseudo keys and the power key on every
	// Count call and reports non-zero values through OnError.
	DebugChecks bool
}

// KeyEvent is one classified press or release drained from the queue.
type KeyEvent struct {
	Key       string
	Usage     uint32
	Pressed   bool
	Timestamp time.Time
}

// Reader is a single keyboard session. It is fully synchronous: every call
// runs to completion on the caller's goroutine, no call takes a timeout,
// and Count and Drain may be interleaved freely from the owner's own loop.
// A Reader whose initialization failed is inert, not broken: Count returns
// CountFailed and Drain returns ErrQueueUnavailable forever.
type Reader struct {
	cfg        Config
	log        *slog.Logger
	cat        catalog
	props      []string
	session    *session
	queueReady bool
}

// session owns the framework resources in strict acquisition order. close
// releases whatever was acquired in exact reverse order and is nil-safe, so
// it serves both the partial-failure paths and Close.
type session struct {
	device hidif.Device
	plugin hidif.Plugin
	iface  hidif.DeviceInterface
	queue  hidif.Queue
}

func (s *session) close() error {
	var errs []error
	if s.queue != nil {
		errs = append(errs, s.queue.Release())
		s.queue = nil
	}
	if s.iface != nil {
		errs = append(errs, s.iface.Close())
		s.iface = nil
	}
	if s.plugin != nil {
		errs = append(errs, s.plugin.Release())
		s.plugin = nil
	}
	if s.device != nil {
		errs = append(errs, s.device.Release())
		s.device = nil
	}
	return errors.Join(errs...)
}

// New constructs a Reader over the given backend and runs the whole
// session setup. It never fails outright: a phase-1 failure (locate, bind,
// catalog, resolve) yields an empty session and one OnError message; a
// phase-2 failure (queue setup) leaves poll mode working. Retrying after a
// hot-plug event means constructing a new Reader.
func New(b hidif.Backend, cfg Config) *Reader {
	log := cfg.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	r := &Reader{cfg: cfg, log: log}
	r.initialize(b)
	return r
}

func (r *Reader) initialize(b hidif.Backend) {
	s := &session{}
	if err := r.acquire(b, s); err != nil {
		r.log.Error("keyboard initialization failed", slog.Any("error", err))
		if cerr := s.close(); cerr != nil {
			r.log.Warn("partial session teardown reported errors", slog.Any("error", cerr))
		}
		r.report("Failed basic keyboard initialization.")
		return
	}
	r.session = s
	r.log.Debug("basic keyboard initialization complete")

	if !r.cfg.EnableQueue {
		return
	}
	if err := r.setupQueue(s); err != nil {
		r.log.Error("keyboard queue initialization failed", slog.Any("error", err))
		r.report("Failed basic keyboard input queue initialization.")
		return
	}
	r.queueReady = true
	r.log.Debug("keyboard queue initialization complete")
}

// acquire runs phase 1 in fixed order. Descriptor properties are collected
// right after the plugin exists: the framework only serves them once a
// plugin interface has been created for the device, so the ordering is a
// hard constraint, not taste.
func (r *Reader) acquire(b hidif.Backend, s *session) error {
	dev, err := b.LocateKeyboard()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}
	s.device = dev

	plugin, err := dev.CreatePlugin()
	if err != nil {
		return &PluginError{Err: err}
	}
	s.plugin = plugin

	r.collectProperties(dev)

	iface, err := plugin.DeviceInterface()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueryInterface, err)
	}
	s.iface = iface

	if err := iface.Open(true); err != nil {
		return &OpenError{Err: err}
	}

	if err := r.cat.build(); err != nil {
		return err
	}

	elems, err := iface.Elements()
	if err != nil {
		return fmt.Errorf("element enumeration failed: %w", err)
	}
	resolved, err := r.cat.resolve(elems, r.log)
	if err != nil {
		return err
	}
	r.log.Debug("key catalog resolved",
		slog.Int("keys", len(r.cat.keys)),
		slog.Int("resolved", resolved))
	return nil
}

// Count returns how many tracked, non-ignored keys are currently held
// down, or CountFailed for an empty session. A key whose cookie never
// resolved, or whose Ignore flag is set, never contributes. A transient
// per-key read failure skips that key; device loss invalidates the whole
// session (see invalidate).
func (r *Reader) Count() int {
	if r.session == nil {
		return CountFailed
	}
	if r.cfg.DebugChecks {
		r.checkErrorKeys()
	}

	score := 0
	for i := range r.cat.keys {
		k := &r.cat.keys[i]
		if k.Cookie == 0 || k.Ignore {
			continue
		}
		v, err := r.session.iface.ElementValue(k.Cookie)
		if err != nil {
			if errors.Is(err, hidif.ErrDeviceGone) {
				r.invalidate("Keyboard device detached during polling.")
				return CountFailed
			}
			r.log.Warn("element value read failed, skipping key",
				slog.String("key", k.Name), slog.Any("error", err))
			continue
		}
		if v != 0 {
			score++
		}
	}
	return score
}

// checkErrorKeys samples the keyboard's error pseudo keys and the power
// key so a stuck or ghosting keyboard shows up in diagnostics. Read
// failures here are not interesting.
func (r *Reader) checkErrorKeys() {
	for _, u := range [...]uint32{
		usage.KeyboardErrorRollOver,
		usage.KeyboardPOSTFail,
		usage.KeyboardErrorUndefined,
		usage.KeyboardPower,
	} {
		k := &r.cat.keys[u]
		if k.Cookie == 0 {
			continue
		}
		v, err := r.session.iface.ElementValue(k.Cookie)
		if err == nil && v != 0 && r.cfg.OnError != nil {
			r.cfg.OnError(k.Name)
		}
	}
}

// invalidate tears the session down after device loss. Every later Count
// returns CountFailed and Drain returns ErrQueueUnavailable.
func (r *Reader) invalidate(msg string) {
	if err := r.session.close(); err != nil {
		r.log.Warn("session teardown reported errors", slog.Any("error", err))
	}
	r.session = nil
	r.queueReady = false
	r.report(msg)
}

// Properties returns the descriptive device attributes gathered during
// initialization, as "key: value" lines. Informational only.
func (r *Reader) Properties() []string {
	return append([]string(nil), r.props...)
}

// Close releases the session resources in reverse acquisition order. It is
// idempotent and safe on an empty session.
func (r *Reader) Close() error {
	if r.session == nil {
		return nil
	}
	err := r.session.close()
	r.session = nil
	r.queueReady = false
	return err
}

// report delivers a diagnostic message to the error callback, prefixed by
// the gathered device properties when there are any.
func (r *Reader) report(desc string) {
	if r.cfg.OnError == nil {
		return
	}
	msg := desc
	if len(r.props) > 0 {
		msg = desc + " Keyboard description follows:\n" + strings.Join(r.props, "\n") + "\n"
	}
	r.cfg.OnError(msg)
}

// discardHandler is the default no-op trace sink.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

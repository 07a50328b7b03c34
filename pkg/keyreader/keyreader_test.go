package keyreader

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/seagrayinc/hidkeys/internal/hidif"
	"github.com/seagrayinc/hidkeys/pkg/usage"
)

// cookieFor gives every fake element a distinct, predictable cookie.
func cookieFor(u uint32) hidif.Cookie { return hidif.Cookie(1000 + u) }

// fakeKeyboard builds a device exposing n keyboard-page elements with
// distinct usages starting at KeyboardA (usage 4).
func fakeKeyboard(n int) *hidif.FakeDevice {
	d := &hidif.FakeDevice{
		Values: map[hidif.Cookie]int32{},
		Props: map[string]hidif.PropValue{
			hidif.PropVendorID: {Kind: hidif.PropNumber, Number: 0x05AC},
			hidif.PropProduct:  {Kind: hidif.PropString, String: "Test Keyboard"},
		},
	}
	for i := 0; i < n; i++ {
		u := usage.KeyboardA + uint32(i)
		d.Elems = append(d.Elems, hidif.Element{
			Cookie:    cookieFor(u),
			Usage:     u,
			UsagePage: usage.PageKeyboardOrKeypad,
		})
	}
	return d
}

func TestScenarioAPollCount(t *testing.T) {
	d := fakeKeyboard(45)
	d.Values[cookieFor(usage.KeyboardA)] = 1
	d.Values[cookieFor(usage.KeyboardD)] = 1 // usage 7

	r := New(&hidif.FakeBackend{Keyboard: d}, Config{})
	defer r.Close()

	if got := r.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if !d.OpenedShared {
		t.Error("device interface was not opened in shared mode")
	}
}

func TestScenarioBInsufficientElements(t *testing.T) {
	d := fakeKeyboard(10)
	var msgs []string
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{
		OnError: func(msg string) { msgs = append(msgs, msg) },
	})

	for i := 0; i < 3; i++ {
		if got := r.Count(); got != CountFailed {
			t.Fatalf("Count() call %d = %d, want %d", i, got, CountFailed)
		}
	}
	if len(msgs) != 1 {
		t.Fatalf("error callback fired %d times, want 1", len(msgs))
	}
	if !strings.HasPrefix(msgs[0], "Failed basic keyboard initialization.") {
		t.Fatalf("unexpected failure message: %q", msgs[0])
	}
}

func TestScenarioCQueueFailureKeepsPolling(t *testing.T) {
	d := fakeKeyboard(45)
	d.Values[cookieFor(usage.KeyboardA)] = 1
	d.Values[cookieFor(usage.KeyboardD)] = 1
	d.CreateErr = errors.New("queue creation rejected")

	var msgs []string
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{
		EnableQueue: true,
		OnError:     func(msg string) { msgs = append(msgs, msg) },
	})
	defer r.Close()

	if got := r.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2 despite queue failure", got)
	}
	if _, err := r.Drain(); !errors.Is(err, ErrQueueUnavailable) {
		t.Fatalf("Drain() error = %v, want ErrQueueUnavailable", err)
	}
	if len(msgs) != 1 || !strings.HasPrefix(msgs[0], "Failed basic keyboard input queue initialization.") {
		t.Fatalf("unexpected callback messages: %v", msgs)
	}
	// the failed queue must have been released
	if len(d.ReleaseLog) == 0 || d.ReleaseLog[0] != "queue" {
		t.Fatalf("release log = %v, want the queue released first", d.ReleaseLog)
	}
}

func TestScenarioDDrainClassifiedEvents(t *testing.T) {
	d := fakeKeyboard(45)
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{EnableQueue: true})
	defer r.Close()

	if !d.Started {
		t.Fatal("queue was never started")
	}
	if d.QueueDepth != 200 {
		t.Fatalf("queue depth = %d, want 200", d.QueueDepth)
	}
	if len(d.Added) != 45 {
		t.Fatalf("%d elements added to queue, want 45", len(d.Added))
	}

	base := time.Now()
	d.PendingEvents(
		hidif.Event{Type: hidif.ElementTypeInputButton, Cookie: cookieFor(usage.KeyboardA), Value: 1, Timestamp: base},
		hidif.Event{Type: hidif.ElementTypeInputButton, Cookie: cookieFor(usage.KeyboardA), Value: 0, Timestamp: base.Add(10 * time.Millisecond)},
		hidif.Event{Type: hidif.ElementTypeInputButton, Cookie: cookieFor(usage.KeyboardD), Value: 1, Timestamp: base.Add(20 * time.Millisecond)},
	)

	events, err := r.Drain()
	if err != nil {
		t.Fatalf("Drain() error: %v", err)
	}
	want := []KeyEvent{
		{Key: "KeyboardA", Usage: usage.KeyboardA, Pressed: true, Timestamp: base},
		{Key: "KeyboardA", Usage: usage.KeyboardA, Pressed: false, Timestamp: base.Add(10 * time.Millisecond)},
		{Key: "KeyboardD", Usage: usage.KeyboardD, Pressed: true, Timestamp: base.Add(20 * time.Millisecond)},
	}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("Drain() = %+v, want %+v", events, want)
	}

	// nothing pending: empty result, no error, until new events arrive
	events, err = r.Drain()
	if err != nil || len(events) != 0 {
		t.Fatalf("second Drain() = %v, %v; want empty, nil", events, err)
	}

	d.PendingEvents(hidif.Event{Type: hidif.ElementTypeInputButton, Cookie: cookieFor(usage.KeyboardB), Value: 1, Timestamp: base})
	events, err = r.Drain()
	if err != nil || len(events) != 1 || events[0].Key != "KeyboardB" {
		t.Fatalf("third Drain() = %v, %v; want one KeyboardB press", events, err)
	}
}

func TestDrainSkipsNonButtonEvents(t *testing.T) {
	d := fakeKeyboard(45)
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{EnableQueue: true})
	defer r.Close()

	d.PendingEvents(
		hidif.Event{Type: hidif.ElementTypeInputMisc, Cookie: cookieFor(usage.KeyboardA), Value: 1},
		hidif.Event{Type: hidif.ElementTypeInputButton, Cookie: cookieFor(usage.KeyboardA), Value: 1},
	)
	events, err := r.Drain()
	if err != nil {
		t.Fatalf("Drain() error: %v", err)
	}
	if len(events) != 1 || events[0].Key != "KeyboardA" {
		t.Fatalf("Drain() = %+v, want only the button event", events)
	}
}

func TestCountIgnoresUntrackedKeys(t *testing.T) {
	d := fakeKeyboard(45)
	// an ignored key (F1) and a pseudo key (ErrorRollOver) both report
	// pressed; neither may count
	d.Elems = append(d.Elems,
		hidif.Element{Cookie: cookieFor(usage.KeyboardF1), Usage: usage.KeyboardF1, UsagePage: usage.PageKeyboardOrKeypad},
		hidif.Element{Cookie: cookieFor(usage.KeyboardErrorRollOver), Usage: usage.KeyboardErrorRollOver, UsagePage: usage.PageKeyboardOrKeypad},
	)
	d.Values[cookieFor(usage.KeyboardF1)] = 1
	d.Values[cookieFor(usage.KeyboardErrorRollOver)] = 1
	d.Values[cookieFor(usage.KeyboardA)] = 1

	r := New(&hidif.FakeBackend{Keyboard: d}, Config{})
	defer r.Close()

	if got := r.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
}

func TestPhase1TeardownOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*hidif.FakeDevice)
		want   []string
	}{
		{
			name:   "plugin creation fails",
			mutate: func(d *hidif.FakeDevice) { d.PluginErr = errors.New("no plugin") },
			want:   []string{"device"},
		},
		{
			name:   "query interface fails",
			mutate: func(d *hidif.FakeDevice) { d.QueryErr = errors.New("no interface") },
			want:   []string{"plugin", "device"},
		},
		{
			name:   "open fails",
			mutate: func(d *hidif.FakeDevice) { d.OpenErr = errors.New("busy") },
			want:   []string{"interface", "plugin", "device"},
		},
		{
			name:   "enumeration fails",
			mutate: func(d *hidif.FakeDevice) { d.ElementsErr = errors.New("broken") },
			want:   []string{"interface", "plugin", "device"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fakeKeyboard(45)
			tt.mutate(d)
			r := New(&hidif.FakeBackend{Keyboard: d}, Config{})
			if got := r.Count(); got != CountFailed {
				t.Fatalf("Count() = %d, want %d", got, CountFailed)
			}
			if !reflect.DeepEqual(d.ReleaseLog, tt.want) {
				t.Fatalf("release order = %v, want %v", d.ReleaseLog, tt.want)
			}
		})
	}
}

func TestTransientReadFailureSkipsKey(t *testing.T) {
	d := fakeKeyboard(45)
	d.Values[cookieFor(usage.KeyboardA)] = 1
	d.Values[cookieFor(usage.KeyboardD)] = 1
	d.ValueErrs = map[hidif.Cookie]error{
		cookieFor(usage.KeyboardB): errors.New("transient read failure"),
	}

	r := New(&hidif.FakeBackend{Keyboard: d}, Config{})
	defer r.Close()

	if got := r.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2 with the failing key skipped", got)
	}
	// the session stays usable
	if got := r.Count(); got != 2 {
		t.Fatalf("second Count() = %d, want 2", got)
	}
}

func TestDeviceGoneInvalidatesSession(t *testing.T) {
	d := fakeKeyboard(45)
	d.ValueErrs = map[hidif.Cookie]error{
		cookieFor(usage.KeyboardA): hidif.ErrDeviceGone,
	}

	var msgs []string
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{
		OnError: func(msg string) { msgs = append(msgs, msg) },
	})

	if got := r.Count(); got != CountFailed {
		t.Fatalf("Count() = %d, want %d on device loss", got, CountFailed)
	}
	if got := r.Count(); got != CountFailed {
		t.Fatalf("Count() after invalidation = %d, want %d", got, CountFailed)
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0], "detached") {
		t.Fatalf("callback messages = %v, want one detach report", msgs)
	}
	if !reflect.DeepEqual(d.ReleaseLog, []string{"interface", "plugin", "device"}) {
		t.Fatalf("release order = %v", d.ReleaseLog)
	}
}

func TestPropertiesRendering(t *testing.T) {
	d := fakeKeyboard(45)
	d.Props = map[string]hidif.PropValue{
		hidif.PropVendorID:    {Kind: hidif.PropNumber, Number: 1452},
		hidif.PropProduct:     {Kind: hidif.PropString, String: "Apple Internal Keyboard"},
		hidif.PropCountryCode: {Kind: hidif.PropOther},
		// everything else missing
	}

	r := New(&hidif.FakeBackend{Keyboard: d}, Config{})
	defer r.Close()

	want := []string{
		"VendorID: 1452",
		"Product: Apple Internal Keyboard",
		"CountryCode: <type error>",
	}
	if got := r.Properties(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Properties() = %v, want %v", got, want)
	}
}

func TestInitFailureMessageIncludesProperties(t *testing.T) {
	d := fakeKeyboard(45)
	d.OpenErr = errors.New("exclusive access denied")

	var msgs []string
	New(&hidif.FakeBackend{Keyboard: d}, Config{
		OnError: func(msg string) { msgs = append(msgs, msg) },
	})

	if len(msgs) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(msgs))
	}
	if !strings.Contains(msgs[0], "Keyboard description follows:") ||
		!strings.Contains(msgs[0], "Product: Test Keyboard") {
		t.Fatalf("failure message lacks gathered properties: %q", msgs[0])
	}
}

func TestLocateFailure(t *testing.T) {
	r := New(&hidif.FakeBackend{LocateErr: hidif.ErrNoDevice}, Config{})
	if got := r.Count(); got != CountFailed {
		t.Fatalf("Count() = %d, want %d", got, CountFailed)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() on empty session: %v", err)
	}
}

func TestDebugChecksReportErrorKeys(t *testing.T) {
	d := fakeKeyboard(45)
	d.Elems = append(d.Elems, hidif.Element{
		Cookie:    cookieFor(usage.KeyboardErrorRollOver),
		Usage:     usage.KeyboardErrorRollOver,
		UsagePage: usage.PageKeyboardOrKeypad,
	})
	d.Values[cookieFor(usage.KeyboardErrorRollOver)] = 1

	var msgs []string
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{
		DebugChecks: true,
		OnError:     func(msg string) { msgs = append(msgs, msg) },
	})
	defer r.Close()

	if got := r.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
	if len(msgs) != 1 || msgs[0] != "KeyboardErrorRollOver" {
		t.Fatalf("callback messages = %v, want a roll-over report", msgs)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	d := fakeKeyboard(45)
	r := New(&hidif.FakeBackend{Keyboard: d}, Config{EnableQueue: true})

	if err := r.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close(): %v", err)
	}
	want := []string{"queue", "interface", "plugin", "device"}
	if !reflect.DeepEqual(d.ReleaseLog, want) {
		t.Fatalf("release order = %v, want %v", d.ReleaseLog, want)
	}
	if got := r.Count(); got != CountFailed {
		t.Fatalf("Count() after Close = %d, want %d", got, CountFailed)
	}
}

package keyreader

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/seagrayinc/hidkeys/internal/hidif"
	"github.com/seagrayinc/hidkeys/pkg/usage"
)

func testLogger() *slog.Logger { return slog.New(discardHandler{}) }

func builtCatalog(t *testing.T) *catalog {
	t.Helper()
	var c catalog
	if err := c.build(); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return &c
}

func TestCatalogStableIndexing(t *testing.T) {
	c := builtCatalog(t)

	if got, want := len(c.keys), 165; got != want {
		t.Fatalf("catalog size = %d, want %d", got, want)
	}

	tests := []struct {
		usage uint32
		name  string
	}{
		{0, "ReservedIndexZero"},
		{usage.KeyboardErrorRollOver, "KeyboardErrorRollOver"},
		{usage.KeyboardA, "KeyboardA"},
		{usage.KeyboardSpacebar, "KeyboardSpacebar"},
		{usage.KeyboardCapsLock, "KeyboardCapsLock"},
		{usage.Keypad0, "Keypad0"},
		{usage.KeyboardLANG1, "KeyboardLANG1"},
		{usage.KeyboardExSel, "KeyboardExSel"},
	}
	for _, tt := range tests {
		k := c.keys[tt.usage]
		if k.Name != tt.name {
			t.Errorf("usage %d: name = %q, want %q", tt.usage, k.Name, tt.name)
		}
		if k.Usage != tt.usage {
			t.Errorf("usage %d: record usage = %d", tt.usage, k.Usage)
		}
		if k.Cookie != 0 {
			t.Errorf("usage %d: fresh catalog has cookie %d", tt.usage, k.Cookie)
		}
	}
}

func TestCatalogBuildTwice(t *testing.T) {
	c := builtCatalog(t)
	if err := c.build(); !errors.Is(err, ErrCatalogAlreadyBuilt) {
		t.Fatalf("second build: got %v, want ErrCatalogAlreadyBuilt", err)
	}
}

func TestIgnorePolicy(t *testing.T) {
	c := builtCatalog(t)

	tests := []struct {
		usage  uint32
		ignore bool
	}{
		{usage.KeyboardErrorRollOver, true},
		{usage.KeyboardPOSTFail, true},
		{usage.KeyboardA, false},
		{usage.Keyboard0, false},
		{usage.KeyboardReturnOrEnter, false},
		{usage.KeyboardCapsLock, false}, // CapsLock is tracked; only the locking trio is not
		{usage.KeyboardF1, true},
		{usage.KeyboardF12, true},
		{usage.KeyboardF24, true},
		{usage.KeyboardHome, true},
		{usage.KeyboardUpArrow, true},
		{usage.KeypadNumLock, true},
		{usage.Keypad5, true},
		{usage.KeypadPeriod, true},
		{usage.KeyboardNonUSBackslash, false},
		{usage.KeyboardApplication, false},
		{usage.KeyboardPower, true},
		{usage.KeyboardVolumeUp, true},
		{usage.KeyboardLockingCapsLock, true},
		{usage.KeypadEqualSignAS400, true},
		{usage.KeyboardInternational1, false},
		{usage.KeyboardLANG9, false},
		{usage.KeyboardAlternateErase, false},
		{usage.KeyboardClearOrAgain, false},
		{usage.KeyboardExSel, false},
	}
	for _, tt := range tests {
		if got := c.keys[tt.usage].Ignore; got != tt.ignore {
			t.Errorf("%s: ignore = %v, want %v", c.keys[tt.usage].Name, got, tt.ignore)
		}
	}
}

func TestResolveDuplicateCookieKeepsFirst(t *testing.T) {
	c := builtCatalog(t)

	elems := []hidif.Element{
		{Cookie: 11, Usage: usage.KeyboardA, UsagePage: usage.PageKeyboardOrKeypad},
		{Cookie: 22, Usage: usage.KeyboardA, UsagePage: usage.PageKeyboardOrKeypad},
	}
	_, err := c.resolve(elems, testLogger())
	var insufficient *InsufficientCookiesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("resolve with 1 key: got %v, want InsufficientCookiesError", err)
	}
	if got := c.keys[usage.KeyboardA].Cookie; got != 11 {
		t.Fatalf("duplicate bind: cookie = %d, want first write 11", got)
	}
}

func TestResolveSkipsForeignElements(t *testing.T) {
	c := builtCatalog(t)

	elems := []hidif.Element{
		// wrong usage page
		{Cookie: 5, Usage: usage.KeyboardA, UsagePage: usage.PageGenericDesktop},
		// usage above the tracked range
		{Cookie: 6, Usage: 0xE0, UsagePage: usage.PageKeyboardOrKeypad},
	}
	resolved, err := c.resolve(elems, testLogger())
	if resolved != 0 {
		t.Fatalf("resolved = %d, want 0", resolved)
	}
	if err == nil {
		t.Fatal("resolve with no bindable elements should fail")
	}
	if got := c.keys[usage.KeyboardA].Cookie; got != 0 {
		t.Fatalf("foreign page element bound a cookie: %d", got)
	}
}

package keyreader

import (
	"log/slog"

	"github.com/seagrayinc/hidkeys/internal/hidif"
	"github.com/seagrayinc/hidkeys/pkg/usage"
)

// minResolvedCookies is the empirical floor below which an element
// enumeration is considered broken rather than a small keyboard.
const minResolvedCookies = 40

// KeyRecord is one tracked key: its fixed display name, its usage id on the
// Keyboard/Keypad page (which doubles as the catalog index), the session
// cookie bound during resolution (0 until then), and whether the key is
// excluded from the depressed-key count.
type KeyRecord struct {
	Name   string
	Usage  uint32
	Cookie hidif.Cookie
	Ignore bool
}

// catalog is the dense, order-stable table of tracked keys. Index 0 is a
// reserved placeholder. It is built exactly once per session; cookies are
// then bound once each by resolve.
type catalog struct {
	keys  []KeyRecord
	built bool
}

// build populates the table from the fixed key list. A second call fails.
func (c *catalog) build() error {
	if c.built {
		return ErrCatalogAlreadyBuilt
	}
	c.keys = make([]KeyRecord, len(keyTable))
	for i, d := range keyTable {
		c.keys[i] = KeyRecord{Name: d.name, Usage: d.usage, Ignore: d.ignore}
	}
	c.built = true
	return nil
}

// resolve binds element cookies into the catalog from the flat element
// list and returns the number of non-ignored keys that received one.
// Elements outside the Keyboard/Keypad page or beyond the table are
// skipped; a usage seen twice keeps its first cookie. Fewer than
// minResolvedCookies+1 resolutions fails the whole session.
func (c *catalog) resolve(elems []hidif.Element, log *slog.Logger) (int, error) {
	for _, el := range elems {
		if el.UsagePage != usage.PageKeyboardOrKeypad {
			continue
		}
		if int(el.Usage) >= len(c.keys) {
			// plenty of valid usages sit above the tracked range
			continue
		}
		k := &c.keys[el.Usage]
		if k.Cookie != 0 {
			log.Warn("usage resolved to a second cookie, keeping the first",
				slog.String("key", k.Name),
				slog.Uint64("cookie", uint64(el.Cookie)))
			continue
		}
		k.Cookie = el.Cookie
	}

	resolved := 0
	for i := range c.keys {
		if c.keys[i].Cookie != 0 && !c.keys[i].Ignore {
			resolved++
			log.Debug("located cookie", slog.String("key", c.keys[i].Name))
		}
	}
	if resolved <= minResolvedCookies {
		return resolved, &InsufficientCookiesError{Resolved: resolved}
	}
	return resolved, nil
}

// byCookie finds the record a queue event's cookie belongs to, nil if the
// cookie was never bound.
func (c *catalog) byCookie(ck hidif.Cookie) *KeyRecord {
	if ck == 0 {
		return nil
	}
	for i := range c.keys {
		if c.keys[i].Cookie == ck {
			return &c.keys[i]
		}
	}
	return nil
}

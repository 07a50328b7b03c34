package keyreader

import (
	"fmt"

	"github.com/seagrayinc/hidkeys/internal/hidif"
)

// propertyKeys are the descriptor properties worth keeping for diagnostics.
var propertyKeys = []string{
	hidif.PropTransport,
	hidif.PropVendorID,
	hidif.PropVendorIDSource,
	hidif.PropProductID,
	hidif.PropVersionNumber,
	hidif.PropManufacturer,
	hidif.PropProduct,
	hidif.PropSerialNumber,
	hidif.PropCountryCode,
	hidif.PropLocationID,
}

// collectProperties gathers the descriptive device attributes once, as
// "key: value" lines. Missing properties are skipped silently; an
// unexpected representation is kept as an explicit placeholder. Nothing in
// the session's control flow ever consults these.
func (r *Reader) collectProperties(dev hidif.Device) {
	for _, key := range propertyKeys {
		v := dev.Property(key)
		switch v.Kind {
		case hidif.PropMissing:
			continue
		case hidif.PropNumber:
			r.props = append(r.props, fmt.Sprintf("%s: %d", key, v.Number))
		case hidif.PropString:
			r.props = append(r.props, key+": "+v.String)
		default:
			r.props = append(r.props, key+": <type error>")
		}
	}
}

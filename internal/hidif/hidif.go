// Package hidif defines the capability surface the keyboard session needs
// from the native HID framework: locate the keyboard service, create the
// layered plugin and device interfaces, enumerate elements, sample element
// values, and run a bounded event queue. The session logic in pkg/keyreader
// only sees these interfaces, so it can be driven by the darwin IOKit
// implementation or by the in-memory fake used in tests.
package hidif

import (
	"errors"
	"fmt"
	"time"
)

// Cookie is the framework-assigned handle for one concrete element in the
// device's element tree. Zero means unresolved. Cookies are only valid for
// the life of the session that produced them.
type Cookie uint32

// Element is the {cookie, usage, usage page} triplet read from one entry of
// the flat element list. Backends must drop entries whose fields are absent
// or of an unexpected representation before returning the list.
type Element struct {
	Cookie    Cookie
	Usage     uint32
	UsagePage uint32
}

// ElementType mirrors the framework's element type codes.
type ElementType int32

const (
	ElementTypeInputMisc      ElementType = 1
	ElementTypeInputButton    ElementType = 2
	ElementTypeInputAxis      ElementType = 3
	ElementTypeInputScanCodes ElementType = 4
	ElementTypeOutput         ElementType = 129
	ElementTypeFeature        ElementType = 257
	ElementTypeCollection     ElementType = 513
)

// Event is one entry drained from the device's event queue.
type Event struct {
	Type      ElementType
	Cookie    Cookie
	Value     int32
	Timestamp time.Time
}

// Descriptor property keys, spelled the way the device registry spells them.
const (
	PropTransport      = "Transport"
	PropVendorID       = "VendorID"
	PropVendorIDSource = "VendorIDSource"
	PropProductID      = "ProductID"
	PropVersionNumber  = "VersionNumber"
	PropManufacturer   = "Manufacturer"
	PropProduct        = "Product"
	PropSerialNumber   = "SerialNumber"
	PropCountryCode    = "CountryCode"
	PropLocationID     = "LocationID"
)

// PropKind tells the caller which representation a descriptor property came
// back in. Anything that is neither a number nor a string is PropOther.
type PropKind int

const (
	PropMissing PropKind = iota
	PropNumber
	PropString
	PropOther
)

// PropValue is one descriptor property value.
type PropValue struct {
	Kind   PropKind
	Number int64
	String string
}

var (
	// ErrNoDevice is returned by LocateKeyboard when nothing in the device
	// registry matches the keyboard predicate.
	ErrNoDevice = errors.New("no matching HID keyboard device")

	// ErrUnderrun is returned by Queue.Next when no event is currently
	// pending. It is the normal end-of-drain condition, not a failure.
	ErrUnderrun = errors.New("event queue underrun")

	// ErrDeviceGone is returned by backends when the device has been
	// detached mid-session.
	ErrDeviceGone = errors.New("device no longer attached")
)

// KernError carries a raw framework return code.
type KernError int32

func (e KernError) Error() string {
	return fmt.Sprintf("kernel return code 0x%08x", uint32(e))
}

// Backend is the entry point to the native framework.
type Backend interface {
	// LocateKeyboard runs a single service-matching query for the first
	// device whose class is HID, primary usage page is Generic Desktop and
	// primary usage is Keyboard.
	LocateKeyboard() (Device, error)
}

// Device is a located device service handle. Descriptor properties can only
// be read once a plugin interface exists for the device, even though the
// query itself takes just the device handle; callers must respect that
// ordering.
type Device interface {
	CreatePlugin() (Plugin, error)
	Property(key string) PropValue
	Release() error
}

// Plugin is the intermediate factory object the framework hands out for a
// device service.
type Plugin interface {
	// DeviceInterface performs the QueryInterface step for the HID device
	// interface contract.
	DeviceInterface() (DeviceInterface, error)
	Release() error
}

// DeviceInterface is the opened driver interface for the device.
type DeviceInterface interface {
	// Open opens the interface; shared requests non-exclusive access.
	Open(shared bool) error

	// Elements returns the flat list of elements the interface exposes.
	// The walk is deliberately non-recursive: nested collections (where
	// some keyboards report their modifier keys) are not descended into.
	Elements() ([]Element, error)

	// ElementValue synchronously samples the current value of one element.
	ElementValue(c Cookie) (int32, error)

	// AllocQueue allocates an event queue on this interface.
	AllocQueue() (Queue, error)

	// Close closes and releases the interface.
	Close() error
}

// Queue is a bounded ring buffer of element events.
type Queue interface {
	// Create sizes the ring buffer; once depth events are pending the
	// oldest are dropped.
	Create(depth uint32) error

	// AddElement registers one element as interesting.
	AddElement(c Cookie) error

	Start() error

	// Next pulls the next pending event with zero wait. ErrUnderrun means
	// nothing is pending right now.
	Next() (Event, error)

	Release() error
}

package keyreader

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceNotFound means the service-matching query found no keyboard.
	ErrDeviceNotFound = errors.New("no keyboard device matched")

	// ErrQueryInterface means the plugin refused the HID device interface.
	ErrQueryInterface = errors.New("HID device interface query failed")

	// ErrCatalogAlreadyBuilt is returned when a session's key catalog is
	// populated a second time.
	ErrCatalogAlreadyBuilt = errors.New("key catalog already built")

	// ErrQueueUnavailable is returned by Drain when the event queue was not
	// requested, failed to initialize, or the session is empty.
	ErrQueueUnavailable = errors.New("event queue unavailable")
)

// PluginError reports a failed plugin interface creation. The framework
// return code, when the backend supplies one, is reachable with errors.As
// against hidif.KernError.
type PluginError struct {
	Err error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin interface creation failed: %v", e.Err)
}

func (e *PluginError) Unwrap() error { return e.Err }

// OpenError reports a failed open of the device interface.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("device interface open failed: %v", e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// InsufficientCookiesError means element enumeration bound too few catalog
// entries to trust the match: either the wrong device matched or the
// enumeration broke, as real keyboards resolve well over forty tracked keys.
type InsufficientCookiesError struct {
	Resolved int
}

func (e *InsufficientCookiesError) Error() string {
	return fmt.Sprintf("only %d tracked keys resolved a cookie (need more than %d)", e.Resolved, minResolvedCookies)
}

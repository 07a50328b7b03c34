//go:build !darwin || !cgo

package iokit

import (
	"errors"

	"github.com/seagrayinc/hidkeys/internal/hidif"
)

// New fails everywhere but darwin with cgo: the session contract is bound
// to the IOKit HID device interface and no other framework is targeted.
func New() (hidif.Backend, error) {
	return nil, errors.New("iokit: HID keyboard sessions require darwin with cgo")
}

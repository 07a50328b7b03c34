//go:build darwin && cgo

// Package iokit implements hidif.Backend over the legacy IOKit HID device
// interface contract (IOHIDDeviceInterface / IOHIDQueueInterface). The COM
// style function-pointer tables cannot be called from Go directly, so thin
// static C helpers wrap each call.
package iokit

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <string.h>
#include <mach/mach_time.h>
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/IOKitLib.h>
#include <IOKit/IOCFPlugIn.h>
#include <IOKit/hid/IOHIDLib.h>
#include <IOKit/hid/IOHIDKeys.h>
#include <IOKit/hid/IOHIDUsageTables.h>

// locateKeyboardService runs one service-matching query for the first HID
// device whose primary usage page/usage is GenericDesktop/Keyboard. The
// look-up consumes the matching dictionary reference.
static io_service_t locateKeyboardService(void) {
	CFMutableDictionaryRef match = IOServiceMatching(kIOHIDDeviceKey);
	if (!match) {
		return 0;
	}

	UInt32 page = kHIDPage_GenericDesktop;
	UInt32 usage = kHIDUsage_GD_Keyboard;
	CFNumberRef pageRef = CFNumberCreate(kCFAllocatorDefault, kCFNumberIntType, &page);
	CFNumberRef usageRef = CFNumberCreate(kCFAllocatorDefault, kCFNumberIntType, &usage);

	io_service_t svc = 0;
	if (pageRef && usageRef) {
		CFDictionarySetValue(match, CFSTR(kIOHIDPrimaryUsagePageKey), pageRef);
		CFDictionarySetValue(match, CFSTR(kIOHIDPrimaryUsageKey), usageRef);
		svc = IOServiceGetMatchingService(kIOMasterPortDefault, match);
	} else {
		CFRelease(match);
	}

	if (pageRef) CFRelease(pageRef);
	if (usageRef) CFRelease(usageRef);
	return svc;
}

static IOReturn createPlugin(io_service_t svc, IOCFPlugInInterface ***out) {
	SInt32 score = 0;
	return IOCreatePlugInInterfaceForService(svc, kIOHIDDeviceUserClientTypeID,
		kIOCFPlugInInterfaceID, out, &score);
}

static int queryHIDInterface(IOCFPlugInInterface **pi, IOHIDDeviceInterface ***out) {
	return (int)(*pi)->QueryInterface(pi,
		CFUUIDGetUUIDBytes(kIOHIDDeviceInterfaceID), (LPVOID *)out);
}

// copyProperty reads one descriptor property by key. Returns 0 when the
// property is missing, 1 for a number (in *num), 2 for a string (in buf),
// 3 for any other representation.
static int copyProperty(io_service_t svc, const char *key, long long *num, char *buf, int buflen) {
	CFStringRef keyRef = CFStringCreateWithCString(kCFAllocatorDefault, key, kCFStringEncodingUTF8);
	if (!keyRef) {
		return 0;
	}
	CFTypeRef val = IORegistryEntryCreateCFProperty(svc, keyRef, kCFAllocatorDefault, 0);
	CFRelease(keyRef);
	if (!val) {
		return 0;
	}

	int kind = 3;
	if (CFGetTypeID(val) == CFNumberGetTypeID()) {
		if (CFNumberGetValue((CFNumberRef)val, kCFNumberLongLongType, num)) {
			kind = 1;
		}
	} else if (CFGetTypeID(val) == CFStringGetTypeID()) {
		if (CFStringGetCString((CFStringRef)val, buf, buflen, kCFStringEncodingUTF8)) {
			kind = 2;
		}
	}
	CFRelease(val);
	return kind;
}

static IOReturn ifaceOpen(IOHIDDeviceInterface **di, UInt32 flags) { return (*di)->open(di, flags); }
static IOReturn ifaceClose(IOHIDDeviceInterface **di) { return (*di)->close(di); }
static void ifaceRelease(IOHIDDeviceInterface **di) { (*di)->Release(di); }

static IOReturn ifaceGetElementValue(IOHIDDeviceInterface **di, IOHIDElementCookie cookie, IOHIDEventStruct *ev) {
	return (*di)->getElementValue(di, cookie, ev);
}

// copyElements asks for the flat element list. The 1.2.2 interface revision
// carries copyMatchingElements; passing NULL matches everything. Nested
// collections are NOT descended into.
static IOReturn copyElements(IOHIDDeviceInterface **di, CFArrayRef *out) {
	return (*(IOHIDDeviceInterface122 **)di)->copyMatchingElements((IOHIDDeviceInterface122 **)di, NULL, out);
}

static int elementField(CFDictionaryRef el, CFStringRef key, long *out) {
	CFTypeRef v = CFDictionaryGetValue(el, key);
	if (!v || CFGetTypeID(v) != CFNumberGetTypeID()) {
		return 0;
	}
	return CFNumberGetValue((CFNumberRef)v, kCFNumberLongType, out) ? 1 : 0;
}

// readElement extracts the {cookie, usage, usage page} triplet from one
// array entry. Returns 1 on success, 0 when the cookie is absent, -1 and
// -2 when the usage or usage page are absent or mistyped.
static int readElement(CFArrayRef arr, CFIndex i, long *cookie, long *usage, long *usagePage) {
	CFDictionaryRef el = (CFDictionaryRef)CFArrayGetValueAtIndex(arr, i);
	if (!el) {
		return 0;
	}
	if (!elementField(el, CFSTR(kIOHIDElementCookieKey), cookie)) {
		return 0;
	}
	if (!elementField(el, CFSTR(kIOHIDElementUsageKey), usage)) {
		return -1;
	}
	if (!elementField(el, CFSTR(kIOHIDElementUsagePageKey), usagePage)) {
		return -2;
	}
	return 1;
}

static IOHIDQueueInterface **ifaceAllocQueue(IOHIDDeviceInterface **di) { return (*di)->allocQueue(di); }

// Option 0 only enqueues events for explicitly added cookies;
// kIOHIDQueueOptionsTypeEnqueueAll would deliver everything regardless.
static IOReturn queueCreate(IOHIDQueueInterface **q, UInt32 depth) { return (*q)->create(q, 0, depth); }
static IOReturn queueStart(IOHIDQueueInterface **q) { return (*q)->start(q); }
static IOReturn queueStop(IOHIDQueueInterface **q) { return (*q)->stop(q); }
static IOReturn queueAddElement(IOHIDQueueInterface **q, IOHIDElementCookie cookie) {
	return (*q)->addElement(q, cookie, 0);
}
static IOReturn queueNext(IOHIDQueueInterface **q, IOHIDEventStruct *ev) {
	AbsoluteTime zero = {0, 0};
	return (*q)->getNextEvent(q, ev, zero, 0);
}
static void queueRelease(IOHIDQueueInterface **q) { (*q)->Release(q); }

static int isUnderrun(IOReturn r) { return r == kIOReturnUnderrun; }
static int isDeviceGone(IOReturn r) { return r == kIOReturnNoDevice || r == kIOReturnNotAttached; }

static uint64_t absTimeToNanos(AbsoluteTime t) {
	uint64_t ticks;
	memcpy(&ticks, &t, sizeof(ticks));
	mach_timebase_info_data_t tb;
	mach_timebase_info(&tb);
	return ticks * tb.numer / tb.denom;
}

static uint64_t nowNanos(void) {
	mach_timebase_info_data_t tb;
	mach_timebase_info(&tb);
	return mach_absolute_time() * tb.numer / tb.denom;
}
*/
import "C"

import (
	"errors"
	"time"
	"unsafe"

	"github.com/seagrayinc/hidkeys/internal/hidif"
)

type backend struct{}

// New returns the IOKit-backed hidif.Backend.
func New() (hidif.Backend, error) {
	return backend{}, nil
}

func (backend) LocateKeyboard() (hidif.Device, error) {
	svc := C.locateKeyboardService()
	if svc == 0 {
		return nil, hidif.ErrNoDevice
	}
	return &device{svc: svc}, nil
}

type device struct {
	svc C.io_service_t
}

func (d *device) CreatePlugin() (hidif.Plugin, error) {
	var pi **C.IOCFPlugInInterface
	if ret := C.createPlugin(d.svc, &pi); ret != 0 {
		return nil, hidif.KernError(int32(ret))
	}
	return &plugin{pi: pi}, nil
}

func (d *device) Property(key string) hidif.PropValue {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var num C.longlong
	buf := make([]C.char, 256)
	switch C.copyProperty(d.svc, ckey, &num, &buf[0], C.int(len(buf))) {
	case 1:
		return hidif.PropValue{Kind: hidif.PropNumber, Number: int64(num)}
	case 2:
		return hidif.PropValue{Kind: hidif.PropString, String: C.GoString(&buf[0])}
	case 3:
		return hidif.PropValue{Kind: hidif.PropOther}
	default:
		return hidif.PropValue{Kind: hidif.PropMissing}
	}
}

func (d *device) Release() error {
	if d.svc != 0 {
		C.IOObjectRelease(C.io_object_t(d.svc))
		d.svc = 0
	}
	return nil
}

type plugin struct {
	pi **C.IOCFPlugInInterface
}

func (p *plugin) DeviceInterface() (hidif.DeviceInterface, error) {
	var di **C.IOHIDDeviceInterface
	if hr := C.queryHIDInterface(p.pi, &di); hr != 0 {
		return nil, hidif.KernError(int32(hr))
	}
	return &iface{di: di}, nil
}

func (p *plugin) Release() error {
	if p.pi != nil {
		C.IODestroyPlugInInterface(p.pi)
		p.pi = nil
	}
	return nil
}

type iface struct {
	di     **C.IOHIDDeviceInterface
	opened bool
}

func (f *iface) Open(shared bool) error {
	var flags C.UInt32
	if !shared {
		flags = C.kIOHIDOptionsTypeSeizeDevice
	}
	if ret := C.ifaceOpen(f.di, flags); ret != 0 {
		return hidif.KernError(int32(ret))
	}
	f.opened = true
	return nil
}

func (f *iface) Elements() ([]hidif.Element, error) {
	var arr C.CFArrayRef
	if ret := C.copyElements(f.di, &arr); ret != 0 {
		return nil, hidif.KernError(int32(ret))
	}
	defer C.CFRelease(C.CFTypeRef(arr))

	n := C.CFArrayGetCount(arr)
	elems := make([]hidif.Element, 0, int(n))
	for i := C.CFIndex(0); i < n; i++ {
		var cookie, usg, page C.long
		if C.readElement(arr, i, &cookie, &usg, &page) != 1 {
			// malformed entry; a cookie without a usage id does happen
			continue
		}
		if cookie <= 0 || usg < 0 || page < 0 {
			continue
		}
		elems = append(elems, hidif.Element{
			Cookie:    hidif.Cookie(cookie),
			Usage:     uint32(usg),
			UsagePage: uint32(page),
		})
	}
	return elems, nil
}

func (f *iface) ElementValue(c hidif.Cookie) (int32, error) {
	var ev C.IOHIDEventStruct
	if ret := C.ifaceGetElementValue(f.di, C.IOHIDElementCookie(c), &ev); ret != 0 {
		if C.isDeviceGone(ret) != 0 {
			return 0, hidif.ErrDeviceGone
		}
		return 0, hidif.KernError(int32(ret))
	}
	return int32(ev.value), nil
}

func (f *iface) AllocQueue() (hidif.Queue, error) {
	qi := C.ifaceAllocQueue(f.di)
	if qi == nil {
		return nil, errors.New("allocQueue returned no queue interface")
	}
	return &queue{qi: qi}, nil
}

func (f *iface) Close() error {
	if f.di == nil {
		return nil
	}
	if f.opened {
		C.ifaceClose(f.di)
	}
	C.ifaceRelease(f.di)
	f.di = nil
	return nil
}

type queue struct {
	qi      **C.IOHIDQueueInterface
	started bool
}

func (q *queue) Create(depth uint32) error {
	if ret := C.queueCreate(q.qi, C.UInt32(depth)); ret != 0 {
		return hidif.KernError(int32(ret))
	}
	return nil
}

func (q *queue) AddElement(c hidif.Cookie) error {
	if ret := C.queueAddElement(q.qi, C.IOHIDElementCookie(c)); ret != 0 {
		return hidif.KernError(int32(ret))
	}
	return nil
}

func (q *queue) Start() error {
	if ret := C.queueStart(q.qi); ret != 0 {
		return hidif.KernError(int32(ret))
	}
	q.started = true
	return nil
}

func (q *queue) Next() (hidif.Event, error) {
	var ev C.IOHIDEventStruct
	if ret := C.queueNext(q.qi, &ev); ret != 0 {
		if C.isUnderrun(ret) != 0 {
			return hidif.Event{}, hidif.ErrUnderrun
		}
		if C.isDeviceGone(ret) != 0 {
			return hidif.Event{}, hidif.ErrDeviceGone
		}
		return hidif.Event{}, hidif.KernError(int32(ret))
	}

	// the queue stamps events with mach absolute time; rebase onto the
	// wall clock relative to now
	evNanos := uint64(C.absTimeToNanos(ev.timestamp))
	now := uint64(C.nowNanos())
	ts := time.Now()
	if now > evNanos {
		ts = ts.Add(-time.Duration(now - evNanos))
	}

	return hidif.Event{
		Type:      hidif.ElementType(ev._type),
		Cookie:    hidif.Cookie(ev.elementCookie),
		Value:     int32(ev.value),
		Timestamp: ts,
	}, nil
}

func (q *queue) Release() error {
	if q.qi == nil {
		return nil
	}
	if q.started {
		C.queueStop(q.qi)
	}
	C.queueRelease(q.qi)
	q.qi = nil
	return nil
}

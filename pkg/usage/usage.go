// Package usage defines the HID usage-page and usage-id constants the
// keyboard session cares about, per the USB HID Usage Tables document
// (https://usb.org/sites/default/files/hut1_4.pdf).
package usage

// Usage pages.
const (
	PageGenericDesktop   uint32 = 0x01
	PageKeyboardOrKeypad uint32 = 0x07
)

// Generic Desktop page usages.
const (
	GenericDesktopKeyboard uint32 = 0x06
)

// Keyboard/Keypad page usages. 0x00 is reserved ("no event"); the keypad
// constants are interleaved with the keyboard ones exactly as the usage
// table assigns them.
const (
	KeyboardErrorRollOver        uint32 = 0x01
	KeyboardPOSTFail             uint32 = 0x02
	KeyboardErrorUndefined       uint32 = 0x03
	KeyboardA                    uint32 = 0x04
	KeyboardB                    uint32 = 0x05
	KeyboardC                    uint32 = 0x06
	KeyboardD                    uint32 = 0x07
	KeyboardE                    uint32 = 0x08
	KeyboardF                    uint32 = 0x09
	KeyboardG                    uint32 = 0x0A
	KeyboardH                    uint32 = 0x0B
	KeyboardI                    uint32 = 0x0C
	KeyboardJ                    uint32 = 0x0D
	KeyboardK                    uint32 = 0x0E
	KeyboardL                    uint32 = 0x0F
	KeyboardM                    uint32 = 0x10
	KeyboardN                    uint32 = 0x11
	KeyboardO                    uint32 = 0x12
	KeyboardP                    uint32 = 0x13
	KeyboardQ                    uint32 = 0x14
	KeyboardR                    uint32 = 0x15
	KeyboardS                    uint32 = 0x16
	KeyboardT                    uint32 = 0x17
	KeyboardU                    uint32 = 0x18
	KeyboardV                    uint32 = 0x19
	KeyboardW                    uint32 = 0x1A
	KeyboardX                    uint32 = 0x1B
	KeyboardY                    uint32 = 0x1C
	KeyboardZ                    uint32 = 0x1D
	Keyboard1                    uint32 = 0x1E
	Keyboard2                    uint32 = 0x1F
	Keyboard3                    uint32 = 0x20
	Keyboard4                    uint32 = 0x21
	Keyboard5                    uint32 = 0x22
	Keyboard6                    uint32 = 0x23
	Keyboard7                    uint32 = 0x24
	Keyboard8                    uint32 = 0x25
	Keyboard9                    uint32 = 0x26
	Keyboard0                    uint32 = 0x27
	KeyboardReturnOrEnter        uint32 = 0x28
	KeyboardEscape               uint32 = 0x29
	KeyboardDeleteOrBackspace    uint32 = 0x2A
	KeyboardTab                  uint32 = 0x2B
	KeyboardSpacebar             uint32 = 0x2C
	KeyboardHyphen               uint32 = 0x2D
	KeyboardEqualSign            uint32 = 0x2E
	KeyboardOpenBracket          uint32 = 0x2F
	KeyboardCloseBracket         uint32 = 0x30
	KeyboardBackslash            uint32 = 0x31
	KeyboardNonUSPound           uint32 = 0x32
	KeyboardSemicolon            uint32 = 0x33
	KeyboardQuote                uint32 = 0x34
	KeyboardGraveAccentAndTilde  uint32 = 0x35
	KeyboardComma                uint32 = 0x36
	KeyboardPeriod               uint32 = 0x37
	KeyboardSlash                uint32 = 0x38
	KeyboardCapsLock             uint32 = 0x39
	KeyboardF1                   uint32 = 0x3A
	KeyboardF2                   uint32 = 0x3B
	KeyboardF3                   uint32 = 0x3C
	KeyboardF4                   uint32 = 0x3D
	KeyboardF5                   uint32 = 0x3E
	KeyboardF6                   uint32 = 0x3F
	KeyboardF7                   uint32 = 0x40
	KeyboardF8                   uint32 = 0x41
	KeyboardF9                   uint32 = 0x42
	KeyboardF10                  uint32 = 0x43
	KeyboardF11                  uint32 = 0x44
	KeyboardF12                  uint32 = 0x45
	KeyboardPrintScreen          uint32 = 0x46
	KeyboardScrollLock           uint32 = 0x47
	KeyboardPause                uint32 = 0x48
	KeyboardInsert               uint32 = 0x49
	KeyboardHome                 uint32 = 0x4A
	KeyboardPageUp               uint32 = 0x4B
	KeyboardDeleteForward        uint32 = 0x4C
	KeyboardEnd                  uint32 = 0x4D
	KeyboardPageDown             uint32 = 0x4E
	KeyboardRightArrow           uint32 = 0x4F
	KeyboardLeftArrow            uint32 = 0x50
	KeyboardDownArrow            uint32 = 0x51
	KeyboardUpArrow              uint32 = 0x52
	KeypadNumLock                uint32 = 0x53
	KeypadSlash                  uint32 = 0x54
	KeypadAsterisk               uint32 = 0x55
	KeypadHyphen                 uint32 = 0x56
	KeypadPlus                   uint32 = 0x57
	KeypadEnter                  uint32 = 0x58
	Keypad1                      uint32 = 0x59
	Keypad2                      uint32 = 0x5A
	Keypad3                      uint32 = 0x5B
	Keypad4                      uint32 = 0x5C
	Keypad5                      uint32 = 0x5D
	Keypad6                      uint32 = 0x5E
	Keypad7                      uint32 = 0x5F
	Keypad8                      uint32 = 0x60
	Keypad9                      uint32 = 0x61
	Keypad0                      uint32 = 0x62
	KeypadPeriod                 uint32 = 0x63
	KeyboardNonUSBackslash       uint32 = 0x64
	KeyboardApplication          uint32 = 0x65
	KeyboardPower                uint32 = 0x66
	KeypadEqualSign              uint32 = 0x67
	KeyboardF13                  uint32 = 0x68
	KeyboardF14                  uint32 = 0x69
	KeyboardF15                  uint32 = 0x6A
	KeyboardF16                  uint32 = 0x6B
	KeyboardF17                  uint32 = 0x6C
	KeyboardF18                  uint32 = 0x6D
	KeyboardF19                  uint32 = 0x6E
	KeyboardF20                  uint32 = 0x6F
	KeyboardF21                  uint32 = 0x70
	KeyboardF22                  uint32 = 0x71
	KeyboardF23                  uint32 = 0x72
	KeyboardF24                  uint32 = 0x73
	KeyboardExecute              uint32 = 0x74
	KeyboardHelp                 uint32 = 0x75
	KeyboardMenu                 uint32 = 0x76
	KeyboardSelect               uint32 = 0x77
	KeyboardStop                 uint32 = 0x78
	KeyboardAgain                uint32 = 0x79
	KeyboardUndo                 uint32 = 0x7A
	KeyboardCut                  uint32 = 0x7B
	KeyboardCopy                 uint32 = 0x7C
	KeyboardPaste                uint32 = 0x7D
	KeyboardFind                 uint32 = 0x7E
	KeyboardMute                 uint32 = 0x7F
	KeyboardVolumeUp             uint32 = 0x80
	KeyboardVolumeDown           uint32 = 0x81
	KeyboardLockingCapsLock      uint32 = 0x82
	KeyboardLockingNumLock       uint32 = 0x83
	KeyboardLockingScrollLock    uint32 = 0x84
	KeypadComma                  uint32 = 0x85
	KeypadEqualSignAS400         uint32 = 0x86
	KeyboardInternational1       uint32 = 0x87
	KeyboardInternational2       uint32 = 0x88
	KeyboardInternational3       uint32 = 0x89
	KeyboardInternational4       uint32 = 0x8A
	KeyboardInternational5       uint32 = 0x8B
	KeyboardInternational6       uint32 = 0x8C
	KeyboardInternational7       uint32 = 0x8D
	KeyboardInternational8       uint32 = 0x8E
	KeyboardInternational9       uint32 = 0x8F
	KeyboardLANG1                uint32 = 0x90
	KeyboardLANG2                uint32 = 0x91
	KeyboardLANG3                uint32 = 0x92
	KeyboardLANG4                uint32 = 0x93
	KeyboardLANG5                uint32 = 0x94
	KeyboardLANG6                uint32 = 0x95
	KeyboardLANG7                uint32 = 0x96
	KeyboardLANG8                uint32 = 0x97
	KeyboardLANG9                uint32 = 0x98
	KeyboardAlternateErase       uint32 = 0x99
	KeyboardSysReqOrAttention    uint32 = 0x9A
	KeyboardCancel               uint32 = 0x9B
	KeyboardClear                uint32 = 0x9C
	KeyboardPrior                uint32 = 0x9D
	KeyboardReturn               uint32 = 0x9E
	KeyboardSeparator            uint32 = 0x9F
	KeyboardOut                  uint32 = 0xA0
	KeyboardOper                 uint32 = 0xA1
	KeyboardClearOrAgain         uint32 = 0xA2
	KeyboardCrSelOrProps         uint32 = 0xA3
	KeyboardExSel                uint32 = 0xA4
	// 0xA5-0xDF reserved; the modifier block 0xE0-0xE7 is reported inside a
	// nested collection and is not tracked here.
)

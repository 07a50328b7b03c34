package keyreader

import "github.com/seagrayinc/hidkeys/pkg/usage"

type keyDef struct {
	name   string
	usage  uint32
	ignore bool
}

// keyTable fixes the tracked-key policy for every session: which usage
// ids exist in the catalog, their display names, and which keys never
// count toward the depressed total. The partition is deliberate policy,
// not an artifact: pseudo keys, function keys, the navigation cluster,
// the keypad, locking-lock keys and media keys are excluded, while the
// printable block plus CapsLock, Application, the international and
// language keys and the extended editing keys are tracked. Index 0 is a
// reserved placeholder so a key's usage id is also its table index.
var keyTable = [...]keyDef{
	{name: "ReservedIndexZero"},
	{name: "KeyboardErrorRollOver", usage: usage.KeyboardErrorRollOver, ignore: true},
	{name: "KeyboardPOSTFail", usage: usage.KeyboardPOSTFail, ignore: true},
	{name: "KeyboardErrorUndefined", usage: usage.KeyboardErrorUndefined, ignore: true},
	{name: "KeyboardA", usage: usage.KeyboardA},
	{name: "KeyboardB", usage: usage.KeyboardB},
	{name: "KeyboardC", usage: usage.KeyboardC},
	{name: "KeyboardD", usage: usage.KeyboardD},
	{name: "KeyboardE", usage: usage.KeyboardE},
	{name: "KeyboardF", usage: usage.KeyboardF},
	{name: "KeyboardG", usage: usage.KeyboardG},
	{name: "KeyboardH", usage: usage.KeyboardH},
	{name: "KeyboardI", usage: usage.KeyboardI},
	{name: "KeyboardJ", usage: usage.KeyboardJ},
	{name: "KeyboardK", usage: usage.KeyboardK},
	{name: "KeyboardL", usage: usage.KeyboardL},
	{name: "KeyboardM", usage: usage.KeyboardM},
	{name: "KeyboardN", usage: usage.KeyboardN},
	{name: "KeyboardO", usage: usage.KeyboardO},
	{name: "KeyboardP", usage: usage.KeyboardP},
	{name: "KeyboardQ", usage: usage.KeyboardQ},
	{name: "KeyboardR", usage: usage.KeyboardR},
	{name: "KeyboardS", usage: usage.KeyboardS},
	{name: "KeyboardT", usage: usage.KeyboardT},
	{name: "KeyboardU", usage: usage.KeyboardU},
	{name: "KeyboardV", usage: usage.KeyboardV},
	{name: "KeyboardW", usage: usage.KeyboardW},
	{name: "KeyboardX", usage: usage.KeyboardX},
	{name: "KeyboardY", usage: usage.KeyboardY},
	{name: "KeyboardZ", usage: usage.KeyboardZ},
	{name: "Keyboard1", usage: usage.Keyboard1},
	{name: "Keyboard2", usage: usage.Keyboard2},
	{name: "Keyboard3", usage: usage.Keyboard3},
	{name: "Keyboard4", usage: usage.Keyboard4},
	{name: "Keyboard5", usage: usage.Keyboard5},
	{name: "Keyboard6", usage: usage.Keyboard6},
	{name: "Keyboard7", usage: usage.Keyboard7},
	{name: "Keyboard8", usage: usage.Keyboard8},
	{name: "Keyboard9", usage: usage.Keyboard9},
	{name: "Keyboard0", usage: usage.Keyboard0},
	{name: "KeyboardReturnOrEnter", usage: usage.KeyboardReturnOrEnter},
	{name: "KeyboardEscape", usage: usage.KeyboardEscape},
	{name: "KeyboardDeleteOrBackspace", usage: usage.KeyboardDeleteOrBackspace},
	{name: "KeyboardTab", usage: usage.KeyboardTab},
	{name: "KeyboardSpacebar", usage: usage.KeyboardSpacebar},
	{name: "KeyboardHyphen", usage: usage.KeyboardHyphen},
	{name: "KeyboardEqualSign", usage: usage.KeyboardEqualSign},
	{name: "KeyboardOpenBracket", usage: usage.KeyboardOpenBracket},
	{name: "KeyboardCloseBracket", usage: usage.KeyboardCloseBracket},
	{name: "KeyboardBackslash", usage: usage.KeyboardBackslash},
	{name: "KeyboardNonUSPound", usage: usage.KeyboardNonUSPound},
	{name: "KeyboardSemicolon", usage: usage.KeyboardSemicolon},
	{name: "KeyboardQuote", usage: usage.KeyboardQuote},
	{name: "KeyboardGraveAccentAndTilde", usage: usage.KeyboardGraveAccentAndTilde},
	{name: "KeyboardComma", usage: usage.KeyboardComma},
	{name: "KeyboardPeriod", usage: usage.KeyboardPeriod},
	{name: "KeyboardSlash", usage: usage.KeyboardSlash},
	{name: "KeyboardCapsLock", usage: usage.KeyboardCapsLock},
	{name: "KeyboardF1", usage: usage.KeyboardF1, ignore: true},
	{name: "KeyboardF2", usage: usage.KeyboardF2, ignore: true},
	{name: "KeyboardF3", usage: usage.KeyboardF3, ignore: true},
	{name: "KeyboardF4", usage: usage.KeyboardF4, ignore: true},
	{name: "KeyboardF5", usage: usage.KeyboardF5, ignore: true},
	{name: "KeyboardF6", usage: usage.KeyboardF6, ignore: true},
	{name: "KeyboardF7", usage: usage.KeyboardF7, ignore: true},
	{name: "KeyboardF8", usage: usage.KeyboardF8, ignore: true},
	{name: "KeyboardF9", usage: usage.KeyboardF9, ignore: true},
	{name: "KeyboardF10", usage: usage.KeyboardF10, ignore: true},
	{name: "KeyboardF11", usage: usage.KeyboardF11, ignore: true},
	{name: "KeyboardF12", usage: usage.KeyboardF12, ignore: true},
	{name: "KeyboardPrintScreen", usage: usage.KeyboardPrintScreen, ignore: true},
	{name: "KeyboardScrollLock", usage: usage.KeyboardScrollLock, ignore: true},
	{name: "KeyboardPause", usage: usage.KeyboardPause, ignore: true},
	{name: "KeyboardInsert", usage: usage.KeyboardInsert, ignore: true},
	{name: "KeyboardHome", usage: usage.KeyboardHome, ignore: true},
	{name: "KeyboardPageUp", usage: usage.KeyboardPageUp, ignore: true},
	{name: "KeyboardDeleteForward", usage: usage.KeyboardDeleteForward, ignore: true},
	{name: "KeyboardEnd", usage: usage.KeyboardEnd, ignore: true},
	{name: "KeyboardPageDown", usage: usage.KeyboardPageDown, ignore: true},
	{name: "KeyboardRightArrow", usage: usage.KeyboardRightArrow, ignore: true},
	{name: "KeyboardLeftArrow", usage: usage.KeyboardLeftArrow, ignore: true},
	{name: "KeyboardDownArrow", usage: usage.KeyboardDownArrow, ignore: true},
	{name: "KeyboardUpArrow", usage: usage.KeyboardUpArrow, ignore: true},
	{name: "KeypadNumLock", usage: usage.KeypadNumLock, ignore: true},
	{name: "KeypadSlash", usage: usage.KeypadSlash, ignore: true},
	{name: "KeypadAsterisk", usage: usage.KeypadAsterisk, ignore: true},
	{name: "KeypadHyphen", usage: usage.KeypadHyphen, ignore: true},
	{name: "KeypadPlus", usage: usage.KeypadPlus, ignore: true},
	{name: "KeypadEnter", usage: usage.KeypadEnter, ignore: true},
	{name: "Keypad1", usage: usage.Keypad1, ignore: true},
	{name: "Keypad2", usage: usage.Keypad2, ignore: true},
	{name: "Keypad3", usage: usage.Keypad3, ignore: true},
	{name: "Keypad4", usage: usage.Keypad4, ignore: true},
	{name: "Keypad5", usage: usage.Keypad5, ignore: true},
	{name: "Keypad6", usage: usage.Keypad6, ignore: true},
	{name: "Keypad7", usage: usage.Keypad7, ignore: true},
	{name: "Keypad8", usage: usage.Keypad8, ignore: true},
	{name: "Keypad9", usage: usage.Keypad9, ignore: true},
	{name: "Keypad0", usage: usage.Keypad0, ignore: true},
	{name: "KeypadPeriod", usage: usage.KeypadPeriod, ignore: true},
	{name: "KeyboardNonUSBackslash", usage: usage.KeyboardNonUSBackslash},
	{name: "KeyboardApplication", usage: usage.KeyboardApplication},
	{name: "KeyboardPower", usage: usage.KeyboardPower, ignore: true},
	{name: "KeypadEqualSign", usage: usage.KeypadEqualSign, ignore: true},
	{name: "KeyboardF13", usage: usage.KeyboardF13, ignore: true},
	{name: "KeyboardF14", usage: usage.KeyboardF14, ignore: true},
	{name: "KeyboardF15", usage: usage.KeyboardF15, ignore: true},
	{name: "KeyboardF16", usage: usage.KeyboardF16, ignore: true},
	{name: "KeyboardF17", usage: usage.KeyboardF17, ignore: true},
	{name: "KeyboardF18", usage: usage.KeyboardF18, ignore: true},
	{name: "KeyboardF19", usage: usage.KeyboardF19, ignore: true},
	{name: "KeyboardF20", usage: usage.KeyboardF20, ignore: true},
	{name: "KeyboardF21", usage: usage.KeyboardF21, ignore: true},
	{name: "KeyboardF22", usage: usage.KeyboardF22, ignore: true},
	{name: "KeyboardF23", usage: usage.KeyboardF23, ignore: true},
	{name: "KeyboardF24", usage: usage.KeyboardF24, ignore: true},
	{name: "KeyboardExecute", usage: usage.KeyboardExecute, ignore: true},
	{name: "KeyboardHelp", usage: usage.KeyboardHelp, ignore: true},
	{name: "KeyboardMenu", usage: usage.KeyboardMenu, ignore: true},
	{name: "KeyboardSelect", usage: usage.KeyboardSelect, ignore: true},
	{name: "KeyboardStop", usage: usage.KeyboardStop, ignore: true},
	{name: "KeyboardAgain", usage: usage.KeyboardAgain, ignore: true},
	{name: "KeyboardUndo", usage: usage.KeyboardUndo, ignore: true},
	{name: "KeyboardCut", usage: usage.KeyboardCut, ignore: true},
	{name: "KeyboardCopy", usage: usage.KeyboardCopy, ignore: true},
	{name: "KeyboardPaste", usage: usage.KeyboardPaste, ignore: true},
	{name: "KeyboardFind", usage: usage.KeyboardFind, ignore: true},
	{name: "KeyboardMute", usage: usage.KeyboardMute, ignore: true},
	{name: "KeyboardVolumeUp", usage: usage.KeyboardVolumeUp, ignore: true},
	{name: "KeyboardVolumeDown", usage: usage.KeyboardVolumeDown, ignore: true},
	{name: "KeyboardLockingCapsLock", usage: usage.KeyboardLockingCapsLock, ignore: true},
	{name: "KeyboardLockingNumLock", usage: usage.KeyboardLockingNumLock, ignore: true},
	{name: "KeyboardLockingScrollLock", usage: usage.KeyboardLockingScrollLock, ignore: true},
	{name: "KeypadComma", usage: usage.KeypadComma, ignore: true},
	{name: "KeypadEqualSignAS400", usage: usage.KeypadEqualSignAS400, ignore: true},
	{name: "KeyboardInternational1", usage: usage.KeyboardInternational1},
	{name: "KeyboardInternational2", usage: usage.KeyboardInternational2},
	{name: "KeyboardInternational3", usage: usage.KeyboardInternational3},
	{name: "KeyboardInternational4", usage: usage.KeyboardInternational4},
	{name: "KeyboardInternational5", usage: usage.KeyboardInternational5},
	{name: "KeyboardInternational6", usage: usage.KeyboardInternational6},
	{name: "KeyboardInternational7", usage: usage.KeyboardInternational7},
	{name: "KeyboardInternational8", usage: usage.KeyboardInternational8},
	{name: "KeyboardInternational9", usage: usage.KeyboardInternational9},
	{name: "KeyboardLANG1", usage: usage.KeyboardLANG1},
	{name: "KeyboardLANG2", usage: usage.KeyboardLANG2},
	{name: "KeyboardLANG3", usage: usage.KeyboardLANG3},
	{name: "KeyboardLANG4", usage: usage.KeyboardLANG4},
	{name: "KeyboardLANG5", usage: usage.KeyboardLANG5},
	{name: "KeyboardLANG6", usage: usage.KeyboardLANG6},
	{name: "KeyboardLANG7", usage: usage.KeyboardLANG7},
	{name: "KeyboardLANG8", usage: usage.KeyboardLANG8},
	{name: "KeyboardLANG9", usage: usage.KeyboardLANG9},
	{name: "KeyboardAlternateErase", usage: usage.KeyboardAlternateErase},
	{name: "KeyboardSysReqOrAttention", usage: usage.KeyboardSysReqOrAttention},
	{name: "KeyboardCancel", usage: usage.KeyboardCancel},
	{name: "KeyboardClear", usage: usage.KeyboardClear},
	{name: "KeyboardPrior", usage: usage.KeyboardPrior},
	{name: "KeyboardReturn", usage: usage.KeyboardReturn},
	{name: "KeyboardSeparator", usage: usage.KeyboardSeparator},
	{name: "KeyboardOut", usage: usage.KeyboardOut},
	{name: "KeyboardOper", usage: usage.KeyboardOper},
	{name: "KeyboardClearOrAgain", usage: usage.KeyboardClearOrAgain},
	{name: "KeyboardCrSelOrProps", usage: usage.KeyboardCrSelOrProps},
	{name: "KeyboardExSel", usage: usage.KeyboardExSel},
}

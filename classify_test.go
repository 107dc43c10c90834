package dirsyn

import "testing"

func TestIsProhibited(t *testing.T) {
	for idx, tst := range []struct {
		r    rune
		want bool
	}{
		{0x0378, true},        // A.1 unassigned
		{0x0530, true},        // A.1 unassigned
		{0xE000, true},        // C.3 private use
		{0x10FFFD, true},      // C.3 private use, supplementary plane
		{0xFDD0, true},        // C.4 non-character
		{0xFFFE, true},        // C.4 non-character
		{0x1FFFF, true},       // C.4 non-character, supplementary plane
		{0xD800, true},        // C.5 surrogate
		{0xDFFF, true},        // C.5 surrogate
		{0x200E, true},        // C.8 bidi control
		{0x202B, true},        // C.8 bidi control
		{prohibitedOutput, true},
		{'a', false},
		{' ', false},
		{0x4E2D, false}, // CJK, unaffected
	} {
		if got := isProhibited(tst.r); got != tst.want {
			t.Errorf("%s[%d] failed for %U:\nwant: %v\ngot:  %v", t.Name(), idx, tst.r, tst.want, got)
		}
	}
}

func TestIsSeparatorMappedToSpace(t *testing.T) {
	for idx, tst := range []struct {
		r    rune
		want bool
	}{
		{0x00A0, true}, // NBSP
		{0x2000, true}, // EN QUAD
		{0x2028, true}, // LINE SEPARATOR
		{0x3000, true}, // IDEOGRAPHIC SPACE
		{' ', false},
		{'a', false},
	} {
		if got := isSeparatorMappedToSpace(tst.r); got != tst.want {
			t.Errorf("%s[%d] failed for %U:\nwant: %v\ngot:  %v", t.Name(), idx, tst.r, tst.want, got)
		}
	}
}

func TestIsMappedToNothing(t *testing.T) {
	for idx, tst := range []struct {
		r    rune
		want bool
	}{
		{0x00AD, true}, // soft hyphen
		{0x200B, true}, // zero width space
		{0x200F, true}, // right-to-left mark
		{0xFEFF, true}, // zero width no-break space
		{0xFE00, true}, // variation selector
		{'a', false},
		{' ', false},
	} {
		if got := isMappedToNothing(tst.r); got != tst.want {
			t.Errorf("%s[%d] failed for %U:\nwant: %v\ngot:  %v", t.Name(), idx, tst.r, tst.want, got)
		}
	}
}

func TestIsSurrogate(t *testing.T) {
	if !isSurrogate(0xD800) {
		t.Errorf("%s failed: 0xD800 should be a surrogate", t.Name())
	}

	if !isSurrogate(0xDFFF) {
		t.Errorf("%s failed: 0xDFFF should be a surrogate", t.Name())
	}

	if isSurrogate('a') {
		t.Errorf("%s failed: 'a' should not be a surrogate", t.Name())
	}
}

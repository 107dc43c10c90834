package dirsyn

import "testing"

func TestMapString_Controls(t *testing.T) {
	got, err := mapString("a\tb\nc", CaseSensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "a b c"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}

	got, err = mapString("a\x00b", CaseSensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "ab"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestMapString_Separators(t *testing.T) {
	// U+3000 IDEOGRAPHIC SPACE folds to SPACE
	got, err := mapString("a b　c", CaseSensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "a b c"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestMapString_MappedToNothing(t *testing.T) {
	// U+00AD SOFT HYPHEN and U+200B ZERO WIDTH SPACE are dropped
	got, err := mapString("a­b​c", CaseSensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "abc"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestMapString_ASCIIFastPathMatchesGeneralPath(t *testing.T) {
	input := "Hello\tWorld"

	fast, err := mapString(input, CaseInsensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if !isASCIIString(input) {
		t.Fatalf("%s failed: expected %q to be ASCII", t.Name(), input)
	}

	var general []rune
	for _, r := range input {
		v := lookupVariant(r)
		switch v.kind {
		case mapDrop:
			continue
		case mapToSpace:
			general = append(general, ' ')
		default:
			general = append(general, foldRune(r)...)
		}
	}

	if fast != string(general) {
		t.Errorf("%s failed: ASCII fast path diverged from general path:\nfast:    %q\ngeneral: %q", t.Name(), fast, string(general))
	}
}

func TestMapString_CaseFold(t *testing.T) {
	for idx, tst := range []struct {
		in   string
		want string
	}{
		{string(rune(0x00DF)), "ss"},                                 // sharp s
		{string(rune(0xFB01)), "fi"},                                 // ligature fi
		{string(rune(0xFB03)), "ffi"},                                // ligature ffi
		{string(rune(0x1F80)), string([]rune{0x1F00, 0x03B9})},       // Greek iota subscript expansion
		{string(rune(0x0187)), string(rune(0x0188))},                 // preserved source fold discrepancy
		{"ABC", "abc"},
	} {
		got, err := mapString(tst.in, CaseInsensitive)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}

		if got != tst.want {
			t.Errorf("%s[%d] failed:\nwant: %q\ngot:  %q", t.Name(), idx, tst.want, got)
		}
	}
}

func TestMapString_CaseSensitivePreservesCase(t *testing.T) {
	got, err := mapString("ABC", CaseSensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "ABC"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestMapString_WidthFold(t *testing.T) {
	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A
	got, err := mapString(string(rune(0xFF21)), CaseInsensitive)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := "a"; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestIsASCIIString(t *testing.T) {
	if !isASCIIString("hello") {
		t.Errorf("%s failed: expected \"hello\" to be ASCII", t.Name())
	}

	if isASCIIString("héllo") {
		t.Errorf("%s failed: expected \"h\\u00E9llo\" to not be ASCII", t.Name())
	}
}

package dirsyn

import "testing"

func TestPrepare_concreteScenarios(t *testing.T) {
	for idx, tst := range []struct {
		in        string
		assertion AssertionType
		policy    CasePolicy
		want      string
	}{
		{``, AttributeValue, CaseSensitive, `  `},
		{`Hello`, AttributeValue, CaseSensitive, ` Hello `},
		{`Hello`, AttributeValue, CaseInsensitive, ` hello `},
		{`a  b`, AttributeValue, CaseInsensitive, ` a  b `},
		{`a   b`, AttributeValue, CaseInsensitive, ` a  b `},
		{`  a  `, SubstringAny, CaseSensitive, ` a `},
		{"\u00df", AttributeValue, CaseInsensitive, ` ss `},
		{"\u00ad\u200bx", AttributeValue, CaseSensitive, ` x `},
	} {
		got, err := Prepare(tst.in, tst.assertion, tst.policy)
		if err != nil {
			t.Fatalf("%s[%d] unexpected error for %q: %v", t.Name(), idx, tst.in, err)
		}
		if got != tst.want {
			t.Errorf("%s[%d] failed:\nwant: %q\ngot:  %q", t.Name(), idx, tst.want, got)
		}
	}
}

func TestPrepare_idempotent(t *testing.T) {
	inputs := []string{"Hello", "a  b", "\u00c1", "\u00df world", ""}

	for idx, in := range inputs {
		for _, a := range []AssertionType{AttributeValue, SubstringInitial, SubstringAny, SubstringFinal} {
			for _, c := range []CasePolicy{CaseSensitive, CaseInsensitive} {
				once, err := Prepare(in, a, c)
				if err != nil {
					t.Fatalf("%s[%d] first Prepare failed: %v", t.Name(), idx, err)
				}

				twice, err := Prepare(once, a, c)
				if err != nil {
					t.Fatalf("%s[%d] second Prepare failed: %v", t.Name(), idx, err)
				}

				if once != twice {
					t.Errorf("%s[%d] not idempotent under (%v,%v):\nonce:  %q\ntwice: %q", t.Name(), idx, a, c, once, twice)
				}
			}
		}
	}
}

func TestPrepare_noProhibitedCodePoints(t *testing.T) {
	inputs := []string{"Hello, World", "\u00c1\u00e9\u0130", "plain ascii 123"}

	for idx, in := range inputs {
		out, err := Prepare(in, AttributeValue, CaseInsensitive)
		if err != nil {
			t.Fatalf("%s[%d] unexpected error: %v", t.Name(), idx, err)
		}

		for _, r := range out {
			if isProhibited(r) {
				t.Errorf("%s[%d] prohibited code point %U survived preparation of %q", t.Name(), idx, r, in)
			}
		}
	}
}

func TestPrepare_whitespaceBound(t *testing.T) {
	for idx, in := range []string{"", "a", "hello world", "a  b  c  d"} {
		out, err := Prepare(in, AttributeValue, CaseSensitive)
		if err != nil {
			t.Fatalf("%s[%d] unexpected error: %v", t.Name(), idx, err)
		}

		n := len([]rune(in))
		if max := 2*n + 2; len([]rune(out)) > max {
			t.Errorf("%s[%d] output length %d exceeds bound 2n+2=%d for input %q", t.Name(), idx, len([]rune(out)), max, in)
		}
	}
}

func TestPrepare_normalizeNFKCEquivalence(t *testing.T) {
	composed, err := normalize("\u00c1") // LATIN CAPITAL LETTER A WITH ACUTE
	if err != nil {
		t.Fatalf("%s: normalize(precomposed) failed: %v", t.Name(), err)
	}

	decomposed, err := normalize("A\u0301") // A + COMBINING ACUTE ACCENT
	if err != nil {
		t.Fatalf("%s: normalize(decomposed) failed: %v", t.Name(), err)
	}

	if composed != decomposed {
		t.Errorf("%s: NFKC forms differ:\nprecomposed: %q\ndecomposed:  %q", t.Name(), composed, decomposed)
	}
}

func TestPrepare_invalidUTF8(t *testing.T) {
	bad := string([]byte{0xff, 0xfe, 0x00})

	if _, err := Prepare(bad, AttributeValue, CaseSensitive); err == nil {
		t.Errorf("%s: expected error for malformed UTF-8 input", t.Name())
	}
}

func TestPrepare_mapperDeterminism(t *testing.T) {
	in := "Hello, World! \u00e9\u00df"

	a, err := mapString(in, CaseInsensitive)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", t.Name(), err)
	}
	b, err := mapString(in, CaseInsensitive)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", t.Name(), err)
	}

	if a != b {
		t.Errorf("%s: mapString not deterministic:\na: %q\nb: %q", t.Name(), a, b)
	}
}

func TestPrepare_asciiFastPathMatchesGeneralPath(t *testing.T) {
	for idx, in := range []string{"Hello World", "MiXeD CaSe 123", "  spaced  out  "} {
		for _, policy := range []CasePolicy{CaseSensitive, CaseInsensitive} {
			fast := mapASCII(in, policy)

			general := make([]rune, 0, len(in))
			for _, r := range in {
				v := lookupVariant(r)
				switch v.kind {
				case mapDrop:
					continue
				case mapToSpace:
					general = append(general, ' ')
				case mapReplace:
					general = append(general, v.with...)
				default:
					if policy == CaseInsensitive {
						general = append(general, foldRune(r)...)
					} else {
						general = append(general, r)
					}
				}
			}

			if fast != string(general) {
				t.Errorf("%s[%d] ASCII fast path diverges from general path under %v:\nfast:    %q\ngeneral: %q", t.Name(), idx, policy, fast, string(general))
			}
		}
	}
}

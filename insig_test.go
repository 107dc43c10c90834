package dirsyn

import "testing"

func TestRunInsig_AttributeValue(t *testing.T) {
	for idx, tst := range []struct {
		in   string
		want string
	}{
		{``, `  `},
		{`Hello`, ` Hello `},
		{`a  b`, ` a  b `},
		{`a   b`, ` a  b `},
		{`  leading`, ` leading `},
		{`trailing  `, ` trailing `},
	} {
		if got := prepareAttributeValue(tst.in); got != tst.want {
			t.Errorf("%s[%d] failed:\nwant: %q\ngot:  %q", t.Name(), idx, tst.want, got)
		}
	}
}

func TestRunInsig_SubstringShapes(t *testing.T) {
	if got := prepareSubstringInitial(`abc`); got != ` abc` {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), ` abc`, got)
	}

	if got := prepareSubstringAny(`  a  `); got != ` a ` {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), ` a `, got)
	}

	if got := prepareSubstringFinal(`abc`); got != `abc ` {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), `abc `, got)
	}

	if got := prepareSubstringInitial(``); got != ` ` {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), ` `, got)
	}
}

func TestPrepareNumericString(t *testing.T) {
	if got := prepareNumericString(`48 129 647`); got != `48129647` {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), `48129647`, got)
	}

	if got := prepareNumericString(``); got != `` {
		t.Errorf("%s failed:\nwant empty string, got %q", t.Name(), got)
	}
}

func TestPrepareTelephoneNumber(t *testing.T) {
	got, err := prepareTelephoneNumber(`+ (33) 1-123--456  789`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if want := `+(33)1123456789`; got != want {
		t.Errorf("%s failed:\nwant: %q\ngot:  %q", t.Name(), want, got)
	}
}

func TestRunInsigForAssertion_codecov(t *testing.T) {
	for _, a := range []AssertionType{AttributeValue, SubstringInitial, SubstringAny, SubstringFinal} {
		_ = runInsigForAssertion(`x y`, a)
	}
}

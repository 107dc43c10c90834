package dirsyn

import (
	"testing"
	"time"
)

func TestParseCsn_roundTrip(t *testing.T) {
	for idx, s := range []string{
		`20100101000000.000000Z#000001#abc#000002`,
		`19991231235959.999999Z#ffffff#fff#ffffff`,
		`20100231000000.000000Z#000000#000#000000`, // day 31 in February: legacy-permissive
	} {
		csn, err := ParseCsn(s)
		if err != nil {
			t.Fatalf("%s[%d] failed to parse %q: %v", t.Name(), idx, s, err)
		}
		if got := csn.String(); got != s {
			t.Errorf("%s[%d] round-trip failed:\nwant: %q\ngot:  %q", t.Name(), idx, s, got)
		}
	}
}

func TestParseCsn_concreteScenario(t *testing.T) {
	csn, err := ParseCsn(`20100101000000.000000Z#000001#abc#000002`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if got := csn.changeCount; got != 1 {
		t.Errorf("%s: changeCount = %d, want 1", t.Name(), got)
	}
	if got := csn.replicaID; got != 0xabc {
		t.Errorf("%s: replicaID = %x, want abc", t.Name(), got)
	}
	if got := csn.operationNumber; got != 2 {
		t.Errorf("%s: operationNumber = %d, want 2", t.Name(), got)
	}
}

func TestIsValidCsn(t *testing.T) {
	good := `20100101000000.000000Z#000001#abc#000002`
	if !IsValidCsn(good) {
		t.Errorf("%s: expected %q to be valid", t.Name(), good)
	}

	for idx, pos := range []int{14, 21, 22, 29, 33} {
		bad := []byte(good)
		bad[pos] = '-'
		if IsValidCsn(string(bad)) {
			t.Errorf("%s[%d]: expected corrupted separator at %d to be invalid: %q", t.Name(), idx, pos, bad)
		}
	}
}

func TestParseCsn_errors(t *testing.T) {
	for idx, tst := range []struct {
		in   string
		kind string
	}{
		{``, `WrongLength`},
		{`20100101000000.000000Z#000001#abc#00000`, `WrongLength`},
		{`20100101000000X000000Z#000001#abc#000002`, `BadSeparator`},
		{`20100101000000.000000Z#00000g#abc#000002`, `BadHexField`},
		{`20100101000000.000000Z#000001#xyz#000002`, `BadHexField`},
		{`20100101000000.000000Z#000001#abc#00000z`, `BadHexField`},
		{`20109901000000.000000Z#000001#abc#000002`, `BadTimestamp`}, // month 99
	} {
		_, err := ParseCsn(tst.in)
		if err == nil {
			t.Fatalf("%s[%d] expected error for %q, got nil", t.Name(), idx, tst.in)
		}
		ic, ok := err.(*InvalidCsn)
		if !ok {
			t.Fatalf("%s[%d] expected *InvalidCsn, got %T", t.Name(), idx, err)
		}
		if ic.Reason != tst.kind {
			t.Errorf("%s[%d] reason = %q, want %q", t.Name(), idx, ic.Reason, tst.kind)
		}
	}
}

func TestCsn_Compare(t *testing.T) {
	a := NewCsn(1000, 1, 1, 1)
	b := NewCsn(1000, 1, 1, 2)
	c := NewCsn(1000, 1, 1, 2)
	d := NewCsn(2000, 0, 0, 0)

	if !a.Older(b) {
		t.Errorf("%s: expected a older than b", t.Name())
	}
	if !b.Newer(a) {
		t.Errorf("%s: expected b newer than a", t.Name())
	}
	if !b.Equal(c) {
		t.Errorf("%s: expected b equal to c", t.Name())
	}
	if !b.Older(d) {
		t.Errorf("%s: expected b older than d", t.Name())
	}
	if a.Compare(a) != 0 {
		t.Errorf("%s: expected a.Compare(a) == 0", t.Name())
	}
}

func TestCsn_IsZero(t *testing.T) {
	var z Csn
	if !z.IsZero() {
		t.Errorf("%s: expected zero-value Csn to report IsZero", t.Name())
	}

	nz := NewCsn(1, 0, 0, 0)
	if nz.IsZero() {
		t.Errorf("%s: expected non-zero Csn not to report IsZero", t.Name())
	}
}

func TestCsn_Bytes(t *testing.T) {
	csn, err := ParseCsn(`20100101000000.000000Z#000001#abc#000002`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if got := string(csn.Bytes()); got != csn.String() {
		t.Errorf("%s: Bytes() = %q, want %q", t.Name(), got, csn.String())
	}
}

func TestCsnSequence(t *testing.T) {
	var seq CsnSequence

	if _, ok := seq.Latest(); ok {
		t.Fatalf("%s: expected empty sequence Latest() to report !ok", t.Name())
	}
	if _, ok := seq.Oldest(); ok {
		t.Fatalf("%s: expected empty sequence Oldest() to report !ok", t.Name())
	}

	a := NewCsn(1000, 0, 0, 0)
	b := NewCsn(3000, 0, 0, 0)
	c := NewCsn(2000, 0, 0, 0)

	seq.Push(a)
	seq.Push(b)
	seq.Push(c)

	if got := seq.Len(); got != 3 {
		t.Errorf("%s: Len() = %d, want 3", t.Name(), got)
	}

	latest, ok := seq.Latest()
	if !ok || !latest.Equal(b) {
		t.Errorf("%s: Latest() = %v, want %v", t.Name(), latest, b)
	}

	oldest, ok := seq.Oldest()
	if !ok || !oldest.Equal(a) {
		t.Errorf("%s: Oldest() = %v, want %v", t.Name(), oldest, a)
	}

	seq.Sort()
	if seq.csns[0].Compare(seq.csns[1]) > 0 || seq.csns[1].Compare(seq.csns[2]) > 0 {
		t.Errorf("%s: Sort() did not produce ascending order: %v", t.Name(), seq.csns)
	}
}

func TestCsnGenerator_monotonic(t *testing.T) {
	gen := NewCsnGenerator(0x123)
	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	first := gen.Next(fixed)
	second := gen.Next(fixed)

	if !first.Older(second) {
		t.Fatalf("%s: expected strictly increasing CSNs, got %s then %s", t.Name(), first, second)
	}
	if first.replicaID != 0x123 || second.replicaID != 0x123 {
		t.Errorf("%s: expected replica ID 0x123 on both issued CSNs", t.Name())
	}
}

func TestCsnMatch(t *testing.T) {
	a := `20100101000000.000000Z#000001#abc#000002`
	b := `20100101000000.000000Z#000001#abc#000002`
	c := `20100101000000.000000Z#000001#abc#000003`

	res, err := csnMatch(a, b)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !res.True() {
		t.Errorf("%s: expected identical CSN text to match", t.Name())
	}

	res, err = csnMatch(a, c)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if res.True() {
		t.Errorf("%s: expected differing CSN text not to match", t.Name())
	}
}

func TestCsnOrderingMatch(t *testing.T) {
	lo := `20100101000000.000000Z#000001#abc#000001`
	hi := `20100101000000.000000Z#000001#abc#000002`

	res, err := csnOrderingMatch(lo, hi, GreaterOrEqual)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if res.True() {
		t.Errorf("%s: expected lo >= hi to be false", t.Name())
	}

	res, err = csnOrderingMatch(hi, lo, GreaterOrEqual)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !res.True() {
		t.Errorf("%s: expected hi >= lo to be true", t.Name())
	}
}

package dirsyn

/*
prepare.go implements the external adapter described in spec.md § 2:
the single prepare(value, assertion_type, case_policy) -> canonical
entry point wiring the Character Classifier (classify.go), Mapper
(map.go), Normalizer (this file), and Insignificant-Character Engine
(insig.go) into the pipeline RFC 4518 prescribes: transcode, map,
NFKC-normalize, prohibit-check, bidi-check, whitespace handling.
*/

import (
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

/*
CodePoint is a Unicode scalar value in the range U+0000..U+10FFFF,
excluding surrogates. [Prepare] rejects input that is not valid UTF-8,
which includes UTF-8-encoded surrogates, with a [PrepareError]; it does
not substitute U+FFFD for them.
*/
type CodePoint rune

/*
AssertionType selects which insignificant-character shape [Prepare]
applies in its final phase.
*/
type AssertionType uint8

const (
	AttributeValue AssertionType = iota
	SubstringInitial
	SubstringAny
	SubstringFinal
)

/*
CasePolicy selects whether [Prepare] preserves or folds case per RFC
3454 B.2.
*/
type CasePolicy uint8

const (
	CaseSensitive CasePolicy = iota
	CaseInsensitive
)

type prepareErrorKind uint8

const (
	invalidCharacterErr prepareErrorKind = iota
	invalidUTF8Err
	invalidBidiErr
)

/*
PrepareError is returned by [Prepare] when input cannot be reduced to
a canonical form: a prohibited code point survived mapping and NFKC,
input was not valid UTF-8, or the bidirectional-category check of
RFC 3454 § 6 failed.
*/
type PrepareError struct {
	kind     prepareErrorKind
	CodePoint rune
	err      error
}

func (e *PrepareError) Error() string {
	if e == nil || e.err == nil {
		return "prepare: invalid input"
	}
	return e.err.Error()
}

func newInvalidCharacterErr(r rune) error {
	return &PrepareError{
		kind:      invalidCharacterErr,
		CodePoint: r,
		err:       errorTxt("Prohibited code point in prepared value: " + string(r)),
	}
}

func newInvalidUTF8Err() error {
	return &PrepareError{kind: invalidUTF8Err, err: errorTxt("Input is not valid UTF-8")}
}

func newInvalidBidiErr() error {
	return &PrepareError{kind: invalidBidiErr, err: errorTxt("Bidirectional category violation")}
}

/*
Prepare implements RFC 4518's string preparation algorithm: transcode,
MAP, NFKC normalize, prohibit-check, bidi-check, and finally the
insignificant-character shape selected by assertion. It is the
function [caseIgnoreMatch], [caseExactMatch], their ordering and
substrings counterparts, and the IA5 variants route through instead of
comparing raw octets.
*/
func Prepare(input string, assertion AssertionType, policy CasePolicy) (string, error) {
	return prepare(input, assertion, policy)
}

func prepare(input string, assertion AssertionType, policy CasePolicy) (string, error) {
	if !utf8OK(input) {
		return "", newInvalidUTF8Err()
	}

	mapped, err := mapString(input, policy)
	if err != nil {
		return "", err
	}

	normalized, err := normalize(mapped)
	if err != nil {
		return "", err
	}

	if err = checkBidi(normalized); err != nil {
		return "", err
	}

	return runInsigForAssertion(normalized, assertion), nil
}

/*
normalize applies Unicode Normalization Form KC to mapped, then
verifies (per classify.go's isProhibited) that no prohibited code
point survived. NFKC idempotence is a property of norm.NFKC itself:
normalize(normalize(x)) == normalize(x) for all x this function
accepts.
*/
func normalize(mapped string) (string, error) {
	out := norm.NFKC.String(mapped)

	for _, r := range out {
		if isProhibited(r) {
			return "", newInvalidCharacterErr(r)
		}
	}

	return out, nil
}

/*
checkBidi implements the RFC 3454 § 6 bidirectional check: a string
containing any character of bidi category R or AL (RFC 3454's
RandALCat) must not also contain a category L character, and must
begin and end with an R/AL character. Strings with no R/AL characters
are exempt. bidi.LookupRune gives the same Class() values a RandAL/L
table lookup would.
*/
func checkBidi(s string) error {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var hasRandAL, hasL bool
	for _, r := range runes {
		switch bidiClass(r) {
		case bidi.R, bidi.AL:
			hasRandAL = true
		case bidi.L:
			hasL = true
		}
	}

	if !hasRandAL {
		return nil
	}

	if hasL {
		return newInvalidBidiErr()
	}

	first := bidiClass(runes[0])
	last := bidiClass(runes[len(runes)-1])
	if !(first == bidi.R || first == bidi.AL) || !(last == bidi.R || last == bidi.AL) {
		return newInvalidBidiErr()
	}

	return nil
}

func bidiClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

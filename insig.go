package dirsyn

/*
insig.go implements Component C4, the insignificant-character engine:
RFC 4518 § 2.6's whitespace normalization, applied after mapping and
NFKC (step 6). Four of the six shapes share one 5-state automaton;
NumericString and TelephoneNumber bypass it with straight filtering,
per RFC 4518 § 2.6.2/§ 2.6.1's own carve-outs for those two syntaxes.
*/

type insigState uint8

const (
	insigStart insigState = iota
	insigInitialSpaces
	insigChars
	insigSpaces
	insigSpaceChar
)

/*
runInsig drives a 5-state automaton after RFC 4518 § 2.6.1 (the
initial-character and character states are both insigChars) over s, collapsing any interior run of two or more SPACEs to a
canonical pair. A boundary run of leading or trailing SPACE, once
observed, always collapses to exactly one SPACE; forceLeading and
forceTrailing only decide whether that single boundary SPACE is
synthesized when the input has NO such run at all. emptyForm is
returned for empty or all-SPACE input. Output length is bounded by
2*len(s)+2 runes.
*/
func runInsig(s string, forceLeading, forceTrailing bool, emptyForm string) string {
	state := insigStart
	out := make([]rune, 0, 2*len(s)+2)

	for _, c := range s {
		isSpace := c == ' '

		switch state {
		case insigStart:
			if isSpace {
				state = insigInitialSpaces
			} else {
				if forceLeading {
					out = append(out, ' ')
				}
				out = append(out, c)
				state = insigChars
			}
		case insigInitialSpaces:
			if isSpace {
				// stay
			} else {
				out = append(out, ' ', c)
				state = insigChars
			}
		case insigChars:
			if isSpace {
				state = insigSpaces
			} else {
				out = append(out, c)
				state = insigChars
			}
		case insigSpaces:
			if isSpace {
				// stay
			} else {
				out = append(out, ' ', ' ', c)
				state = insigSpaceChar
			}
		case insigSpaceChar:
			if isSpace {
				state = insigSpaces
			} else {
				out = append(out, c)
				state = insigChars
			}
		}
	}

	switch state {
	case insigStart, insigInitialSpaces:
		return emptyForm
	case insigSpaces:
		// a trailing SPACE run was observed: it always collapses to one,
		// whether or not this shape forces a boundary SPACE
		out = append(out, ' ')
		return string(out)
	default:
		// insigChars or insigSpaceChar: the string ends on a non-space
		// character, so a trailing boundary SPACE is added only if forced
		if forceTrailing {
			out = append(out, ' ')
		}
		return string(out)
	}
}

/*
prepareAttributeValue implements the AttributeValue shape of RFC 4518
§ 2.6.1: a single leading and a single trailing SPACE bracket the
value; an all-SPACE or empty value maps to "  ".
*/
func prepareAttributeValue(s string) string {
	return runInsig(s, true, true, "  ")
}

/*
prepareSubstringInitial implements the SubstringInitial shape: a
leading SPACE only, no trailing SPACE.
*/
func prepareSubstringInitial(s string) string {
	return runInsig(s, true, false, " ")
}

/*
prepareSubstringAny implements the SubstringAny shape: no boundary
SPACE on either side.
*/
func prepareSubstringAny(s string) string {
	return runInsig(s, false, false, " ")
}

/*
prepareSubstringFinal implements the SubstringFinal shape: a trailing
SPACE only, no leading SPACE.
*/
func prepareSubstringFinal(s string) string {
	return runInsig(s, false, true, " ")
}

/*
prepareNumericString implements RFC 4518 § 2.6.2: all SPACE code
points are dropped outright, with no automaton involved.
*/
func prepareNumericString(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c != ' ' {
			out = append(out, c)
		}
	}

	return string(out)
}

// telephoneHyphens lists the hyphen-class code points RFC 4518
// § 2.6.1's telephone-number variant strips alongside SPACE: hyphen-
// minus, Armenian hyphen, hyphen, non-breaking hyphen, minus sign,
// small hyphen-minus, and fullwidth hyphen-minus.
var telephoneHyphens = map[rune]bool{
	0x002D: true,
	0x058A: true,
	0x2010: true,
	0x2011: true,
	0x2212: true,
	0xFE63: true,
	0xFF0D: true,
}

/*
prepareTelephoneNumber implements the TelephoneNumber shape: SPACE and
the seven hyphen-class code points are dropped outright, with no
automaton involved.
*/
func prepareTelephoneNumber(s string) (string, error) {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if c == ' ' || telephoneHyphens[c] {
			continue
		}
		out = append(out, c)
	}

	return string(out), nil
}

func runInsigForAssertion(s string, assertion AssertionType) string {
	switch assertion {
	case SubstringInitial:
		return prepareSubstringInitial(s)
	case SubstringAny:
		return prepareSubstringAny(s)
	case SubstringFinal:
		return prepareSubstringFinal(s)
	default:
		return prepareAttributeValue(s)
	}
}

package dirsyn

/*
map.go implements Component C2, the RFC 4518 § 2.2 MAP phase: control
character deletion, separator-to-SPACE folding, compatibility deletions,
and (under CaseInsensitive) the RFC 3454 B.2 case-fold table.

The general lookup is a two-stage table keyed by a code point's high
bits above the low byte ("page", cp>>8), each page a fixed 256-entry
array of [mapVariant]. init() builds only the ASCII fast-path page; the
other pages are built lazily on first lookup under mapPagesMu.
*/

import (
	"sync"
	"unicode"

	"golang.org/x/text/width"
)

type mapKind uint8

const (
	mapKeep mapKind = iota
	mapDrop
	mapToSpace
	mapReplace
)

type mapVariant struct {
	kind mapKind
	with []rune // populated only for mapReplace
}

var (
	keepVariant    = mapVariant{kind: mapKeep}
	dropVariant    = mapVariant{kind: mapDrop}
	toSpaceVariant = mapVariant{kind: mapToSpace}
)

// asciiPage is the ASCII fast path: branch-per-case dispatch for
// U+0000..U+007F, case-sensitive form. Under CaseInsensitive, mapASCII
// lowercases U+0041..U+005A directly rather than consulting foldB2.
var asciiPage [128]mapVariant

// mapPages holds the general (non-ASCII) two-stage lookup, keyed by
// cp>>8. Populated lazily per page on first lookup; RFC 4518's
// mapped/removed/separator classes are derived from classify.go's
// range tables so the two files cannot drift apart. mapPagesMu guards
// concurrent population so concurrent preparers never race on the map
// or observe a partially-built page.
var (
	mapPagesMu sync.RWMutex
	mapPages   = map[uint16]*[256]mapVariant{}
)

// foldB2 is the RFC 3454 B.2 case-fold table, consulted only under
// CaseInsensitive. Multi-point expansions are stored in emission
// order. This is not the full multi-thousand-entry RFC 3454 B.2
// enumeration; it covers the classes spec.md's concrete scenarios and
// RFC 4518's own worked examples exercise (ASCII, German sharp s,
// ligatures, Greek iota subscript, and the preserved source fold
// discrepancy), with ordinary Unicode simple case folding as the
// fallback for any other letter via foldRune.
var (
	// foldB2Mu guards foldB2 against concurrent read/write: foldRune
	// both reads the table and lazily memoizes fallback folds into it,
	// so plain map access would race under concurrent Prepare calls.
	foldB2Mu sync.RWMutex
	foldB2   = map[rune][]rune{
		0x00DF: {0x0073, 0x0073},         // LATIN SMALL LETTER SHARP S -> "ss"
		0xFB00: {0x0066, 0x0066},         // LATIN SMALL LIGATURE FF -> "ff"
		0xFB01: {0x0066, 0x0069},         // LATIN SMALL LIGATURE FI -> "fi"
		0xFB02: {0x0066, 0x006C},         // LATIN SMALL LIGATURE FL -> "fl"
		0xFB03: {0x0066, 0x0066, 0x0069}, // LATIN SMALL LIGATURE FFI -> "ffi"
		0xFB04: {0x0066, 0x0066, 0x006C}, // LATIN SMALL LIGATURE FFL -> "ffl"
		0xFB05: {0x0073, 0x0074},         // LATIN SMALL LIGATURE LONG S T -> "st"
		0xFB06: {0x0073, 0x0074},         // LATIN SMALL LIGATURE ST -> "st"

		// Greek iota subscript expansions (RFC 3454 B.2's Greek Extended
		// block): folded vowel followed by iota.
		0x1F80: {0x1F00, 0x03B9},
		0x1F81: {0x1F01, 0x03B9},
		0x1F82: {0x1F02, 0x03B9},
		0x1F83: {0x1F03, 0x03B9},
		0x1F88: {0x1F00, 0x03B9},
		0x1F89: {0x1F01, 0x03B9},

		// Source fold table discrepancy (spec.md § 9): the legacy table
		// folds 0x0187 to 0x0188 despite labeling the entry "U+0188";
		// preserved verbatim rather than "corrected" to 0x0188's own
		// lowercase per current Unicode data.
		0x0187: {0x0188},
	}
)

func init() {
	// C0 controls removed, except the five horizontal/vertical
	// whitespace controls U+0009..U+000D, which fold to SPACE.
	for cp := rune(0x00); cp <= 0x08; cp++ {
		asciiPage[cp] = dropVariant
	}
	for cp := rune(0x09); cp <= 0x0D; cp++ {
		asciiPage[cp] = toSpaceVariant
	}
	for cp := rune(0x0E); cp <= 0x1F; cp++ {
		asciiPage[cp] = dropVariant
	}
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		asciiPage[cp] = keepVariant
	}
	asciiPage[0x7F] = dropVariant
}

func mapPage(hi uint16) *[256]mapVariant {
	mapPagesMu.RLock()
	p, ok := mapPages[hi]
	mapPagesMu.RUnlock()
	if ok {
		return p
	}

	var page [256]mapVariant
	base := rune(hi) << 8
	for lo := 0; lo < 256; lo++ {
		cp := base + rune(lo)
		switch {
		case cp == 0x85:
			page[lo] = toSpaceVariant
		case cp >= 0x7F && cp <= 0x84:
			page[lo] = dropVariant
		case cp >= 0x86 && cp <= 0x9F:
			page[lo] = dropVariant
		case isSeparatorMappedToSpace(cp):
			page[lo] = toSpaceVariant
		case isMappedToNothing(cp):
			page[lo] = dropVariant
		case isSurrogate(cp):
			page[lo] = mapVariant{kind: mapReplace, with: []rune{prohibitedOutput}}
		default:
			page[lo] = keepVariant
		}
	}

	mapPagesMu.Lock()
	mapPages[hi] = &page
	mapPagesMu.Unlock()
	return &page
}

func lookupVariant(cp rune) mapVariant {
	if cp < 0x80 {
		return asciiPage[cp]
	}

	hi := uint16(cp >> 8)
	lo := cp & 0xFF
	return mapPage(hi)[lo]
}

/*
foldRune returns the RFC 3454 B.2 case-fold expansion for r, preferring
the explicit foldB2 table and falling back to unicode.ToLower for any
letter foldB2 does not enumerate, so the general path folds toward
lowercase exactly as the ASCII fast path and RFC 3454 B.2 itself do.
Fold results are cached back into foldB2 so repeated lookups for the
same rune are O(1) map hits.
*/
func foldRune(r rune) []rune {
	foldB2Mu.RLock()
	exp, ok := foldB2[r]
	foldB2Mu.RUnlock()
	if ok {
		return exp
	}

	if widthFolded, ok := widthFold(r); ok {
		foldB2Mu.Lock()
		foldB2[r] = widthFolded
		foldB2Mu.Unlock()
		return widthFolded
	}

	if lower := unicode.ToLower(r); lower != r {
		exp := []rune{lower}
		foldB2Mu.Lock()
		foldB2[r] = exp
		foldB2Mu.Unlock()
		return exp
	}

	return []rune{r}
}

// widthFold maps RFC 3454 B.2's fullwidth/halfwidth Latin entries
// (U+FF21..U+FF3A etc.) to their narrow lowercase equivalents via
// golang.org/x/text/width, mirroring how a precis profile would fold
// the same code points with width.Fold.
func widthFold(r rune) ([]rune, bool) {
	p := width.LookupRune(r)
	if p.Kind() != width.Fullwidth && p.Kind() != width.Halfwidth {
		return nil, false
	}

	folded := width.Fold.String(string(r))
	if folded == "" {
		return nil, false
	}

	out := []rune(folded)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}

	return out, true
}

/*
mapString implements the Mapper's contract: map(input, case_policy) ->
string. The ASCII fast path is taken when every byte of input is below
U+0080; otherwise the general per-rune path consults the two-stage
lookup plus, under CaseInsensitive, the B.2 fold table.
*/
func mapString(s string, policy CasePolicy) (string, error) {
	if isASCIIString(s) {
		return mapASCII(s, policy), nil
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		v := lookupVariant(r)
		switch v.kind {
		case mapDrop:
			continue
		case mapToSpace:
			out = append(out, ' ')
		case mapReplace:
			out = append(out, v.with...)
		default:
			if policy == CaseInsensitive {
				out = append(out, foldRune(r)...)
			} else {
				out = append(out, r)
			}
		}
	}

	return string(out), nil
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func mapASCII(s string, policy CasePolicy) string {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		v := asciiPage[c]
		switch v.kind {
		case mapDrop:
			continue
		case mapToSpace:
			out = append(out, ' ')
		default:
			if policy == CaseInsensitive && c >= 'A' && c <= 'Z' {
				out = append(out, c+('a'-'A'))
			} else {
				out = append(out, c)
			}
		}
	}

	return string(out)
}

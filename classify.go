package dirsyn

/*
classify.go implements the RFC 3454 character classification tables
consulted by the Mapper (map.go) and Normalizer (prepare.go) phases of
the RFC 4518 preparation pipeline.
*/

import "unicode"

/*
prohibitedOutput is returned in place of any code point that is
prohibited outright (as opposed to mapped to SPACE or deleted) once it
survives mapping and NFKC.
*/
const prohibitedOutput rune = 0xFFFD

// rfc3454A1Categories are the general-category supertables a code
// point must belong to in order to be *assigned*; RFC 3454 A.1 is
// "unassigned code points", i.e. everything outside their union
// (Unicode category Cn, which the stdlib unicode package does not
// expose as a table of its own since it is defined as a complement
// rather than an enumerated set). Checking unassignment this way
// tracks whatever Unicode version the running Go toolchain embeds,
// rather than a hand-picked, version-pinned subset of ranges.
var rfc3454A1Categories = []*unicode.RangeTable{
	unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C,
}

/*
isUnassigned returns a Boolean value indicative of r being unassigned
in Unicode (category Cn), i.e. RFC 3454 A.1 membership.
*/
func isUnassigned(r rune) bool {
	if r < 0 || r > unicode.MaxRune {
		return false
	}
	return !ucIs1Of(rfc3454A1Categories, r)
}

var (
	// RFC 3454 C.3: private use area.
	rfc3454C3 = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0xE000, 0xF8FF, 1},
		},
		R32: []unicode.Range32{
			{0xF0000, 0xFFFFD, 1},
			{0x100000, 0x10FFFD, 1},
		},
	}

	// RFC 3454 C.4: non-character code points.
	rfc3454C4 = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0xFDD0, 0xFDEF, 1},
			{0xFFFE, 0xFFFF, 1},
		},
		R32: []unicode.Range32{
			{0x1FFFE, 0x1FFFF, 1},
			{0x2FFFE, 0x2FFFF, 1},
			{0x3FFFE, 0x3FFFF, 1},
			{0x4FFFE, 0x4FFFF, 1},
			{0x5FFFE, 0x5FFFF, 1},
			{0x6FFFE, 0x6FFFF, 1},
			{0x7FFFE, 0x7FFFF, 1},
			{0x8FFFE, 0x8FFFF, 1},
			{0x9FFFE, 0x9FFFF, 1},
			{0xAFFFE, 0xAFFFF, 1},
			{0xBFFFE, 0xBFFFF, 1},
			{0xCFFFE, 0xCFFFF, 1},
			{0xDFFFE, 0xDFFFF, 1},
			{0xEFFFE, 0xEFFFF, 1},
			{0xFFFFE, 0xFFFFF, 1},
			{0x10FFFE, 0x10FFFF, 1},
		},
	}

	// RFC 3454 C.5: surrogate code points. Surrogates never survive
	// to this stage as themselves (Prepare rejects input that
	// fails utf8OK, and encoded surrogates are not valid UTF-8);
	// the table is retained so
	// isProhibited is correct if ever consulted directly.
	rfc3454C5 = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0xD800, 0xDFFF, 1},
		},
	}

	// RFC 3454 C.8: characters that change display properties, or
	// are deprecated, bidi controls.
	rfc3454C8 = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0340, 0x0341, 1},
			{0x200E, 0x200F, 1},
			{0x202A, 0x202E, 1},
			{0x206A, 0x206F, 1},
		},
	}

	// prohibitedRanges is the union consulted by isProhibited, less
	// RFC 3454 A.1 which isUnassigned checks separately (see above).
	prohibitedRanges = []*unicode.RangeTable{
		rfc3454C3,
		rfc3454C4,
		rfc3454C5,
		rfc3454C8,
	}

	// separatorToSpaceRanges implements RFC 4518 § 2.2's Zs/Zl/Zp
	// separator class, mapped to a single SPACE by the Mapper.
	separatorToSpaceRanges = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x00A0, 0x00A0, 1},
			{0x1680, 0x1680, 1},
			{0x2000, 0x200A, 1},
			{0x2028, 0x2029, 1},
			{0x202F, 0x202F, 1},
			{0x205F, 0x205F, 1},
			{0x3000, 0x3000, 1},
		},
	}

	// mappedToNothingRanges implements RFC 4518 § 2.2's "commonly
	// mapped to nothing" class: soft hyphen, joiners, variation
	// selectors, deprecated format controls and their ilk.
	mappedToNothingRanges = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x00AD, 0x00AD, 1},
			{0x034F, 0x034F, 1},
			{0x06DD, 0x06DD, 1},
			{0x070F, 0x070F, 1},
			{0x1806, 0x1806, 1},
			{0x180B, 0x180E, 1},
			{0x200B, 0x200F, 1},
			{0x202A, 0x202E, 1},
			{0x2060, 0x2063, 1},
			{0x206A, 0x206F, 1},
			{0xFE00, 0xFE0F, 1},
			{0xFEFF, 0xFEFF, 1},
			{0xFFF9, 0xFFFC, 1},
		},
	}
)

/*
isProhibited returns a Boolean value indicative of r being a member of
the RFC 3454 A.1/C.3/C.4/C.5/C.8 union, or the replacement character
U+FFFD.
*/
func isProhibited(r rune) bool {
	return r == prohibitedOutput || isUnassigned(r) || ucIs1Of(prohibitedRanges, r)
}

/*
isSeparatorMappedToSpace returns a Boolean value indicative of r
belonging to the Zs/Zl/Zp class RFC 4518 § 2.2 maps to a single SPACE.
*/
func isSeparatorMappedToSpace(r rune) bool {
	return ucIs(separatorToSpaceRanges, r)
}

/*
isMappedToNothing returns a Boolean value indicative of r belonging to
the "commonly mapped to nothing" class RFC 4518 § 2.2 deletes outright.
*/
func isMappedToNothing(r rune) bool {
	return ucIs(mappedToNothingRanges, r)
}

/*
isSurrogate returns a Boolean value indicative of r falling within the
UTF-16 surrogate range U+D800..U+DFFF.
*/
func isSurrogate(r rune) bool {
	return ucIs(rfc3454C5, r)
}

func ucIs1Of(tabs []*unicode.RangeTable, r rune) bool {
	return uc1Of(tabs, r)
}

package dirsyn

/*
mrx.go implements the remaining matching rules referenced by the
[matchingRuleAssertions] table that have no syntax-specific home file
of their own.
*/

/*
telephoneNumberMatch implements [§ 4.2.28 of RFC 4517].

OID: 2.5.13.20

[§ 4.2.28 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.28
*/
func telephoneNumberMatch(a, b any) (result Boolean, err error) {
	var str1, str2 string
	if str1, str2, err = prepareTelephoneNumberAssertion(a, b); err == nil {
		result.Set(streq(str1, str2))
	}

	return
}

/*
telephoneNumberSubstringsMatch implements [§ 4.2.29 of RFC 4517].

OID: 2.5.13.21

[§ 4.2.29 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.29
*/
func telephoneNumberSubstringsMatch(a, b any) (result Boolean, err error) {
	var str1, str2 string
	if str1, str2, err = prepareTelephoneNumberSubstringsAssertion(a, b); err == nil {
		result, err = substringsMatch(str1, str2)
	}

	return
}

/*
prepareTelephoneNumberAssertion prepares both operands of an equality
match through the full [TelephoneNumber] syntax (leading PLUS and
allowed-character checks) before running the insignificant-character
filter, since an equality match compares two complete values.
*/
func prepareTelephoneNumberAssertion(a, b any) (str1, str2 string, err error) {
	var A, B TelephoneNumber
	if A, err = marshalTelephoneNumber(a); err != nil {
		return
	}
	if B, err = marshalTelephoneNumber(b); err != nil {
		return
	}

	str1, err = prepareTelephoneNumber(string(A))
	if err != nil {
		return
	}
	str2, err = prepareTelephoneNumber(string(B))

	return
}

/*
prepareTelephoneNumberSubstringsAssertion prepares the operands of a
substrings match. Unlike an equality match, the assertion operand (b)
carries literal ASTERISK wildcards and is not itself a complete
[TelephoneNumber] value, so it cannot be run through marshalTelephoneNumber's
syntax check; both operands instead go through the same loose
assertString extraction numericStringSubstringsMatch uses, followed by
the telephone-number insignificant-character filter.
*/
func prepareTelephoneNumberSubstringsAssertion(a, b any) (str1, str2 string, err error) {
	if str1, err = assertString(a, 0, "telephoneNumber"); err != nil {
		return
	}
	if str2, err = assertString(b, 0, "telephoneNumber"); err != nil {
		return
	}

	str1, err = prepareTelephoneNumber(str1)
	if err != nil {
		return
	}
	str2, err = prepareTelephoneNumber(str2)

	return
}

func marshalTelephoneNumber(x any) (tn TelephoneNumber, err error) {
	switch tv := x.(type) {
	case TelephoneNumber:
		tn = tv
	case string:
		var r RFC4517
		tn, err = r.TelephoneNumber(tv)
	default:
		err = errorBadType("Telephone Number")
	}

	return
}

/*
distinguishedNameMatch implements [§ 4.2.15 of RFC 4517].

OID: 2.5.13.1

[§ 4.2.15 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.15
*/
func distinguishedNameMatch(a, b any) (result Boolean, err error) {
	var A, B *DistinguishedName
	if A, err = marshalDistinguishedName(a); err != nil {
		return
	}
	if B, err = marshalDistinguishedName(b); err != nil {
		return
	}

	result.Set(A.Equal(B))

	return
}

func marshalDistinguishedName(x any) (dn *DistinguishedName, err error) {
	switch tv := x.(type) {
	case *DistinguishedName:
		dn = tv
	case string:
		var r RFC4514
		dn, err = r.DistinguishedName(tv)
	default:
		err = errorBadType("DN")
	}

	return
}

/*
objectIdentifierMatch implements [§ 4.2.26 of RFC 4517].

OID: 2.5.13.0

[§ 4.2.26 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.26
*/
func objectIdentifierMatch(a, b any) (result Boolean, err error) {
	var A, B NumericOID
	if A, err = marshalNumericOID(a); err != nil {
		return
	}
	if B, err = marshalNumericOID(b); err != nil {
		return
	}

	result.Set(streq(A.String(), B.String()))

	return
}

func marshalNumericOID(x any) (noid NumericOID, err error) {
	switch tv := x.(type) {
	case NumericOID:
		noid = tv
	default:
		var r RFC4512
		noid, err = r.NumericOID(tv)
	}

	return
}

/*
objectIdentifierFirstComponentMatch implements [§ 4.2.27 of RFC 4517].

OID: 2.5.13.30

[§ 4.2.27 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.27
*/
func objectIdentifierFirstComponentMatch(a, b any) (result Boolean, err error) {
	first := assertFirstStructField(a)
	if first == nil {
		result.Set(false)
		return
	}

	return objectIdentifierMatch(first, b)
}

/*
generalizedTimeMatch implements [§ 4.2.16 of RFC 4517].

OID: 2.5.13.27

[§ 4.2.16 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.16
*/
func generalizedTimeMatch(a, b any) (result Boolean, err error) {
	var A, B GeneralizedTime
	if A, err = marshalGeneralizedTime(a); err != nil {
		return
	}
	if B, err = marshalGeneralizedTime(b); err != nil {
		return
	}

	result.Set(streq(A.String(), B.String()))

	return
}

/*
generalizedTimeOrderingMatch implements [§ 4.2.17 of RFC 4517].

OID: 2.5.13.28

[§ 4.2.17 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.17
*/
func generalizedTimeOrderingMatch(a, b any, operator byte) (result Boolean, err error) {
	var A, B GeneralizedTime
	if A, err = marshalGeneralizedTime(a); err != nil {
		return
	}
	if B, err = marshalGeneralizedTime(b); err != nil {
		return
	}

	if operator == GreaterOrEqual {
		result.Set(A.String() >= B.String())
	} else {
		result.Set(A.String() <= B.String())
	}

	return
}

func marshalGeneralizedTime(x any) (gt GeneralizedTime, err error) {
	switch tv := x.(type) {
	case GeneralizedTime:
		gt = tv
	default:
		var r RFC4517
		gt, err = r.GeneralizedTime(tv)
	}

	return
}

/*
integerMatch implements [§ 4.2.19 of RFC 4517].

OID: 2.5.13.14

[§ 4.2.19 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.19
*/
func integerMatch(a, b any) (result Boolean, err error) {
	var A, B int64
	if A, err = marshalInteger(a); err != nil {
		return
	}
	if B, err = marshalInteger(b); err != nil {
		return
	}

	result.Set(A == B)

	return
}

/*
integerOrderingMatch implements [§ 4.2.20 of RFC 4517].

OID: 2.5.13.15

[§ 4.2.20 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.20
*/
func integerOrderingMatch(a, b any, operator byte) (result Boolean, err error) {
	var A, B int64
	if A, err = marshalInteger(a); err != nil {
		return
	}
	if B, err = marshalInteger(b); err != nil {
		return
	}

	if operator == GreaterOrEqual {
		result.Set(A >= B)
	} else {
		result.Set(A <= B)
	}

	return
}

/*
integerFirstComponentMatch implements [§ 4.2.21 of RFC 4517].

OID: 2.5.13.29

[§ 4.2.21 of RFC 4517]: https://datatracker.ietf.org/doc/html/rfc4517#section-4.2.21
*/
func integerFirstComponentMatch(a, b any) (result Boolean, err error) {
	first := assertFirstStructField(a)
	if first == nil {
		result.Set(false)
		return
	}

	return integerMatch(first, b)
}

func marshalInteger(x any) (i int64, err error) {
	switch tv := x.(type) {
	case int, int8, int16, int32, int64:
		i, err = castInt64(tv)
	case uint, uint8, uint16, uint32, uint64:
		var u uint64
		u, err = castUint64(tv)
		i = int64(u)
	case string:
		var r RFC4517
		if err = r.Integer(tv); err != nil {
			return
		}
		var n int
		n, err = atoi(tv)
		i = int64(n)
	default:
		err = errorBadType("Integer")
	}

	return
}

package dirsyn

import (
	"testing"
)

func TestSrc_codecov(t *testing.T) {
	var r0 X680
	var r1 X501
	var r2 X520
	var r3 RFC2307
	var r4 RFC3672
	var r5 RFC4511
	var r6 RFC4512
	var r7 RFC4514
	var r8 RFC4515
	var r9 RFC4516
	var r10 RFC4517
	var r11 RFC4523
	var r12 RFC4530

	r0.URL()
	r1.URL()
	r2.URL()
	r3.URL()
	r4.URL()
	r5.URL()
	r6.URL()
	r7.URL()
	r8.URL()
	_ = r9
	r10.URL()
	r11.URL()
	r12.URL()

	castInt64(int(1))
	castUint64(uint(1))
	isXString('a')
	valueIsDNAttrs(`member:dn:`)
	dnAttrSplit(`member:dn:cn=Bob`)
	dnAttrSplit(`member:DN:cn=Bob`)
}

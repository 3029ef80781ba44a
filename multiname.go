// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// MultinameKind is the wire tag byte distinguishing the eleven Multiname
// variants.
type MultinameKind byte

// Multiname wire tags.
const (
	MNKindQName       MultinameKind = 0x07
	MNKindQNameA      MultinameKind = 0x0D
	MNKindRTQName     MultinameKind = 0x0F
	MNKindRTQNameA    MultinameKind = 0x10
	MNKindRTQNameL    MultinameKind = 0x11
	MNKindRTQNameLA   MultinameKind = 0x12
	MNKindMultiname   MultinameKind = 0x09
	MNKindMultinameA  MultinameKind = 0x0E
	MNKindMultinameL  MultinameKind = 0x1B
	MNKindMultinameLA MultinameKind = 0x1C
	MNKindTypename    MultinameKind = 0x1D
)

// Multiname is a tagged union over the eleven constant-pool multiname
// shapes. Only the fields relevant to Kind are populated; the rest carry
// their zero value.
type Multiname struct {
	Kind MultinameKind

	// QName / QNameA
	NsIdx   uint32
	NameIdx uint32

	// RTQName / RTQNameA
	// (reuses NameIdx)

	// Multiname / MultinameA
	NsSetIdx uint32
	// (reuses NameIdx)

	// MultinameL / MultinameLA
	// (reuses NsSetIdx)

	// Typename
	QNameIdx uint32
	TypeIdxs []uint32
}

func readMultiname(r *StreamReader) (Multiname, error) {
	kindByte, err := r.ReadU8()
	if err != nil {
		return Multiname{}, err
	}
	kind := MultinameKind(kindByte)
	mn := Multiname{Kind: kind}
	switch kind {
	case MNKindQName, MNKindQNameA:
		if mn.NsIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
		if mn.NameIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
	case MNKindRTQName, MNKindRTQNameA:
		if mn.NameIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
	case MNKindRTQNameL, MNKindRTQNameLA:
		// no payload
	case MNKindMultiname, MNKindMultinameA:
		if mn.NameIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
		if mn.NsSetIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
	case MNKindMultinameL, MNKindMultinameLA:
		if mn.NsSetIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
	case MNKindTypename:
		if mn.QNameIdx, err = r.ReadU30(); err != nil {
			return Multiname{}, err
		}
		count, err := r.ReadU30()
		if err != nil {
			return Multiname{}, err
		}
		mn.TypeIdxs = make([]uint32, count)
		for i := range mn.TypeIdxs {
			if mn.TypeIdxs[i], err = r.ReadU30(); err != nil {
				return Multiname{}, err
			}
		}
	default:
		return Multiname{}, &InvalidMultinameKindError{Kind: kindByte}
	}
	return mn, nil
}

func writeMultiname(w *StreamWriter, mn Multiname) {
	w.WriteU8(byte(mn.Kind))
	switch mn.Kind {
	case MNKindQName, MNKindQNameA:
		w.WriteU30(mn.NsIdx)
		w.WriteU30(mn.NameIdx)
	case MNKindRTQName, MNKindRTQNameA:
		w.WriteU30(mn.NameIdx)
	case MNKindRTQNameL, MNKindRTQNameLA:
		// no payload
	case MNKindMultiname, MNKindMultinameA:
		w.WriteU30(mn.NameIdx)
		w.WriteU30(mn.NsSetIdx)
	case MNKindMultinameL, MNKindMultinameLA:
		w.WriteU30(mn.NsSetIdx)
	case MNKindTypename:
		w.WriteU30(mn.QNameIdx)
		w.WriteU30(uint32(len(mn.TypeIdxs)))
		for _, idx := range mn.TypeIdxs {
			w.WriteU30(idx)
		}
	}
}

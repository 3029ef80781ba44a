// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// TraitAttr carries the high nibble of a trait's kind byte.
type TraitAttr uint8

// Trait attribute bits.
const (
	TraitFinal     TraitAttr = 0x01
	TraitOverride  TraitAttr = 0x02
	TraitMetadata  TraitAttr = 0x04
)

// IsFinal reports whether the trait may not be overridden.
func (a TraitAttr) IsFinal() bool { return a&TraitFinal != 0 }

// IsOverride reports whether the trait overrides a base-class trait.
func (a TraitAttr) IsOverride() bool { return a&TraitOverride != 0 }

// HasMetadata reports whether a trailing metadata-index list follows.
func (a TraitAttr) HasMetadata() bool { return a&TraitMetadata != 0 }

// TraitKind identifies which of the seven Trait payload shapes is present.
type TraitKind byte

// Trait kinds.
const (
	TraitKindSlot     TraitKind = 0
	TraitKindMethod   TraitKind = 1
	TraitKindGetter   TraitKind = 2
	TraitKindSetter   TraitKind = 3
	TraitKindClass    TraitKind = 4
	TraitKindFunction TraitKind = 5
	TraitKindConst    TraitKind = 6
)

// Trait is a single property declaration. Slot/Const traits use
// SlotID/TypeIdx/ValueIdx/ValueKind; Method/Getter/Setter/Class/Function
// traits use SlotID/Index to reference the appropriate table.
type Trait struct {
	NameIdx   uint32
	Attr      TraitAttr
	Kind      TraitKind
	SlotID    uint32
	TypeIdx   uint32
	ValueIdx  uint32
	ValueKind byte
	Index     uint32
	Metadata  []uint32
}

func readTrait(r *StreamReader) (Trait, error) {
	var t Trait
	var err error
	if t.NameIdx, err = r.ReadU30(); err != nil {
		return Trait{}, err
	}
	kindByte, err := r.ReadU8()
	if err != nil {
		return Trait{}, err
	}
	t.Attr = TraitAttr(kindByte >> 4)
	t.Kind = TraitKind(kindByte & 0x0F)

	switch t.Kind {
	case TraitKindSlot, TraitKindConst:
		if t.SlotID, err = r.ReadU30(); err != nil {
			return Trait{}, err
		}
		if t.TypeIdx, err = r.ReadU30(); err != nil {
			return Trait{}, err
		}
		if t.ValueIdx, err = r.ReadU30(); err != nil {
			return Trait{}, err
		}
		if t.ValueIdx != 0 {
			if t.ValueKind, err = r.ReadU8(); err != nil {
				return Trait{}, err
			}
		}
	case TraitKindMethod, TraitKindGetter, TraitKindSetter, TraitKindClass, TraitKindFunction:
		if t.SlotID, err = r.ReadU30(); err != nil {
			return Trait{}, err
		}
		if t.Index, err = r.ReadU30(); err != nil {
			return Trait{}, err
		}
	default:
		return Trait{}, &InvalidTraitKindError{Kind: byte(t.Kind)}
	}

	if t.Attr.HasMetadata() {
		count, err := r.ReadU30()
		if err != nil {
			return Trait{}, err
		}
		t.Metadata = make([]uint32, count)
		for i := range t.Metadata {
			if t.Metadata[i], err = r.ReadU30(); err != nil {
				return Trait{}, err
			}
		}
	}
	return t, nil
}

func writeTrait(w *StreamWriter, t Trait) {
	attr := t.Attr
	if len(t.Metadata) != 0 {
		attr |= TraitMetadata
	} else {
		attr &^= TraitMetadata
	}

	w.WriteU30(t.NameIdx)
	w.WriteU8(byte(t.Kind) | byte(attr)<<4)

	switch t.Kind {
	case TraitKindSlot, TraitKindConst:
		w.WriteU30(t.SlotID)
		w.WriteU30(t.TypeIdx)
		w.WriteU30(t.ValueIdx)
		if t.ValueIdx != 0 {
			w.WriteU8(t.ValueKind)
		}
	case TraitKindMethod, TraitKindGetter, TraitKindSetter, TraitKindClass, TraitKindFunction:
		w.WriteU30(t.SlotID)
		w.WriteU30(t.Index)
	}

	if len(t.Metadata) != 0 {
		w.WriteU30(uint32(len(t.Metadata)))
		for _, idx := range t.Metadata {
			w.WriteU30(idx)
		}
	}
}

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// ConstantPool holds the seven deduplicated constant tables of an ABC file.
// Every table is 0-indexed with slot 0 reserved as a sentinel carrying a
// per-table default value; the sentinel is never present on the wire and is
// synthesized by the reader.
type ConstantPool struct {
	Integers   []int32
	UIntegers  []uint32
	Doubles    []float64
	Strings    []string
	Namespaces []Namespace
	NsSets     []NamespaceSet
	Multinames []Multiname
}

// NewConstantPool returns a pool containing only the seven sentinel slots.
func NewConstantPool() *ConstantPool {
	return &ConstantPool{
		Integers:   []int32{0},
		UIntegers:  []uint32{0},
		Doubles:    []float64{0},
		Strings:    []string{""},
		Namespaces: []Namespace{{Kind: NSKindStar, NameIdx: 0}},
		NsSets:     []NamespaceSet{{}},
		Multinames: []Multiname{{Kind: MNKindQName}},
	}
}

// String looks up idx in the string table, failing with IndexOutOfBoundsError
// if idx is out of range. Index 0 legitimately yields "".
func (cp *ConstantPool) String(idx uint32) (string, error) {
	if int(idx) >= len(cp.Strings) {
		return "", &IndexOutOfBoundsError{Table: "string", Index: int(idx), Length: len(cp.Strings)}
	}
	return cp.Strings[idx], nil
}

// Namespace looks up idx in the namespace table.
func (cp *ConstantPool) Namespace(idx uint32) (Namespace, error) {
	if int(idx) >= len(cp.Namespaces) {
		return Namespace{}, &IndexOutOfBoundsError{Table: "namespace", Index: int(idx), Length: len(cp.Namespaces)}
	}
	return cp.Namespaces[idx], nil
}

// NamespaceSet looks up idx in the ns-set table.
func (cp *ConstantPool) NamespaceSet(idx uint32) (NamespaceSet, error) {
	if int(idx) >= len(cp.NsSets) {
		return nil, &IndexOutOfBoundsError{Table: "ns_set", Index: int(idx), Length: len(cp.NsSets)}
	}
	return cp.NsSets[idx], nil
}

// Multiname looks up idx in the multiname table.
func (cp *ConstantPool) Multiname(idx uint32) (Multiname, error) {
	if int(idx) >= len(cp.Multinames) {
		return Multiname{}, &IndexOutOfBoundsError{Table: "multiname", Index: int(idx), Length: len(cp.Multinames)}
	}
	return cp.Multinames[idx], nil
}

// readConstantPoolCount reads a table's serialized count field and returns
// the number of real entries to read from the wire (excluding the sentinel
// that the caller is responsible for prepending).
func readConstantPoolCount(r *StreamReader) (uint32, error) {
	count, err := r.ReadU30()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	return count - 1, nil
}

// writeConstantPoolCount emits the count field for a table of the given
// total length (sentinel included): 0 when no real entries exist, the true
// length otherwise.
func writeConstantPoolCount(w *StreamWriter, length int) {
	if length <= 1 {
		w.WriteU30(0)
		return
	}
	w.WriteU30(uint32(length))
}

func readConstantPool(r *StreamReader) (*ConstantPool, error) {
	cp := NewConstantPool()

	n, err := readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		v, err := r.ReadI30()
		if err != nil {
			return nil, err
		}
		cp.Integers = append(cp.Integers, v)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		v, err := r.ReadU30()
		if err != nil {
			return nil, err
		}
		cp.UIntegers = append(cp.UIntegers, v)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		cp.Doubles = append(cp.Doubles, v)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		cp.Strings = append(cp.Strings, s)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		ns, err := readNamespace(r)
		if err != nil {
			return nil, err
		}
		cp.Namespaces = append(cp.Namespaces, ns)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		set, err := readNamespaceSet(r)
		if err != nil {
			return nil, err
		}
		cp.NsSets = append(cp.NsSets, set)
	}

	n, err = readConstantPoolCount(r)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		mn, err := readMultiname(r)
		if err != nil {
			return nil, err
		}
		cp.Multinames = append(cp.Multinames, mn)
	}

	return cp, nil
}

func writeConstantPool(w *StreamWriter, cp *ConstantPool) {
	writeConstantPoolCount(w, len(cp.Integers))
	for _, v := range cp.Integers[min(1, len(cp.Integers)):] {
		w.WriteI30(v)
	}

	writeConstantPoolCount(w, len(cp.UIntegers))
	for _, v := range cp.UIntegers[min(1, len(cp.UIntegers)):] {
		w.WriteU30(v)
	}

	writeConstantPoolCount(w, len(cp.Doubles))
	for _, v := range cp.Doubles[min(1, len(cp.Doubles)):] {
		w.WriteFloat64(v)
	}

	writeConstantPoolCount(w, len(cp.Strings))
	for _, s := range cp.Strings[min(1, len(cp.Strings)):] {
		w.WriteString(s)
	}

	writeConstantPoolCount(w, len(cp.Namespaces))
	for _, ns := range cp.Namespaces[min(1, len(cp.Namespaces)):] {
		writeNamespace(w, ns)
	}

	writeConstantPoolCount(w, len(cp.NsSets))
	for _, set := range cp.NsSets[min(1, len(cp.NsSets)):] {
		writeNamespaceSet(w, set)
	}

	writeConstantPoolCount(w, len(cp.Multinames))
	for _, mn := range cp.Multinames[min(1, len(cp.Multinames)):] {
		writeMultiname(w, mn)
	}
}

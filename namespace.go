// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// NamespaceKind identifies the variant of a constant-pool Namespace entry.
type NamespaceKind uint32

// Namespace kinds, per the AVM2 constant pool format.
const (
	NSKindStar            NamespaceKind = 0x00
	NSKindNamespace       NamespaceKind = 0x08
	NSKindPackage         NamespaceKind = 0x16
	NSKindPackageInternal NamespaceKind = 0x17
	NSKindProtected       NamespaceKind = 0x18
	NSKindExplicit        NamespaceKind = 0x19
	NSKindStaticProtected NamespaceKind = 0x1A
	NSKindPrivate         NamespaceKind = 0x05
)

func validNamespaceKind(k uint32) bool {
	switch NamespaceKind(k) {
	case NSKindStar, NSKindNamespace, NSKindPackage, NSKindPackageInternal,
		NSKindProtected, NSKindExplicit, NSKindStaticProtected, NSKindPrivate:
		return true
	}
	return false
}

// Namespace is a constant-pool namespace entry: a kind tag plus an index
// into the string table naming it.
type Namespace struct {
	Kind    NamespaceKind
	NameIdx uint32
}

func readNamespace(r *StreamReader) (Namespace, error) {
	kind, err := r.ReadU8()
	if err != nil {
		return Namespace{}, err
	}
	if !validNamespaceKind(uint32(kind)) {
		return Namespace{}, &InvalidNamespaceKindError{Kind: uint32(kind)}
	}
	nameIdx, err := r.ReadU30()
	if err != nil {
		return Namespace{}, err
	}
	return Namespace{Kind: NamespaceKind(kind), NameIdx: nameIdx}, nil
}

func writeNamespace(w *StreamWriter, ns Namespace) {
	w.WriteU8(byte(ns.Kind))
	w.WriteU30(ns.NameIdx)
}

// NamespaceSet is a constant-pool entry listing the namespaces a multiname
// may resolve against, by index into the namespace table.
type NamespaceSet []uint32

func readNamespaceSet(r *StreamReader) (NamespaceSet, error) {
	count, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	set := make(NamespaceSet, count)
	for i := range set {
		idx, err := r.ReadU30()
		if err != nil {
			return nil, err
		}
		set[i] = idx
	}
	return set, nil
}

func writeNamespaceSet(w *StreamWriter, set NamespaceSet) {
	w.WriteU30(uint32(len(set)))
	for _, idx := range set {
		w.WriteU30(idx)
	}
}

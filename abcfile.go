// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// AbcVersion is the two-field version header of an ABC file. Note the wire
// order: minor comes before major.
type AbcVersion struct {
	Minor uint16
	Major uint16
}

func readAbcVersion(r *StreamReader) (AbcVersion, error) {
	minor, err := r.ReadU16()
	if err != nil {
		return AbcVersion{}, err
	}
	major, err := r.ReadU16()
	if err != nil {
		return AbcVersion{}, err
	}
	return AbcVersion{Minor: minor, Major: major}, nil
}

func writeAbcVersion(w *StreamWriter, v AbcVersion) {
	w.WriteU16(v.Minor)
	w.WriteU16(v.Major)
}

// AbcFile is a parsed ABC program: a constant pool plus the method, class,
// script, and metadata tables that reference it by index. Method bodies
// are attached to their owning Method entries via the bodies backpatch
// pass, not kept as a separate table.
type AbcFile struct {
	Version   AbcVersion
	Pool      *ConstantPool
	Methods   []Method
	Classes   []Class
	Scripts   []Script
	Metadatas []Metadata
}

// NewAbcFile returns an empty ABC file with a fresh sentinel-only pool.
func NewAbcFile() *AbcFile {
	return &AbcFile{Pool: NewConstantPool()}
}

// ReadAbcFile parses a complete ABC program from r, in the prescribed wire
// order: version, pool, methods, metadata, classes (two-pass), scripts,
// then the method-bodies backpatch table.
func ReadAbcFile(r *StreamReader) (*AbcFile, error) {
	return readAbcFile(r, false)
}

// ReadAbcFileFast parses an ABC program like ReadAbcFile, but discards
// each method body's exception and trait metadata after parsing past it,
// keeping only the bytecode. Use this when the caller only needs
// Disassemble output.
func ReadAbcFileFast(r *StreamReader) (*AbcFile, error) {
	return readAbcFile(r, true)
}

func readAbcFile(r *StreamReader, fast bool) (*AbcFile, error) {
	version, err := readAbcVersion(r)
	if err != nil {
		return nil, err
	}
	pool, err := readConstantPool(r)
	if err != nil {
		return nil, err
	}

	methodCount, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	methods := make([]Method, methodCount)
	for i := range methods {
		if methods[i], err = readMethod(r); err != nil {
			return nil, err
		}
	}

	metaCount, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	metadatas := make([]Metadata, metaCount)
	for i := range metadatas {
		if metadatas[i], err = readMetadata(r); err != nil {
			return nil, err
		}
	}

	classCount, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	classes := make([]Class, classCount)
	for i := range classes {
		if classes[i], err = readClassInstance(r); err != nil {
			return nil, err
		}
	}
	for i := range classes {
		if err := readClassBody(r, &classes[i]); err != nil {
			return nil, err
		}
	}

	scriptCount, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	scripts := make([]Script, scriptCount)
	for i := range scripts {
		if scripts[i], err = readScript(r); err != nil {
			return nil, err
		}
	}

	bodyCount, err := r.ReadU30()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < bodyCount; i++ {
		index, err := r.ReadU30()
		if err != nil {
			return nil, err
		}
		if int(index) >= len(methods) {
			return nil, &MethodOutOfBoundError{Index: index}
		}
		if fast {
			if err := readMethodBodyFast(r, &methods[index]); err != nil {
				return nil, err
			}
		} else if err := readMethodBody(r, &methods[index]); err != nil {
			return nil, err
		}
	}

	return &AbcFile{
		Version:   version,
		Pool:      pool,
		Methods:   methods,
		Classes:   classes,
		Scripts:   scripts,
		Metadatas: metadatas,
	}, nil
}

// Write serializes the ABC file in the prescribed order, rebuilding the
// bodies backpatch table from which methods currently carry a body.
func (a *AbcFile) Write(w *StreamWriter) {
	writeAbcVersion(w, a.Version)
	writeConstantPool(w, a.Pool)

	bodies := make([]uint32, 0, len(a.Methods))
	w.WriteU30(uint32(len(a.Methods)))
	for i, m := range a.Methods {
		writeMethod(w, m)
		if m.HasBody {
			bodies = append(bodies, uint32(i))
		}
	}

	w.WriteU30(uint32(len(a.Metadatas)))
	for _, m := range a.Metadatas {
		writeMetadata(w, m)
	}

	w.WriteU30(uint32(len(a.Classes)))
	for _, c := range a.Classes {
		writeClassInstance(w, c)
	}
	for _, c := range a.Classes {
		writeClassBody(w, c)
	}

	w.WriteU30(uint32(len(a.Scripts)))
	for _, s := range a.Scripts {
		writeScript(w, s)
	}

	w.WriteU30(uint32(len(bodies)))
	for _, i := range bodies {
		w.WriteU30(i)
		writeMethodBody(w, a.Methods[i])
	}
}

// Method looks up index in the method table.
func (a *AbcFile) Method(index uint32) (*Method, error) {
	if int(index) >= len(a.Methods) {
		return nil, &IndexOutOfBoundsError{Table: "methods", Index: int(index), Length: len(a.Methods)}
	}
	return &a.Methods[index], nil
}

// Class looks up index in the class table.
func (a *AbcFile) Class(index uint32) (*Class, error) {
	if int(index) >= len(a.Classes) {
		return nil, &IndexOutOfBoundsError{Table: "classes", Index: int(index), Length: len(a.Classes)}
	}
	return &a.Classes[index], nil
}

// Script looks up index in the script table.
func (a *AbcFile) Script(index uint32) (*Script, error) {
	if int(index) >= len(a.Scripts) {
		return nil, &IndexOutOfBoundsError{Table: "scripts", Index: int(index), Length: len(a.Scripts)}
	}
	return &a.Scripts[index], nil
}

// Metadata looks up index in the metadata table.
func (a *AbcFile) Metadata(index uint32) (*Metadata, error) {
	if int(index) >= len(a.Metadatas) {
		return nil, &IndexOutOfBoundsError{Table: "metadatas", Index: int(index), Length: len(a.Metadatas)}
	}
	return &a.Metadatas[index], nil
}

// QName returns the string name of the multiname at index, resolving
// through the constant pool. Returns ok=false for the sentinel ("any")
// name, matching the reference's treatment of a zero name index as absent.
func (a *AbcFile) QName(index uint32) (string, bool) {
	if int(index) >= len(a.Pool.Multinames) {
		return "", false
	}
	return a.qnameFromMultiname(a.Pool.Multinames[index])
}

func (a *AbcFile) qnameFromMultiname(mn Multiname) (string, bool) {
	nameIdx := mn.NameIdx
	if mn.Kind == MNKindTypename {
		nameIdx = 0
	}
	if nameIdx == 0 {
		return "", false
	}
	if int(nameIdx) >= len(a.Pool.Strings) {
		return "", false
	}
	return a.Pool.Strings[nameIdx], true
}

// MultinameString renders a multiname's local name, recursing into
// namespace sets and type-argument lists for the variants that need it.
func (a *AbcFile) MultinameString(mn Multiname) (string, bool) {
	switch mn.Kind {
	case MNKindQName, MNKindQNameA, MNKindRTQName, MNKindRTQNameA,
		MNKindRTQNameL, MNKindRTQNameLA, MNKindMultiname, MNKindMultinameA:
		return a.qnameFromMultiname(mn)
	case MNKindMultinameL, MNKindMultinameLA:
		set, err := a.Pool.NamespaceSet(mn.NsSetIdx)
		if err != nil {
			return "", false
		}
		return a.NamespaceSetString(set)
	case MNKindTypename:
		base, ok := a.QName(mn.QNameIdx)
		if !ok {
			return "", false
		}
		if len(mn.TypeIdxs) == 0 {
			return base, true
		}
		args := "<"
		for i, idx := range mn.TypeIdxs {
			s, ok := a.QName(idx)
			if !ok {
				return "", false
			}
			if i > 0 {
				args += ","
			}
			args += s
		}
		return base + args + ">", true
	}
	return "", false
}

// NamespaceSetString joins the names of the namespaces in set with "::".
func (a *AbcFile) NamespaceSetString(set NamespaceSet) (string, bool) {
	name := ""
	for _, idx := range set {
		ns, err := a.Pool.Namespace(idx)
		if err != nil {
			return "", false
		}
		s, ok := a.NamespaceString(ns)
		if !ok {
			return "", false
		}
		if name != "" {
			name += "::"
		}
		name += s
	}
	return name, true
}

// NamespaceString returns a namespace's name from the string table.
func (a *AbcFile) NamespaceString(ns Namespace) (string, bool) {
	if int(ns.NameIdx) >= len(a.Pool.Strings) {
		return "", false
	}
	return a.Pool.Strings[ns.NameIdx], true
}

// FQN returns a class's fully qualified name, "package::ClassName".
func (a *AbcFile) FQN(c *Class) (string, bool) {
	if int(c.NameIdx) >= len(a.Pool.Multinames) {
		return "", false
	}
	mn := a.Pool.Multinames[c.NameIdx]

	ns := ""
	switch mn.Kind {
	case MNKindQName, MNKindQNameA:
		if mn.NsIdx != 0 {
			nsVal, err := a.Pool.Namespace(mn.NsIdx)
			if err != nil {
				return "", false
			}
			s, ok := a.NamespaceString(nsVal)
			if !ok {
				return "", false
			}
			ns = s
		}
	case MNKindMultiname, MNKindMultinameA, MNKindMultinameL, MNKindMultinameLA:
		set, err := a.Pool.NamespaceSet(mn.NsSetIdx)
		if err != nil {
			return "", false
		}
		s, ok := a.NamespaceSetString(set)
		if !ok {
			return "", false
		}
		ns = s
	}

	name := "*"
	if mn.NameIdx != 0 {
		s, err := a.Pool.String(mn.NameIdx)
		if err != nil {
			return "", false
		}
		name = s
	}

	if ns != "" {
		return ns + "::" + name, true
	}
	return name, true
}

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// ClassFlags are the bits carried in a Class instance's flags byte.
type ClassFlags uint8

// Class flag bits.
const (
	ClassSealed             ClassFlags = 0x01
	ClassFinal              ClassFlags = 0x02
	ClassInterface          ClassFlags = 0x04
	ClassProtectedNamespace ClassFlags = 0x08
)

// IsSealed reports whether properties cannot be dynamically added to
// instances of the class.
func (f ClassFlags) IsSealed() bool { return f&ClassSealed != 0 }

// IsFinal reports whether the class cannot be subclassed.
func (f ClassFlags) IsFinal() bool { return f&ClassFinal != 0 }

// IsInterface reports whether the class is an interface.
func (f ClassFlags) IsInterface() bool { return f&ClassInterface != 0 }

// IsProtected reports whether the class uses a protected namespace, in
// which case ProtectedNsIdx is present on the wire.
func (f ClassFlags) IsProtected() bool { return f&ClassProtectedNamespace != 0 }

// Class is an ABC class: instance-side fields (name, super, interfaces,
// instance initializer, instance traits) plus class-side fields (static
// initializer, class traits). The two halves are read and written in
// separate passes over the whole class table (see readAbcFile).
type Class struct {
	NameIdx        uint32
	SuperNameIdx   uint32
	Flags          ClassFlags
	ProtectedNsIdx uint32
	IinitIdx       uint32
	InterfaceIdxs  []uint32
	InstanceTraits []Trait

	CinitIdx     uint32
	ClassTraits  []Trait
}

func readClassInstance(r *StreamReader) (Class, error) {
	var c Class
	var err error
	if c.NameIdx, err = r.ReadU30(); err != nil {
		return Class{}, err
	}
	if c.SuperNameIdx, err = r.ReadU30(); err != nil {
		return Class{}, err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return Class{}, err
	}
	c.Flags = ClassFlags(flags)
	if c.Flags.IsProtected() {
		if c.ProtectedNsIdx, err = r.ReadU30(); err != nil {
			return Class{}, err
		}
	}

	count, err := r.ReadU30()
	if err != nil {
		return Class{}, err
	}
	c.InterfaceIdxs = make([]uint32, count)
	for i := range c.InterfaceIdxs {
		if c.InterfaceIdxs[i], err = r.ReadU30(); err != nil {
			return Class{}, err
		}
	}

	if c.IinitIdx, err = r.ReadU30(); err != nil {
		return Class{}, err
	}
	count, err = r.ReadU30()
	if err != nil {
		return Class{}, err
	}
	c.InstanceTraits = make([]Trait, count)
	for i := range c.InstanceTraits {
		if c.InstanceTraits[i], err = readTrait(r); err != nil {
			return Class{}, err
		}
	}
	return c, nil
}

func readClassBody(r *StreamReader, c *Class) error {
	var err error
	if c.CinitIdx, err = r.ReadU30(); err != nil {
		return err
	}
	count, err := r.ReadU30()
	if err != nil {
		return err
	}
	c.ClassTraits = make([]Trait, count)
	for i := range c.ClassTraits {
		if c.ClassTraits[i], err = readTrait(r); err != nil {
			return err
		}
	}
	return nil
}

func writeClassInstance(w *StreamWriter, c Class) {
	w.WriteU30(c.NameIdx)
	w.WriteU30(c.SuperNameIdx)
	w.WriteU8(byte(c.Flags))
	if c.Flags.IsProtected() {
		w.WriteU30(c.ProtectedNsIdx)
	}

	w.WriteU30(uint32(len(c.InterfaceIdxs)))
	for _, idx := range c.InterfaceIdxs {
		w.WriteU30(idx)
	}

	w.WriteU30(c.IinitIdx)
	w.WriteU30(uint32(len(c.InstanceTraits)))
	for _, t := range c.InstanceTraits {
		writeTrait(w, t)
	}
}

func writeClassBody(w *StreamWriter, c Class) {
	w.WriteU30(c.CinitIdx)
	w.WriteU30(uint32(len(c.ClassTraits)))
	for _, t := range c.ClassTraits {
		writeTrait(w, t)
	}
}

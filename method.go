// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// MethodFlags are the bits carried in a Method header's flags byte.
type MethodFlags uint8

// Method flag bits.
const (
	MethodNeedArguments  MethodFlags = 0x01
	MethodNeedActivation MethodFlags = 0x02
	MethodNeedRest       MethodFlags = 0x04
	MethodHasOptional    MethodFlags = 0x08
	MethodSetDxns        MethodFlags = 0x40
	MethodHasParamNames  MethodFlags = 0x80
)

// IsNeedArguments reports whether the "arguments" object is materialized.
func (f MethodFlags) IsNeedArguments() bool { return f&MethodNeedArguments != 0 }

// IsNeedActivation reports whether an activation object must be allocated.
func (f MethodFlags) IsNeedActivation() bool { return f&MethodNeedActivation != 0 }

// IsNeedRest reports whether excess arguments collect into a rest array.
func (f MethodFlags) IsNeedRest() bool { return f&MethodNeedRest != 0 }

// HasOptional reports whether the optional-parameter-values list is present.
func (f MethodFlags) HasOptional() bool { return f&MethodHasOptional != 0 }

// SetsDxns reports whether the method may change the default XML namespace.
func (f MethodFlags) SetsDxns() bool { return f&MethodSetDxns != 0 }

// HasParamNames reports whether the parameter-name-index list is present.
func (f MethodFlags) HasParamNames() bool { return f&MethodHasParamNames != 0 }

// OptionValue is a single entry in a method's optional-parameter-value list.
type OptionValue struct {
	ValueIdx  uint32
	ValueKind byte
}

// Method is an ABC method header plus, for methods with a non-empty body,
// its execution frame and code.
type Method struct {
	ReturnTypeIdx uint32
	NameIdx       uint32
	Flags         MethodFlags
	ParamTypeIdxs []uint32
	Options       []OptionValue
	ParamNameIdxs []uint32

	HasBody         bool
	MaxStack        uint32
	LocalCount      uint32
	InitScopeDepth  uint32
	MaxScopeDepth   uint32
	Code            []byte
	Exceptions      []Exception
	Traits          []Trait
}

func readMethod(r *StreamReader) (Method, error) {
	var m Method
	paramCount, err := r.ReadU30()
	if err != nil {
		return Method{}, err
	}
	if m.ReturnTypeIdx, err = r.ReadU30(); err != nil {
		return Method{}, err
	}
	m.ParamTypeIdxs = make([]uint32, paramCount)
	for i := range m.ParamTypeIdxs {
		if m.ParamTypeIdxs[i], err = r.ReadU30(); err != nil {
			return Method{}, err
		}
	}
	if m.NameIdx, err = r.ReadU30(); err != nil {
		return Method{}, err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return Method{}, err
	}
	m.Flags = MethodFlags(flags)

	if m.Flags.HasOptional() {
		count, err := r.ReadU30()
		if err != nil {
			return Method{}, err
		}
		m.Options = make([]OptionValue, count)
		for i := range m.Options {
			if m.Options[i].ValueIdx, err = r.ReadU30(); err != nil {
				return Method{}, err
			}
			if m.Options[i].ValueKind, err = r.ReadU8(); err != nil {
				return Method{}, err
			}
		}
	}
	if m.Flags.HasParamNames() {
		m.ParamNameIdxs = make([]uint32, paramCount)
		for i := range m.ParamNameIdxs {
			if m.ParamNameIdxs[i], err = r.ReadU30(); err != nil {
				return Method{}, err
			}
		}
	}
	return m, nil
}

func writeMethod(w *StreamWriter, m Method) {
	w.WriteU30(uint32(len(m.ParamTypeIdxs)))
	w.WriteU30(m.ReturnTypeIdx)
	for _, idx := range m.ParamTypeIdxs {
		w.WriteU30(idx)
	}
	w.WriteU30(m.NameIdx)
	w.WriteU8(byte(m.Flags))
	if m.Flags.HasOptional() {
		w.WriteU30(uint32(len(m.Options)))
		for _, opt := range m.Options {
			w.WriteU30(opt.ValueIdx)
			w.WriteU8(opt.ValueKind)
		}
	}
	if m.Flags.HasParamNames() {
		for _, idx := range m.ParamNameIdxs {
			w.WriteU30(idx)
		}
	}
}

// readMethodBody reads the body payload that follows a method index in the
// bodies backpatch table, filling in m's body fields in place.
func readMethodBody(r *StreamReader, m *Method) error {
	var err error
	if m.MaxStack, err = r.ReadU30(); err != nil {
		return err
	}
	if m.LocalCount, err = r.ReadU30(); err != nil {
		return err
	}
	if m.InitScopeDepth, err = r.ReadU30(); err != nil {
		return err
	}
	if m.MaxScopeDepth, err = r.ReadU30(); err != nil {
		return err
	}
	codeLen, err := r.ReadU30()
	if err != nil {
		return err
	}
	if m.Code, err = r.ReadBytes(codeLen); err != nil {
		return err
	}
	excCount, err := r.ReadU30()
	if err != nil {
		return err
	}
	m.Exceptions = make([]Exception, excCount)
	for i := range m.Exceptions {
		if m.Exceptions[i], err = readException(r); err != nil {
			return err
		}
	}
	traitCount, err := r.ReadU30()
	if err != nil {
		return err
	}
	m.Traits = make([]Trait, traitCount)
	for i := range m.Traits {
		if m.Traits[i], err = readTrait(r); err != nil {
			return err
		}
	}
	m.HasBody = true
	return nil
}

// readMethodBodyFast behaves like readMethodBody but parses past each
// exception and trait entry without retaining it, for callers that only
// need a method's bytecode.
func readMethodBodyFast(r *StreamReader, m *Method) error {
	var err error
	if m.MaxStack, err = r.ReadU30(); err != nil {
		return err
	}
	if m.LocalCount, err = r.ReadU30(); err != nil {
		return err
	}
	if m.InitScopeDepth, err = r.ReadU30(); err != nil {
		return err
	}
	if m.MaxScopeDepth, err = r.ReadU30(); err != nil {
		return err
	}
	codeLen, err := r.ReadU30()
	if err != nil {
		return err
	}
	if m.Code, err = r.ReadBytes(codeLen); err != nil {
		return err
	}
	excCount, err := r.ReadU30()
	if err != nil {
		return err
	}
	for i := uint32(0); i < excCount; i++ {
		if _, err := readException(r); err != nil {
			return err
		}
	}
	traitCount, err := r.ReadU30()
	if err != nil {
		return err
	}
	for i := uint32(0); i < traitCount; i++ {
		if _, err := readTrait(r); err != nil {
			return err
		}
	}
	m.HasBody = true
	return nil
}

func writeMethodBody(w *StreamWriter, m Method) {
	w.WriteU30(m.MaxStack)
	w.WriteU30(m.LocalCount)
	w.WriteU30(m.InitScopeDepth)
	w.WriteU30(m.MaxScopeDepth)
	w.WriteU30(uint32(len(m.Code)))
	w.WriteExact(m.Code)
	w.WriteU30(uint32(len(m.Exceptions)))
	for _, exc := range m.Exceptions {
		writeException(w, exc)
	}
	w.WriteU30(uint32(len(m.Traits)))
	for _, t := range m.Traits {
		writeTrait(w, t)
	}
}

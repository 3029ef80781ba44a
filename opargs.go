// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Operand is the payload carried by an Instruction. Each concrete type
// below corresponds to one of the payload shapes enumerated in the AVM2
// instruction set; many opcodes share a shape (e.g. Call/Construct/NewArray
// all carry an ArgsCountArg).
type Operand interface {
	size() uint32
}

func u30Size(v uint32) uint32 {
	n := uint32(1)
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// NoArg is the payload of every zero-operand instruction.
type NoArg struct{}

func (NoArg) size() uint32 { return 0 }

// ArgsCountArg carries a single argument-count operand (Call, Construct,
// ConstructSuper, NewArray, ApplyType).
type ArgsCountArg struct{ ArgCount uint32 }

func (a ArgsCountArg) size() uint32 { return u30Size(a.ArgCount) }

// MultinameArg carries a single multiname-table index (GetSuper, SetSuper,
// AsType, IsType).
type MultinameArg struct{ Multiname uint32 }

func (a MultinameArg) size() uint32 { return u30Size(a.Multiname) }

// CallPropertyArg carries a property multiname plus an argument count
// (CallProperty, CallPropLex, CallPropVoid, ConstructProp).
type CallPropertyArg struct {
	Property uint32
	ArgCount uint32
}

func (a CallPropertyArg) size() uint32 { return u30Size(a.Property) + u30Size(a.ArgCount) }

// CallMethodArg carries a method-table index plus an argument count
// (CallStatic, CallSuper, CallSuperVoid).
type CallMethodArg struct {
	Method   uint32
	ArgCount uint32
}

func (a CallMethodArg) size() uint32 { return u30Size(a.Method) + u30Size(a.ArgCount) }

// CallMethodDispArg is CallMethod's dispatch-id variant of CallMethodArg.
type CallMethodDispArg struct {
	DispID   uint32
	ArgCount uint32
}

func (a CallMethodDispArg) size() uint32 { return u30Size(a.DispID) + u30Size(a.ArgCount) }

// PropertyArg carries a single property multiname index (GetProperty,
// SetProperty minus arg count, FindProperty, FindPropStrict, FindDef,
// GetLex, InitProperty, DeleteProperty).
type PropertyArg struct{ Property uint32 }

func (a PropertyArg) size() uint32 { return u30Size(a.Property) }

// LineArg carries a source line number (BkptLine, DebugLine).
type LineArg struct{ Line uint32 }

func (a LineArg) size() uint32 { return u30Size(a.Line) }

// RegisterArg carries a local-register index (GetLocal, SetLocal, Kill,
// IncLocal, DecLocal, IncLocalI, DecLocalI).
type RegisterArg struct{ Register uint32 }

func (a RegisterArg) size() uint32 { return u30Size(a.Register) }

// SlotArg carries a slot index (GetSlot, SetSlot, GetGlobalSlot,
// SetGlobalSlot).
type SlotArg struct{ Slot uint32 }

func (a SlotArg) size() uint32 { return u30Size(a.Slot) }

// ScopeArg carries a scope-stack depth (GetScopeObject, GetOuterScope).
type ScopeArg struct{ Scope uint32 }

func (a ScopeArg) size() uint32 { return u30Size(a.Scope) }

// TargetArg carries a resolved absolute branch target address for all
// non-LookupSwitch branch instructions. On the wire this is a relative
// i24 delta; TargetArg always stores the resolved absolute address.
type TargetArg struct{ Target uint32 }

func (a TargetArg) size() uint32 { return 3 }

// CoerceArg carries a multiname-table index for Coerce.
type CoerceArg struct{ Index uint32 }

func (a CoerceArg) size() uint32 { return u30Size(a.Index) }

// DebugArg is Debug's four-field payload: a debug-type byte, a
// string-table index naming a register, the register number, and an
// extra field.
type DebugArg struct {
	DebugType byte
	RegName   uint32
	Register  byte
	Extra     uint32
}

func (a DebugArg) size() uint32 { return 2 + u30Size(a.RegName) + u30Size(a.Extra) }

// DebugFileArg carries a string-table index naming a source file.
type DebugFileArg struct{ Filename uint32 }

func (a DebugFileArg) size() uint32 { return u30Size(a.Filename) }

// DxnsArg carries a string-table index naming a default XML namespace URI.
type DxnsArg struct{ URI uint32 }

func (a DxnsArg) size() uint32 { return u30Size(a.URI) }

// GetDescendantsArg carries a property multiname index.
type GetDescendantsArg struct{ Operand uint32 }

func (a GetDescendantsArg) size() uint32 { return u30Size(a.Operand) }

// HasNext2Arg carries a pair of register indices.
type HasNext2Arg struct {
	ObjectRegister uint32
	IndexRegister  uint32
}

func (a HasNext2Arg) size() uint32 { return u30Size(a.ObjectRegister) + u30Size(a.IndexRegister) }

// LookupSwitchArg carries a resolved default target plus a resolved target
// per case, all relative to the instruction's own address on the wire.
type LookupSwitchArg struct {
	DefaultTarget uint32
	Targets       []uint32
}

func (a LookupSwitchArg) size() uint32 {
	caseCount := uint32(len(a.Targets) - 1)
	return 3*uint32(len(a.Targets)) + u30Size(caseCount) + 3
}

// NewCatchArg carries an index into the owning method's exception table.
type NewCatchArg struct{ Exception uint32 }

func (a NewCatchArg) size() uint32 { return u30Size(a.Exception) }

// NewClassArg carries a class-table index.
type NewClassArg struct{ Class uint32 }

func (a NewClassArg) size() uint32 { return u30Size(a.Class) }

// NewFunctionArg carries a method-table index.
type NewFunctionArg struct{ Method uint32 }

func (a NewFunctionArg) size() uint32 { return u30Size(a.Method) }

// NewObjectArg carries a property count.
type NewObjectArg struct{ PropertyCount uint32 }

func (a NewObjectArg) size() uint32 { return u30Size(a.PropertyCount) }

// PushByteArg carries a literal byte.
type PushByteArg struct{ Value uint8 }

func (a PushByteArg) size() uint32 { return 1 }

// PushDoubleArg carries a double-table index.
type PushDoubleArg struct{ Value uint32 }

func (a PushDoubleArg) size() uint32 { return u30Size(a.Value) }

// PushIntArg carries an integer-table index.
type PushIntArg struct{ Value uint32 }

func (a PushIntArg) size() uint32 { return u30Size(a.Value) }

// NamespaceArg carries a namespace-table index.
type NamespaceArg struct{ Ns uint32 }

func (a NamespaceArg) size() uint32 { return u30Size(a.Ns) }

// PushShortArg carries a literal value, written on the wire as u30 but
// interpreted as i16; values outside i16 range round-trip through their
// low 16 bits, sign-extended on read.
type PushShortArg struct{ Value int16 }

func (a PushShortArg) size() uint32 { return u30Size(uint32(uint16(a.Value))) }

// PushStringArg carries a string-table index.
type PushStringArg struct{ Value uint32 }

func (a PushStringArg) size() uint32 { return u30Size(a.Value) }

// PushUintArg carries a uinteger-table index.
type PushUintArg struct{ Value uint32 }

func (a PushUintArg) size() uint32 { return u30Size(a.Value) }

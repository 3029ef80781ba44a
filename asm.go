// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Assemble reassembles a disassembled instruction list back into a code
// byte stream. Relative branch offsets and LookupSwitch deltas are
// recomputed from the instructions' resolved absolute target addresses, so
// Assemble does not require Targets/JumpsHere to have been kept consistent
// by the caller -- only Arg's resolved addresses matter.
func Assemble(instructions []Instruction) []byte {
	w := NewStreamWriter(0)
	for _, ins := range instructions {
		encodeInstruction(w, ins)
	}
	return w.Bytes()
}

func encodeInstruction(w *StreamWriter, ins Instruction) {
	w.WriteU8(byte(ins.Opcode))

	switch arg := ins.Arg.(type) {
	case NoArg:
		// no payload
	case MultinameArg:
		w.WriteU30(arg.Multiname)
	case ArgsCountArg:
		w.WriteU30(arg.ArgCount)
	case CallPropertyArg:
		w.WriteU30(arg.Property)
		w.WriteU30(arg.ArgCount)
	case CallMethodArg:
		w.WriteU30(arg.Method)
		w.WriteU30(arg.ArgCount)
	case CallMethodDispArg:
		w.WriteU30(arg.DispID)
		w.WriteU30(arg.ArgCount)
	case PropertyArg:
		w.WriteU30(arg.Property)
	case LineArg:
		w.WriteU30(arg.Line)
	case RegisterArg:
		w.WriteU30(arg.Register)
	case SlotArg:
		w.WriteU30(arg.Slot)
	case ScopeArg:
		w.WriteU30(arg.Scope)
	case TargetArg:
		// The delta is relative to the address immediately after this
		// 3-byte operand, i.e. w.Len() once the i24 has been written.
		delta := int32(arg.Target) - (int32(w.Len()) + 3)
		w.WriteI24(delta)
	case CoerceArg:
		w.WriteU30(arg.Index)
	case DebugArg:
		w.WriteU8(arg.DebugType)
		w.WriteU30(arg.RegName)
		w.WriteU8(arg.Register)
		w.WriteU30(arg.Extra)
	case DebugFileArg:
		w.WriteU30(arg.Filename)
	case DxnsArg:
		w.WriteU30(arg.URI)
	case GetDescendantsArg:
		w.WriteU30(arg.Operand)
	case HasNext2Arg:
		w.WriteU30(arg.ObjectRegister)
		w.WriteU30(arg.IndexRegister)
	case LookupSwitchArg:
		// Both the default and every case delta are relative to this
		// instruction's own opcode byte, already written one byte ago.
		base := int32(w.Len()) - 1
		w.WriteI24(int32(arg.DefaultTarget) - base)
		w.WriteU30(uint32(len(arg.Targets)) - 1)
		for _, t := range arg.Targets {
			w.WriteI24(int32(t) - base)
		}
	case NewCatchArg:
		w.WriteU30(arg.Exception)
	case NewClassArg:
		w.WriteU30(arg.Class)
	case NewFunctionArg:
		w.WriteU30(arg.Method)
	case NewObjectArg:
		w.WriteU30(arg.PropertyCount)
	case PushByteArg:
		w.WriteU8(arg.Value)
	case PushDoubleArg:
		w.WriteU30(arg.Value)
	case PushIntArg:
		w.WriteU30(arg.Value)
	case NamespaceArg:
		w.WriteU30(arg.Ns)
	case PushShortArg:
		w.WriteU30(uint32(uint16(arg.Value)))
	case PushStringArg:
		w.WriteU30(arg.Value)
	case PushUintArg:
		w.WriteU30(arg.Value)
	}
}

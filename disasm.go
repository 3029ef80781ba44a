// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Disassemble decodes code into an indexed instruction list and resolves
// the control-flow edges between branch instructions and their targets:
// every branch instruction's Targets names the absolute addresses it may
// transfer to, and every target instruction's JumpsHere names the
// addresses of the branches that land on it.
func Disassemble(code []byte) ([]Instruction, error) {
	r := NewStreamReader(code)
	var instructions []Instruction
	addr2idx := make(map[uint32]int)
	targets := make(map[uint32][]uint32)

	for !r.Finished() {
		ins, err := decodeInstruction(r)
		if err != nil {
			return nil, err
		}
		idx := len(instructions)
		instructions = append(instructions, ins)
		addr2idx[ins.Addr] = idx

		if ins.IsBranch() {
			t := ins.Arg.(TargetArg).Target
			targets[t] = append(targets[t], ins.Addr)
		} else if ins.Opcode == OpLookupSwitch {
			arg := ins.Arg.(LookupSwitchArg)
			targets[arg.DefaultTarget] = append(targets[arg.DefaultTarget], ins.Addr)
			for _, t := range arg.Targets {
				targets[t] = append(targets[t], ins.Addr)
			}
		}
	}

	for target, sources := range targets {
		targetIdx, ok := addr2idx[target]
		if !ok {
			continue
		}
		instructions[targetIdx].JumpsHere = append(instructions[targetIdx].JumpsHere, sources...)
		for _, src := range sources {
			instructions[addr2idx[src]].Targets = append(instructions[addr2idx[src]].Targets, target)
		}
	}

	return instructions, nil
}

// decodeInstruction reads one instruction starting at r's current
// position, dispatching on the leading opcode byte.
func decodeInstruction(r *StreamReader) (Instruction, error) {
	addr := r.Pos()
	b, err := r.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	opcode := OpCode(b)

	var arg Operand
	switch opcode {
	case OpGetSuper, OpSetSuper, OpAsType, OpIsType:
		mn, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = MultinameArg{Multiname: mn}

	case OpIfNlt, OpIfNle, OpIfNgt, OpIfNge, OpJump, OpIfTrue, OpIfFalse,
		OpIfEq, OpIfNe, OpIfLt, OpIfLe, OpIfGt, OpIfGe, OpIfStrictEq, OpIfStrictNe:
		delta, err := r.ReadI24()
		if err != nil {
			return Instruction{}, err
		}
		arg = TargetArg{Target: uint32(int32(r.Pos()) + delta)}

	case OpLookupSwitch:
		base := int32(addr)
		defDelta, err := r.ReadI24()
		if err != nil {
			return Instruction{}, err
		}
		caseCount, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		tgts := make([]uint32, caseCount+1)
		for i := range tgts {
			d, err := r.ReadI24()
			if err != nil {
				return Instruction{}, err
			}
			tgts[i] = uint32(base + d)
		}
		arg = LookupSwitchArg{DefaultTarget: uint32(base + defDelta), Targets: tgts}

	case OpDxns:
		uri, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = DxnsArg{URI: uri}

	case OpPushByte:
		v, err := r.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushByteArg{Value: v}

	case OpPushShort:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushShortArg{Value: int16(v)}

	case OpPushString:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushStringArg{Value: v}

	case OpPushInt:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushIntArg{Value: v}

	case OpPushUint:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushUintArg{Value: v}

	case OpPushDouble:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PushDoubleArg{Value: v}

	case OpPushNamespace:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = NamespaceArg{Ns: v}

	case OpHasNext2:
		obj, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		idx, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = HasNext2Arg{ObjectRegister: obj, IndexRegister: idx}

	case OpNewFunction:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = NewFunctionArg{Method: v}

	case OpCall, OpConstruct, OpConstructSuper, OpNewArray, OpApplyType:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = ArgsCountArg{ArgCount: v}

	case OpCallMethod:
		disp, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		argc, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = CallMethodDispArg{DispID: disp, ArgCount: argc}

	case OpCallStatic, OpCallSuper, OpCallSuperVoid:
		m, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		argc, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = CallMethodArg{Method: m, ArgCount: argc}

	case OpCallProperty, OpConstructProp, OpCallPropLex, OpCallPropVoid:
		prop, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		argc, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = CallPropertyArg{Property: prop, ArgCount: argc}

	case OpNewObject:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = NewObjectArg{PropertyCount: v}

	case OpNewClass:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = NewClassArg{Class: v}

	case OpGetDescendants:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = GetDescendantsArg{Operand: v}

	case OpNewCatch:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = NewCatchArg{Exception: v}

	case OpFindPropstrict, OpFindProperty, OpFindDef, OpGetLex, OpSetProperty,
		OpGetProperty, OpInitProperty, OpDeleteProperty:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = PropertyArg{Property: v}

	case OpGetScopeObject, OpGetOuterScope:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = ScopeArg{Scope: v}

	case OpGetSlot, OpSetSlot, OpGetGlobalSlot, OpSetGlobalSlot:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = SlotArg{Slot: v}

	case OpCoerce:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = CoerceArg{Index: v}

	case OpDebug:
		debugType, err := r.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		regName, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		register, err := r.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		extra, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = DebugArg{DebugType: debugType, RegName: regName, Register: register, Extra: extra}

	case OpBkptLine, OpDebugLine:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = LineArg{Line: v}

	case OpDebugFile:
		v, err := r.ReadU30()
		if err != nil {
			return Instruction{}, err
		}
		arg = DebugFileArg{Filename: v}

	default:
		if isRegisterOpcode(opcode) {
			v, err := r.ReadU30()
			if err != nil {
				return Instruction{}, err
			}
			arg = RegisterArg{Register: v}
		} else if isZeroArgOpcode(opcode) {
			arg = NoArg{}
		} else {
			return Instruction{}, &InvalidOpcodeError{Opcode: b, Addr: addr}
		}
	}

	return Instruction{Opcode: opcode, Arg: arg, Addr: addr}, nil
}

func isRegisterOpcode(op OpCode) bool {
	switch op {
	case OpKill, OpGetLocal, OpSetLocal, OpIncLocal, OpDecLocal, OpIncLocalI, OpDecLocalI:
		return true
	}
	return false
}

func isZeroArgOpcode(op OpCode) bool {
	switch op {
	case OpBkpt, OpNop, OpThrow, OpDxnsLate, OpLabel, OpLf32x4, OpSf32x4, OpPushWith,
		OpPopScope, OpNextName, OpHasNext, OpPushNull, OpPushUndefined, OpPushFloat4,
		OpNextValue, OpPushTrue, OpPushFalse, OpPushNan, OpPop, OpDup, OpSwap, OpPushScope,
		OpLi8, OpLi16, OpLi32, OpLf32, OpLf64, OpSi8, OpSi16, OpSi32, OpSf32, OpSf64,
		OpReturnVoid, OpReturnValue, OpSxi1, OpSxi8, OpSxi16, OpNewActivation,
		OpGetGlobalScope, OpConvertS, OpEscXElem, OpEscXAttr, OpConvertI, OpConvertU,
		OpConvertD, OpConvertB, OpConvertO, OpCheckFilter, OpConvertF, OpUnPlus, OpConvertF4,
		OpCoerceB, OpCoerceA, OpCoerceI, OpCoerceD, OpCoerceS, OpAsTypeLate, OpCoerceU,
		OpCoerceO, OpNegate, OpIncrement, OpDecrement, OpTypeOf, OpNot, OpBitNot, OpAdd,
		OpSubtract, OpMultiply, OpDivide, OpModulo, OpLShift, OpRShift, OpUrShift, OpBitAnd,
		OpBitOr, OpBitXor, OpEquals, OpStrictEquals, OpLessThan, OpLessEquals, OpGreaterThan,
		OpGreaterEquals, OpInstanceOf, OpIsTypeLate, OpIn, OpIncrementI, OpDecrementI,
		OpNegateI, OpAddI, OpSubtractI, OpMultiplyI, OpGetLocal0, OpGetLocal1, OpGetLocal2,
		OpGetLocal3, OpSetLocal0, OpSetLocal1, OpSetLocal2, OpSetLocal3:
		return true
	}
	return false
}

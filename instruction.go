// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rabc

// Instruction is one decoded AVM2 bytecode instruction: its opcode, typed
// operand payload, the byte address it was read from, and the edges of the
// control-flow graph it participates in.
//
// Targets and JumpsHere are populated only after a full method body has
// been disassembled (see Disassemble); a freshly-decoded single
// instruction carries neither.
type Instruction struct {
	Opcode OpCode
	Arg    Operand
	Addr   uint32

	Targets   []uint32
	JumpsHere []uint32
}

// Size returns the instruction's total byte length on the wire, opcode
// byte included.
func (ins Instruction) Size() uint32 {
	return ins.Arg.size() + 1
}

// IsBranch reports whether ins is one of the fifteen relative-target
// conditional/unconditional jumps (excludes LookupSwitch, which has its
// own addressing rule).
func (ins Instruction) IsBranch() bool {
	switch ins.Opcode {
	case OpIfNlt, OpIfNle, OpIfNgt, OpIfNge, OpJump, OpIfTrue, OpIfFalse,
		OpIfEq, OpIfNe, OpIfLt, OpIfLe, OpIfGt, OpIfGe, OpIfStrictEq, OpIfStrictNe:
		return true
	}
	return false
}

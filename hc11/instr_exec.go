package hc11

// Execution procedures for every supported mnemonic. Grouped by family to
// mirror the reference implementation's INST_* functions, but generalized
// over addressing mode instead of one function per (mnemonic, mode) pair
// wherever the mode only changes how the operand byte is fetched.

func execNop(s *State, d Decoded) *Fault { return nil }

// --- flag manipulation, inherent ---

func execClv(s *State, d Decoded) *Fault { s.SetFlag(FlagV, false); return nil }
func execSev(s *State, d Decoded) *Fault { s.SetFlag(FlagV, true); return nil }
func execClc(s *State, d Decoded) *Fault { s.SetFlag(FlagC, false); return nil }
func execSec(s *State, d Decoded) *Fault { s.SetFlag(FlagC, true); return nil }
func execCli(s *State, d Decoded) *Fault { s.SetFlag(FlagI, false); return nil }
func execSei(s *State, d Decoded) *Fault { s.SetFlag(FlagI, true); return nil }

// TAP/TPA move the whole condition-code byte to/from A.
func execTap(s *State, d Decoded) *Fault { s.Status = s.A; return nil }
func execTpa(s *State, d Decoded) *Fault { s.A = s.Status; return nil }

// --- loads ---

func execLdaa(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A = v
	setNZClearV8(s, v)
	return nil
}

func execLdab(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B = v
	setNZClearV8(s, v)
	return nil
}

func execLdd(s *State, d Decoded) *Fault {
	v, f := readOperand16(s, d)
	if f != nil {
		return f
	}
	s.SetD(v)
	setNZClearV16(s, v)
	return nil
}

func execLds(s *State, d Decoded) *Fault {
	v, f := readOperand16(s, d)
	if f != nil {
		return f
	}
	s.SP = v
	setNZClearV16(s, v)
	return nil
}

// --- stores ---

func execStaa(s *State, d Decoded) *Fault {
	setNZClearV8(s, s.A)
	return s.WriteByte(d.Value, s.A)
}

func execStab(s *State, d Decoded) *Fault {
	setNZClearV8(s, s.B)
	return s.WriteByte(d.Value, s.B)
}

func execStd(s *State, d Decoded) *Fault {
	v := s.D()
	setNZClearV16(s, v)
	return writeOperand16(s, d.Value, v)
}

func execSts(s *State, d Decoded) *Fault {
	setNZClearV16(s, s.SP)
	return writeOperand16(s, d.Value, s.SP)
}

// --- accumulator-to-accumulator transfer ---

func execTab(s *State, d Decoded) *Fault {
	s.B = s.A
	setNZClearV8(s, s.B)
	return nil
}

func execTba(s *State, d Decoded) *Fault {
	s.A = s.B
	setNZClearV8(s, s.A)
	return nil
}

// --- 8-bit addition family ---

func execAba(s *State, d Decoded) *Fault {
	s.A = add8(s, s.A, s.B, false)
	return nil
}

func execAdca(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A = add8(s, s.A, v, s.Flag(FlagC))
	return nil
}

func execAdcb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B = add8(s, s.B, v, s.Flag(FlagC))
	return nil
}

func execAdda(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A = add8(s, s.A, v, false)
	return nil
}

func execAddb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B = add8(s, s.B, v, false)
	return nil
}

func execAddd(s *State, d Decoded) *Fault {
	v, f := readOperand16(s, d)
	if f != nil {
		return f
	}
	s.SetD(add16(s, s.D(), v))
	return nil
}

// --- 8/16-bit subtraction family ---

func execSba(s *State, d Decoded) *Fault {
	s.A = sub8(s, s.A, s.B, false)
	return nil
}

func execSuba(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A = sub8(s, s.A, v, false)
	return nil
}

func execSubb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B = sub8(s, s.B, v, false)
	return nil
}

func execSubd(s *State, d Decoded) *Fault {
	v, f := readOperand16(s, d)
	if f != nil {
		return f
	}
	s.SetD(sub16(s, s.D(), v))
	return nil
}

// --- logical family: AND/OR/EOR set N,Z and clear V ---

func execAnda(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A &= v
	setNZClearV8(s, s.A)
	return nil
}

func execAndb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B &= v
	setNZClearV8(s, s.B)
	return nil
}

func execOraa(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A |= v
	setNZClearV8(s, s.A)
	return nil
}

func execOrab(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B |= v
	setNZClearV8(s, s.B)
	return nil
}

func execEora(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.A ^= v
	setNZClearV8(s, s.A)
	return nil
}

func execEorb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	s.B ^= v
	setNZClearV8(s, s.B)
	return nil
}

// --- compare / test: same flag derivation as subtraction, result discarded ---

func execCmpa(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	sub8(s, s.A, v, false)
	return nil
}

func execCmpb(s *State, d Decoded) *Fault {
	v, f := readOperand8(s, d)
	if f != nil {
		return f
	}
	sub8(s, s.B, v, false)
	return nil
}

func execCba(s *State, d Decoded) *Fault {
	sub8(s, s.A, s.B, false)
	return nil
}

// --- unary register/memory family: NEG, COM, LSR, ROR, ASR, ASL/LSL, ROL, DEC, INC, TST, CLR ---
// Implemented generically over a get/set pair so the same logic serves the
// A-register, B-register, and Extended-memory forms.

type accessor struct {
	get func(s *State) (uint8, *Fault)
	set func(s *State, v uint8) *Fault
}

func regA() accessor {
	return accessor{
		get: func(s *State) (uint8, *Fault) { return s.A, nil },
		set: func(s *State, v uint8) *Fault { s.A = v; return nil },
	}
}

func regB() accessor {
	return accessor{
		get: func(s *State) (uint8, *Fault) { return s.B, nil },
		set: func(s *State, v uint8) *Fault { s.B = v; return nil },
	}
}

func memAt(d Decoded) accessor {
	return accessor{
		get: func(s *State) (uint8, *Fault) { return s.ReadByte(d.Value) },
		set: func(s *State, v uint8) *Fault { return s.WriteByte(d.Value, v) },
	}
}

func unaryOp(s *State, d Decoded, acc accessor, fn func(s *State, v uint8) uint8) *Fault {
	v, f := acc.get(s)
	if f != nil {
		return f
	}
	return acc.set(s, fn(s, v))
}

func negFn(s *State, v uint8) uint8 {
	result := sub8(s, 0, v, false)
	s.SetFlag(FlagC, v != 0)
	return result
}

func comFn(s *State, v uint8) uint8 {
	result := ^v
	setNZClearV8(s, result)
	s.SetFlag(FlagC, true)
	return result
}

func lsrFn(s *State, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := v >> 1
	shiftFlags(s, result, carryOut)
	return result
}

func rorFn(s *State, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := v >> 1
	if s.Flag(FlagC) {
		result |= 0x80
	}
	shiftFlags(s, result, carryOut)
	return result
}

func asrFn(s *State, v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := (v >> 1) | (v & 0x80)
	shiftFlags(s, result, carryOut)
	return result
}

func aslFn(s *State, v uint8) uint8 {
	carryOut := v&0x80 != 0
	result := v << 1
	shiftFlags(s, result, carryOut)
	return result
}

func rolFn(s *State, v uint8) uint8 {
	carryOut := v&0x80 != 0
	result := v << 1
	if s.Flag(FlagC) {
		result |= 0x01
	}
	shiftFlags(s, result, carryOut)
	return result
}

func decFn(s *State, v uint8) uint8 {
	result := v - 1
	s.SetFlag(FlagN, result&0x80 != 0)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagV, v == 0x80)
	return result
}

func incFn(s *State, v uint8) uint8 {
	result := v + 1
	s.SetFlag(FlagN, result&0x80 != 0)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagV, v == 0x7F)
	return result
}

func tstFn(s *State, v uint8) uint8 {
	setNZClearV8(s, v)
	s.SetFlag(FlagC, false)
	return v
}

func clrFn(s *State, v uint8) uint8 {
	clearFlags(s)
	return 0
}

func makeUnary(fn func(s *State, v uint8) uint8, acc func(d Decoded) accessor) ExecFunc {
	return func(s *State, d Decoded) *Fault {
		return unaryOp(s, d, acc(d), fn)
	}
}

func regAAccessor(d Decoded) accessor { return regA() }
func regBAccessor(d Decoded) accessor { return regB() }

var (
	execNega = makeUnary(negFn, regAAccessor)
	execNegb = makeUnary(negFn, regBAccessor)
	execNegMem = makeUnary(negFn, memAt)

	execComa = makeUnary(comFn, regAAccessor)
	execComb = makeUnary(comFn, regBAccessor)
	execComMem = makeUnary(comFn, memAt)

	execLsra = makeUnary(lsrFn, regAAccessor)
	execLsrb = makeUnary(lsrFn, regBAccessor)
	execLsrMem = makeUnary(lsrFn, memAt)

	execRora = makeUnary(rorFn, regAAccessor)
	execRorb = makeUnary(rorFn, regBAccessor)
	execRorMem = makeUnary(rorFn, memAt)

	execAsra = makeUnary(asrFn, regAAccessor)
	execAsrb = makeUnary(asrFn, regBAccessor)
	execAsrMem = makeUnary(asrFn, memAt)

	execAsla = makeUnary(aslFn, regAAccessor)
	execAslb = makeUnary(aslFn, regBAccessor)
	execAslMem = makeUnary(aslFn, memAt)

	execRola = makeUnary(rolFn, regAAccessor)
	execRolb = makeUnary(rolFn, regBAccessor)
	execRolMem = makeUnary(rolFn, memAt)

	execDeca = makeUnary(decFn, regAAccessor)
	execDecb = makeUnary(decFn, regBAccessor)
	execDecMem = makeUnary(decFn, memAt)

	execInca = makeUnary(incFn, regAAccessor)
	execIncb = makeUnary(incFn, regBAccessor)
	execIncMem = makeUnary(incFn, memAt)

	execTsta = makeUnary(tstFn, regAAccessor)
	execTstb = makeUnary(tstFn, regBAccessor)
	execTstMem = makeUnary(tstFn, memAt)

	execClra = makeUnary(clrFn, regAAccessor)
	execClrb = makeUnary(clrFn, regBAccessor)
	execClrMem = makeUnary(clrFn, memAt)
)

// --- MUL: D = A * B (unsigned), only C affected (bit 7 of the result's low byte, a rounding bit) ---

func execMul(s *State, d Decoded) *Fault {
	s.SetD(uint16(s.A) * uint16(s.B))
	s.SetFlag(FlagC, s.B&0x80 != 0)
	return nil
}

// --- branches: target = PC-after-fetch + displacement, per spec §4.3 ---

func takeBranch(s *State, d Decoded) {
	s.PC = uint16(int32(s.PC) + int32(int16(d.Value)))
}

func execBra(s *State, d Decoded) *Fault { takeBranch(s, d); return nil }
func execBrn(s *State, d Decoded) *Fault { return nil }

func execBcc(s *State, d Decoded) *Fault {
	if !s.Flag(FlagC) {
		takeBranch(s, d)
	}
	return nil
}

func execBcs(s *State, d Decoded) *Fault {
	if s.Flag(FlagC) {
		takeBranch(s, d)
	}
	return nil
}

func execBeq(s *State, d Decoded) *Fault {
	if s.Flag(FlagZ) {
		takeBranch(s, d)
	}
	return nil
}

func execBne(s *State, d Decoded) *Fault {
	if !s.Flag(FlagZ) {
		takeBranch(s, d)
	}
	return nil
}

func execBvc(s *State, d Decoded) *Fault {
	if !s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

func execBvs(s *State, d Decoded) *Fault {
	if s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

func execBpl(s *State, d Decoded) *Fault {
	if !s.Flag(FlagN) {
		takeBranch(s, d)
	}
	return nil
}

func execBmi(s *State, d Decoded) *Fault {
	if s.Flag(FlagN) {
		takeBranch(s, d)
	}
	return nil
}

// BGE takes when N xor V = 0.
func execBge(s *State, d Decoded) *Fault {
	if s.Flag(FlagN) == s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

// BLT is the complement of BGE.
func execBlt(s *State, d Decoded) *Fault {
	if s.Flag(FlagN) != s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

// BGT takes when Z or (N xor V) = 0.
func execBgt(s *State, d Decoded) *Fault {
	if !s.Flag(FlagZ) && s.Flag(FlagN) == s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

// BLE is the complement of BGT.
func execBle(s *State, d Decoded) *Fault {
	if s.Flag(FlagZ) || s.Flag(FlagN) != s.Flag(FlagV) {
		takeBranch(s, d)
	}
	return nil
}

// BHI takes when C or Z = 0.
func execBhi(s *State, d Decoded) *Fault {
	if !s.Flag(FlagC) && !s.Flag(FlagZ) {
		takeBranch(s, d)
	}
	return nil
}

// BLS is the complement of BHI.
func execBls(s *State, d Decoded) *Fault {
	if s.Flag(FlagC) || s.Flag(FlagZ) {
		takeBranch(s, d)
	}
	return nil
}

// --- subroutines and jumps ---

func execBsr(s *State, d Decoded) *Fault {
	pushWord(s, s.PC)
	takeBranch(s, d)
	return nil
}

func execJsr(s *State, d Decoded) *Fault {
	ret := s.PC
	s.PC = d.Value
	pushWord(s, ret)
	return nil
}

func execRts(s *State, d Decoded) *Fault {
	s.PC = popWord(s)
	return nil
}

func execJmp(s *State, d Decoded) *Fault {
	s.PC = d.Value
	return nil
}

// --- stack ops ---

func execPsha(s *State, d Decoded) *Fault { pushByte(s, s.A); return nil }
func execPshb(s *State, d Decoded) *Fault { pushByte(s, s.B); return nil }
func execPshx(s *State, d Decoded) *Fault { pushWord(s, s.X); return nil }

func execPula(s *State, d Decoded) *Fault { s.A = popByte(s); return nil }
func execPulb(s *State, d Decoded) *Fault { s.B = popByte(s); return nil }
func execPulx(s *State, d Decoded) *Fault { s.X = popWord(s); return nil }

func execDes(s *State, d Decoded) *Fault { s.SP--; return nil }
func execIns(s *State, d Decoded) *Fault { s.SP++; return nil }

package hc11

// Flag computation for the arithmetic and logical family. Ported from the
// same precomputed-table idiom the pack uses for Z80/6502-style flag
// derivation (carry/overflow/half-carry tables indexed by operand
// nibbles), adapted here to the 68HC11's S X H I N Z V C layout instead of
// rebuilding full lookup tables per instruction — the arithmetic is simple
// enough that deriving flags directly from the 16-bit widened result is
// both clearer and just as fast.

// add8 computes a+b+carryIn as an 8-bit result and sets C, V, Z, N, H on
// s.Status, leaving S, X, I untouched.
func add8(s *State, a, b uint8, carryIn bool) uint8 {
	var cin uint8
	if carryIn {
		cin = 1
	}
	wide := uint16(a) + uint16(b) + uint16(cin)
	result := uint8(wide)

	signed := int16(int8(a)) + int16(int8(b)) + int16(cin)

	half := (a&0x0F)+(b&0x0F)+cin > 0x0F

	s.SetFlag(FlagC, wide > 0xFF)
	s.SetFlag(FlagV, signed < -128 || signed > 127)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagN, result&0x80 != 0)
	s.SetFlag(FlagH, half)
	return result
}

// sub8 computes a-b-carryIn (borrow) as an 8-bit result and sets C, V, Z, N.
// H is left untouched: the half-carry flag is only specified for additive
// operations (spec §9 design note).
func sub8(s *State, a, b uint8, borrowIn bool) uint8 {
	var bin int16
	if borrowIn {
		bin = 1
	}
	wide := int16(a) - int16(b) - bin
	result := uint8(wide)

	signed := int16(int8(a)) - int16(int8(b)) - bin

	s.SetFlag(FlagC, wide < 0)
	s.SetFlag(FlagV, signed < -128 || signed > 127)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagN, result&0x80 != 0)
	return result
}

// add16 is the 16-bit analogue of add8, used by ADDD.
func add16(s *State, a, b uint16) uint16 {
	wide := uint32(a) + uint32(b)
	result := uint16(wide)

	signed := int32(int16(a)) + int32(int16(b))

	s.SetFlag(FlagC, wide > 0xFFFF)
	s.SetFlag(FlagV, signed < -32768 || signed > 32767)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagN, result&0x8000 != 0)
	return result
}

// sub16 is the 16-bit analogue of sub8, used by SUBD.
func sub16(s *State, a, b uint16) uint16 {
	wide := int32(a) - int32(b)
	result := uint16(wide)

	signed := int32(int16(a)) - int32(int16(b))

	s.SetFlag(FlagC, wide < 0)
	s.SetFlag(FlagV, signed < -32768 || signed > 32767)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagN, result&0x8000 != 0)
	return result
}

// setNZClearV8 sets N and Z from an 8-bit result and clears V, the shared
// tail of every logical AND/OR/EOR and the plain loads/transfers.
func setNZClearV8(s *State, result uint8) {
	s.SetFlag(FlagN, result&0x80 != 0)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagV, false)
}

func setNZClearV16(s *State, result uint16) {
	s.SetFlag(FlagN, result&0x8000 != 0)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagV, false)
}

// clearFlags implements CLR/CLRA/CLRB/CLRD: resets N, sets Z, clears V
// and C, preserving S, X, H, I.
func clearFlags(s *State) {
	s.SetFlag(FlagN, false)
	s.SetFlag(FlagZ, true)
	s.SetFlag(FlagV, false)
	s.SetFlag(FlagC, false)
}

// shiftFlags finishes a shift/rotate: N and Z from the result, C from the
// bit shifted out, and V = N xor C per spec §4.3.
func shiftFlags(s *State, result uint8, carryOut bool) {
	s.SetFlag(FlagN, result&0x80 != 0)
	s.SetFlag(FlagZ, result == 0)
	s.SetFlag(FlagC, carryOut)
	s.SetFlag(FlagV, s.Flag(FlagN) != carryOut)
}

package hc11

// Engine drives the fetch-decode-execute loop over a State. The dispatch
// table is derived from the instruction table once, at construction, per
// spec §9's note against global mutable dispatch state: it lives on the
// Engine value, not as a package-level array.
type Engine struct {
	State    *State
	dispatch [256]*dispatchEntry
}

// NewEngine wires a fresh dispatch table to the given machine state. The
// caller is expected to have already run the assembler and positioned
// State.PC at the program's entry point.
func NewEngine(s *State) *Engine {
	return &Engine{State: s, dispatch: BuildDispatchTable()}
}

// next8 reads the byte at PC and advances PC past it. Used both for the
// initial opcode fetch and for each subsequent operand byte, so that byte
// N of an instruction is always read before PC is advanced to byte N+1 —
// the same effective order the reference implementation's NEXT8 macro and
// deferred end-of-instruction pc++ produce together.
func (e *Engine) next8() uint8 {
	s := e.State
	v := s.Memory[s.PC]
	s.PC++
	return v
}

func (e *Engine) next16() uint16 {
	hi := e.next8()
	lo := e.next8()
	return uint16(hi)<<8 | uint16(lo)
}

func (e *Engine) decodeOperand(d *InstrDescriptor, mode AddressingMode) Decoded {
	switch mode {
	case Immediate:
		if d.Immediate16 {
			return Decoded{Mode: mode, Value: e.next16()}
		}
		return Decoded{Mode: mode, Value: uint16(e.next8())}
	case Direct:
		return Decoded{Mode: mode, Value: uint16(e.next8())}
	case Extended:
		return Decoded{Mode: mode, Value: e.next16()}
	case Relative:
		return Decoded{Mode: mode, Value: uint16(int16(int8(e.next8())))}
	default: // Inherent, None
		return Decoded{Mode: mode}
	}
}

// Step executes exactly one instruction, or detects the 0x00 termination
// sentinel and marks the machine halted without executing anything.
func (e *Engine) Step() *Fault {
	s := e.State
	if s.Memory[s.PC] == 0x00 {
		s.halted = true
		return nil
	}

	pc := s.PC
	opcode := e.next8()
	entry := e.dispatch[opcode]
	if entry == nil {
		s.halted = true
		return execFault(BadOpcode, pc, "no dispatch entry for opcode 0x%02X", opcode)
	}

	d := e.decodeOperand(entry.Descriptor, entry.Mode)
	if f := entry.Descriptor.Exec[entry.Mode](s, d); f != nil {
		s.halted = true
		// Port faults are raised without a PC; attach the address of the
		// faulting instruction.
		f.PC = pc
		return f
	}
	return nil
}

// Run executes instructions until termination or a fatal fault.
func (e *Engine) Run() *Fault {
	for !e.State.halted {
		if f := e.Step(); f != nil {
			return f
		}
	}
	return nil
}

// --- stack discipline (spec §4.3) ---

func pushByte(s *State, v uint8) {
	s.Memory[s.SP] = v
	s.SP--
}

func popByte(s *State) uint8 {
	s.SP++
	return s.Memory[s.SP]
}

func pushWord(s *State, v uint16) {
	pushByte(s, uint8(v))
	pushByte(s, uint8(v>>8))
}

func popWord(s *State) uint16 {
	hi := popByte(s)
	lo := popByte(s)
	return uint16(hi)<<8 | uint16(lo)
}

// --- memory/port-aware operand access for Direct/Extended modes ---

func readOperand8(s *State, d Decoded) (uint8, *Fault) {
	if d.Mode == Immediate {
		return uint8(d.Value), nil
	}
	return s.ReadByte(d.Value)
}

func readOperand16(s *State, d Decoded) (uint16, *Fault) {
	if d.Mode == Immediate {
		return d.Value, nil
	}
	hi, f := s.ReadByte(d.Value)
	if f != nil {
		return 0, f
	}
	lo, f := s.ReadByte(d.Value + 1)
	if f != nil {
		return 0, f
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func writeOperand16(s *State, addr uint16, v uint16) *Fault {
	if f := s.WriteByte(addr, uint8(v>>8)); f != nil {
		return f
	}
	return s.WriteByte(addr+1, uint8(v))
}

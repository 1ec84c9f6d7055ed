package hc11

import "strings"

// Assemble runs the two-pass assembler over UTF-8 source text and returns
// a freshly constructed machine state with the program loaded into
// memory and PC set to the entry point (the last org that preceded the
// first instruction, or 0x0000 if the source never emits an org before
// its first instruction).
func Assemble(source string) (*State, *Fault) {
	lines := strings.Split(source, "\n")

	labels, f := pass1(lines)
	if f != nil {
		return nil, f
	}

	state := NewState()
	state.Labels = labels

	entryPC, f := pass2(lines, state)
	if f != nil {
		return nil, f
	}
	state.PC = entryPC
	return state, nil
}

// pass1 walks the source once, assigning every label its final address.
// The cursor tracked here must reach the same end-of-file value pass2's
// cursor reaches (spec §8's pass-1/pass-2 agreement property).
func pass1(lines []string) ([]Label, *Fault) {
	var labels []Label
	cursor := uint16(0)

	for i, raw := range lines {
		lineNo := i + 1
		info, f := classifyLine(raw, lineNo)
		if f != nil {
			return nil, f
		}
		if info == nil {
			continue
		}

		switch {
		case info.Directive == "equ":
			val, ok := parseNumber(info.DirectiveOperand)
			if !ok {
				return nil, asmFault(LexError, lineNo, "malformed equ value %q", info.DirectiveOperand)
			}
			if len(labels) >= MaxLabels {
				return nil, asmFault(SyntaxError, lineNo, "label table full")
			}
			labels = append(labels, Label{Name: info.Label, Value: val, Kind: KindConstant})

		case info.Directive == "org":
			addr, ok := parseNumber(info.DirectiveOperand)
			if !ok {
				return nil, asmFault(LexError, lineNo, "malformed org address %q", info.DirectiveOperand)
			}
			cursor = addr
			// org never records a label, even when grammatically prefixed
			// by one (spec §4.2 pass-1 step 2).

		case info.Mnemonic == "" && info.Label != "":
			if len(labels) >= MaxLabels {
				return nil, asmFault(SyntaxError, lineNo, "label table full")
			}
			labels = append(labels, Label{Name: info.Label, Value: cursor, Kind: KindLabel})

		case info.Mnemonic != "":
			desc, ok := LookupByName(info.Mnemonic)
			if !ok {
				return nil, asmFault(UnknownMnemonic, lineNo, "unknown mnemonic %q", info.Mnemonic)
			}
			if info.Label != "" {
				if len(labels) >= MaxLabels {
					return nil, asmFault(SyntaxError, lineNo, "label table full")
				}
				labels = append(labels, Label{Name: info.Label, Value: cursor, Kind: KindNotADirective})
			}

			opText := ""
			if info.HasOperand {
				opText = info.OperandText
			}
			resolved, f := classifyOperand(opText, desc, lineNo)
			if f != nil {
				return nil, f
			}
			cursor += uint16(1 + OperandSize(resolved.Mode, desc.Immediate16))
		}
	}

	return labels, nil
}

// pass2 re-scans the source with a fresh cursor, resolving operands
// against the label table pass1 produced and emitting bytes into
// state.Memory.
func pass2(lines []string, state *State) (uint16, *Fault) {
	cursor := uint16(0)
	entryPC := uint16(0)
	sawInstruction := false

	for i, raw := range lines {
		lineNo := i + 1
		info, f := classifyLine(raw, lineNo)
		if f != nil {
			return 0, f
		}
		if info == nil {
			continue
		}

		switch {
		case info.Directive == "org":
			addr, _ := parseNumber(info.DirectiveOperand)
			cursor = addr
			if !sawInstruction {
				entryPC = addr
			}

		case info.Directive == "equ":
			// no bytes emitted, cursor unchanged

		case info.Mnemonic == "":
			// pure label line, no bytes

		case info.Mnemonic != "":
			sawInstruction = true
			desc, ok := LookupByName(info.Mnemonic)
			if !ok {
				return 0, asmFault(UnknownMnemonic, lineNo, "unknown mnemonic %q", info.Mnemonic)
			}

			opText := ""
			if info.HasOperand {
				opText = info.OperandText
			}
			resolved, f := classifyOperand(opText, desc, lineNo)
			if f != nil {
				return 0, f
			}

			mode := resolved.Mode
			var value uint16

			if resolved.IsIdent {
				lbl, ok := state.FindLabel(resolved.Ident)
				if !ok {
					return 0, asmFault(UnknownSymbol, lineNo, "unknown symbol %q", resolved.Ident)
				}
				value = lbl.Value
				if mode == Relative {
					disp := int32(value) - int32(cursor) - 2
					if disp < -128 || disp > 127 {
						return 0, asmFault(RelativeOutOfRange, lineNo, "relative displacement to %q out of range", resolved.Ident)
					}
					value = uint16(uint8(int8(disp)))
				}
			} else {
				value = resolved.Literal
				if mode == Relative {
					if value > 0xFF {
						return 0, asmFault(RelativeOutOfRange, lineNo, "relative literal 0x%X does not fit in 8 bits", value)
					}
					value = uint16(uint8(value))
				}
			}

			if !desc.Supports(mode) {
				return 0, asmFault(InvalidAddressingMode, lineNo, "%s does not support %s addressing", info.Mnemonic, mode)
			}
			if mode == Immediate && !desc.Immediate16 && value > 0xFF {
				return 0, asmFault(ImmediateTooLarge, lineNo, "immediate operand 0x%X exceeds 0xFF", value)
			}
			if mode == Direct && value > 0xFF {
				return 0, asmFault(DirectOutOfRange, lineNo, "direct operand 0x%X exceeds 0xFF", value)
			}

			opcode, ok := desc.Opcodes[mode]
			if !ok {
				return 0, asmFault(InvalidAddressingMode, lineNo, "%s has no encoding for %s", info.Mnemonic, mode)
			}
			state.Memory[cursor] = opcode
			cursor++

			switch mode {
			case Inherent:
				// no operand bytes
			case Direct, Relative:
				state.Memory[cursor] = uint8(value)
				cursor++
			case Extended:
				state.Memory[cursor] = uint8(value >> 8)
				state.Memory[cursor+1] = uint8(value)
				cursor += 2
			case Immediate:
				if desc.Immediate16 {
					state.Memory[cursor] = uint8(value >> 8)
					state.Memory[cursor+1] = uint8(value)
					cursor += 2
				} else {
					state.Memory[cursor] = uint8(value)
					cursor++
				}
			}
		}
	}

	return entryPC, nil
}

// Package asmfmt formats a hc11.State for human consumption: the memory
// dump printer, register/status readouts, and the label and port listings
// used by the interactive shell. None of this belongs in the core engine —
// spec scope treats the pretty-printer as an external collaborator of the
// emulator, the same way the reference implementation keeps its dump
// routine in main.c rather than emulator.h.
package asmfmt

import (
	"fmt"
	"strings"

	"github.com/tkossen/hc11emu/hc11"
)

// BytesPerDumpLine matches the reference dump's 16-byte row width.
const BytesPerDumpLine = 16

// DumpRange renders memory[start:start+length) as "0xXX " hex bytes, matching
// the reference dump_memory's byte formatting. With readable set it breaks a
// newline every BytesPerDumpLine bytes; otherwise the whole range is emitted
// as one continuous run, per spec §6.
func DumpRange(s *hc11.State, start uint16, length int, readable bool) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		addr := int(start) + i
		if addr > 0xFFFF {
			break
		}
		if readable && i > 0 && i%BytesPerDumpLine == 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "0x%02x ", s.Memory[addr])
	}
	b.WriteByte('\n')
	return b.String()
}

// Registers renders the accumulators, index register, stack pointer, and
// program counter on one line.
func Registers(s *hc11.State) string {
	return fmt.Sprintf("A=%02X B=%02X D=%04X X=%04X SP=%04X PC=%04X",
		s.A, s.B, s.D(), s.X, s.SP, s.PC)
}

// Status renders the condition-code register both as a raw hex byte and as
// its eight named bits, set bits uppercase.
func Status(s *hc11.State) string {
	bits := []struct {
		mask byte
		name string
	}{
		{hc11.FlagS, "s"}, {hc11.FlagX, "x"}, {hc11.FlagH, "h"}, {hc11.FlagI, "i"},
		{hc11.FlagN, "n"}, {hc11.FlagZ, "z"}, {hc11.FlagV, "v"}, {hc11.FlagC, "c"},
	}
	var letters strings.Builder
	for _, bit := range bits {
		if s.Flag(bit.mask) {
			letters.WriteString(strings.ToUpper(bit.name))
		} else {
			letters.WriteString(bit.name)
		}
	}
	return fmt.Sprintf("CCR=%02X [%s]", s.Status, letters.String())
}

// Labels renders the label table, one entry per line, in assembly order.
func Labels(s *hc11.State) string {
	var b strings.Builder
	for _, l := range s.Labels {
		fmt.Fprintf(&b, "%-16s = %04X\n", l.Name, l.Value)
	}
	return b.String()
}

// Ports renders the latched port and direction-register values for the
// implemented ports (A, C, D always; B write-only, E input-only).
func Ports(s *hc11.State) string {
	p := s.Ports
	return fmt.Sprintf(
		"PORTA=%02X DDRA=%02X  PORTB=%02X  PORTC=%02X DDRC=%02X  PORTD=%02X DDRD=%02X  PORTE=%02X",
		p.PortA, s.Memory[hc11.AddrDDRA], p.PortB, p.PortC, s.Memory[hc11.AddrDDRC],
		p.PortD, s.Memory[hc11.AddrDDRD], p.PortE)
}

package hc11

import (
	"fmt"

	"github.com/pkg/errors"
)

// FaultKind is the closed taxonomy of fatal error conditions the assembler
// and engine can raise. Every fault is terminal: callers are expected to
// report and stop, not retry.
type FaultKind int

const (
	LexError FaultKind = iota
	SyntaxError
	UnknownMnemonic
	InvalidAddressingMode
	ImmediateTooLarge
	DirectOutOfRange
	RelativeOutOfRange
	UnknownSymbol
	IoError
	PortNotImplemented
	BadOpcode
)

func (k FaultKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case UnknownMnemonic:
		return "UnknownMnemonic"
	case InvalidAddressingMode:
		return "InvalidAddressingMode"
	case ImmediateTooLarge:
		return "ImmediateTooLarge"
	case DirectOutOfRange:
		return "DirectOutOfRange"
	case RelativeOutOfRange:
		return "RelativeOutOfRange"
	case UnknownSymbol:
		return "UnknownSymbol"
	case IoError:
		return "IoError"
	case PortNotImplemented:
		return "PortNotImplemented"
	case BadOpcode:
		return "BadOpcode"
	default:
		return "UnknownFault"
	}
}

// Fault is the error type raised by every fatal condition in this package.
// Assembly faults carry a 1-based source line number; execution faults
// carry the PC at the time of the fault.
type Fault struct {
	Kind FaultKind
	Line int // 1-based source line; 0 if not applicable
	PC   uint16
	atPC bool
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (f *Fault) Error() string {
	switch {
	case f.atPC:
		return fmt.Sprintf("%s at PC=0x%04X: %s", f.Kind, f.PC, f.Msg)
	case f.Line > 0:
		return fmt.Sprintf("%s at line %d: %s", f.Kind, f.Line, f.Msg)
	default:
		return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
	}
}

// Unwrap lets errors.Is/errors.As reach the wrapped cause, including a
// github.com/pkg/errors stack when one was attached by asmFault, execFault
// or NewIOFault.
func (f *Fault) Unwrap() error {
	return f.Err
}

func asmFault(kind FaultKind, line int, format string, args ...any) *Fault {
	msg := fmt.Sprintf(format, args...)
	return &Fault{Kind: kind, Line: line, Msg: msg, Err: errors.New(msg)}
}

func execFault(kind FaultKind, pc uint16, format string, args ...any) *Fault {
	msg := fmt.Sprintf(format, args...)
	return &Fault{Kind: kind, PC: pc, atPC: true, Msg: msg, Err: errors.New(msg)}
}

// NewIOFault builds an IoError fault from a file I/O failure, for callers
// outside this package (the cmd/hc11emu entry point) that need to report a
// load failure through the same taxonomy as assembly and execution faults.
func NewIOFault(cause error, format string, args ...any) *Fault {
	msg := fmt.Sprintf(format, args...)
	return &Fault{Kind: IoError, Msg: msg, Err: errors.WithMessage(cause, msg)}
}

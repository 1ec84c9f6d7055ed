package hc11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleImmediateLoadAndAdd(t *testing.T) {
	src := "    org $0000\n" +
		"    ldaa #$05\n" +
		"    addb #$03\n"
	state, f := Assemble(src)
	require.Nil(t, f)
	assert.Equal(t, uint16(0x0000), state.PC)
	assert.Equal(t, byte(0x86), state.Memory[0])
	assert.Equal(t, byte(0x05), state.Memory[1])
	assert.Equal(t, byte(0xCB), state.Memory[2])
	assert.Equal(t, byte(0x03), state.Memory[3])
}

func TestAssembleForwardLabelAndRelativeBranch(t *testing.T) {
	src := "    org $0010\n" +
		"    bra target\n" +
		"    nop\n" +
		"target nop\n"
	state, f := Assemble(src)
	require.Nil(t, f)
	// bra (2 bytes) then nop (1 byte) then target: target = 0x13, disp = target - opcode_addr - 2 = 1.
	assert.Equal(t, byte(0x20), state.Memory[0x10])
	assert.Equal(t, byte(0x01), state.Memory[0x11])
}

func TestAssembleSubroutineCallReturn(t *testing.T) {
	src := "    org $0000\n" +
		"    jsr sub\n" +
		"    nop\n" +
		"sub nop\n" +
		"    rts\n"
	state, f := Assemble(src)
	require.Nil(t, f)
	assert.Equal(t, byte(0xBD), state.Memory[0]) // JSR extended
	assert.Equal(t, uint16(0x0004), uint16(state.Memory[1])<<8|uint16(state.Memory[2]))
	assert.Equal(t, byte(0x39), state.Memory[5]) // RTS
}

func TestAssembleDirectVsExtendedAddressing(t *testing.T) {
	src := "    org $0000\n" +
		"    ldaa $20\n" + // bare literal <= 0xFF resolves Direct
		"    ldaa $1234\n" // bare literal > 0xFF resolves Extended
	state, f := Assemble(src)
	require.Nil(t, f)
	assert.Equal(t, byte(0x96), state.Memory[0]) // Direct opcode
	assert.Equal(t, byte(0x20), state.Memory[1])
	assert.Equal(t, byte(0xB6), state.Memory[2]) // Extended opcode
	assert.Equal(t, byte(0x12), state.Memory[3])
	assert.Equal(t, byte(0x34), state.Memory[4])
}

func TestAssemblePortWrite(t *testing.T) {
	src := "    org $0000\n" +
		"    ldaa #$FF\n" +
		"    staa $1000\n" // PORTA, extended form over port range
	state, f := Assemble(src)
	require.Nil(t, f)
	engine := NewEngine(state)
	require.Nil(t, engine.Run())
	got, ferr := state.ReadByte(AddrPORTA)
	require.Nil(t, ferr)
	assert.Equal(t, state.Memory[AddrDDRA], got)
}

func TestAssemblePortDirectionMasking(t *testing.T) {
	src := "    org $0000\n" +
		"    ldaa #$FF\n" +
		"    staa $1001\n" // DDRA write, masked to 0x88 | preserved 0x70
	state, f := Assemble(src)
	require.Nil(t, f)
	engine := NewEngine(state)
	require.Nil(t, engine.Run())
	assert.Equal(t, uint8(0xF8), state.Memory[AddrDDRA]) // reset default 0x70 preserved | 0x88 from write
}

func TestAssembleEquConstant(t *testing.T) {
	src := "count equ $10\n" +
		"    org $0000\n" +
		"    ldaa #count\n"
	state, f := Assemble(src)
	require.Nil(t, f)
	assert.Equal(t, byte(0x86), state.Memory[0])
	assert.Equal(t, byte(0x10), state.Memory[1])
}

func TestAssembleUnknownMnemonicFault(t *testing.T) {
	_, f := Assemble("    frobnicate #1\n")
	require.NotNil(t, f)
	assert.Equal(t, UnknownMnemonic, f.Kind)
}

func TestAssembleUnknownSymbolFault(t *testing.T) {
	_, f := Assemble("    bra nowhere\n")
	require.NotNil(t, f)
	assert.Equal(t, UnknownSymbol, f.Kind)
}

func TestAssembleImmediateTooLargeFault(t *testing.T) {
	_, f := Assemble("    ldaa #$1FF\n")
	require.NotNil(t, f)
	assert.Equal(t, ImmediateTooLarge, f.Kind)
}

func TestAssembleRelativeOutOfRangeFault(t *testing.T) {
	src := "    org $0000\n    bra target\n"
	for i := 0; i < 200; i++ {
		src += "    nop\n"
	}
	src += "target nop\n"
	_, f := Assemble(src)
	require.NotNil(t, f)
	assert.Equal(t, RelativeOutOfRange, f.Kind)
}

func TestAssembleEntryPointDefaultsToZero(t *testing.T) {
	state, f := Assemble("    nop\n")
	require.Nil(t, f)
	assert.Equal(t, uint16(0x0000), state.PC)
}

func TestAssembleEntryPointUsesLastOrgBeforeFirstInstruction(t *testing.T) {
	state, f := Assemble("    org $8000\n    nop\n")
	require.Nil(t, f)
	assert.Equal(t, uint16(0x8000), state.PC)
}

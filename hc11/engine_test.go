package hc11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineHaltsOnZeroOpcode(t *testing.T) {
	s := NewState()
	s.Memory[0] = 0x00
	e := NewEngine(s)
	require.Nil(t, e.Step())
	assert.True(t, s.Halted())
	assert.Equal(t, uint16(0), s.PC)
}

func TestEngineLoadAddStoreEndToEnd(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldaa #$05\n" +
			"    adda #$03\n" +
			"    staa $20\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x08), state.A)
	assert.Equal(t, byte(0x08), state.Memory[0x20])
	assert.False(t, state.Flag(FlagZ))
	assert.False(t, state.Flag(FlagN))
	assert.False(t, state.Flag(FlagC))
}

func TestEngineAddSetsCarryAndZero(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldaa #$FF\n" +
			"    adda #$01\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x00), state.A)
	assert.True(t, state.Flag(FlagZ))
	assert.True(t, state.Flag(FlagC))
	assert.True(t, state.Flag(FlagH))
}

func TestEngineDDRCStoreWritesThroughToMemory(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldaa #$0F\n" +
			"    staa $1007\n") // DDRC
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, byte(0x0F), state.Memory[0x1007])
}

func TestEngineLddOnUnimplementedPortFaults(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldd $1005\n") // PORTF, unimplemented
	require.Nil(t, f)
	e := NewEngine(state)
	ferr := e.Run()
	require.NotNil(t, ferr)
	assert.Equal(t, PortNotImplemented, ferr.Kind)
}

func TestEngineSubtractionSetsOverflowClearsNegative(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldaa #$80\n" +
			"    suba #$01\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x7F), state.A)
	assert.True(t, state.Flag(FlagV))
	assert.False(t, state.Flag(FlagN))
}

func TestEngineBranchTargetsForwardLabel(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    ldaa #$00\n" +
			"    beq target\n" +
			"    ldaa #$FF\n" +
			"target staa $30\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x00), state.A)
	assert.Equal(t, byte(0x00), state.Memory[0x30])
}

func TestEngineSubroutineCallAndReturn(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    lds #$00FF\n" +
			"    jsr sub\n" +
			"    staa $40\n" +
			"    org $0010\n" +
			"sub ldaa #$2A\n" +
			"    rts\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x2A), state.A)
	assert.Equal(t, byte(0x2A), state.Memory[0x40])
	assert.Equal(t, uint16(0x00FF), state.SP)
}

func TestEngineMulAffectsOnlyCarry(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    sec\n" +
			"    ldaa #$10\n" +
			"    ldab #$02\n" +
			"    mul\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint16(0x0020), state.D())
	assert.False(t, state.Flag(FlagC)) // bit 7 of the result's low byte (0x20) is clear
}

func TestEngineClrResetsNVCSetsZPreservesOthers(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    sei\n" +
			"    ldaa #$FF\n" +
			"    sec\n" +
			"    clra\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x00), state.A)
	assert.True(t, state.Flag(FlagZ))
	assert.False(t, state.Flag(FlagN))
	assert.False(t, state.Flag(FlagV))
	assert.False(t, state.Flag(FlagC))
	assert.True(t, state.Flag(FlagI)) // preserved
}

func TestEngineStackPushPullRoundTrips(t *testing.T) {
	state, f := Assemble(
		"    org $0000\n" +
			"    lds #$00FF\n" +
			"    ldaa #$77\n" +
			"    psha\n" +
			"    clra\n" +
			"    pula\n")
	require.Nil(t, f)
	e := NewEngine(state)
	require.Nil(t, e.Run())
	assert.Equal(t, uint8(0x77), state.A)
	assert.Equal(t, uint16(0x00FF), state.SP)
}

func TestEngineBadOpcodeFaultsAndHalts(t *testing.T) {
	s := NewState()
	s.Memory[0] = 0x02 // never assigned in the dispatch table
	e := NewEngine(s)
	f := e.Step()
	require.NotNil(t, f)
	assert.Equal(t, BadOpcode, f.Kind)
	assert.True(t, s.Halted())
}

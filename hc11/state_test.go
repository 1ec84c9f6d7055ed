package hc11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDAndSetDInvariant(t *testing.T) {
	s := NewState()
	s.SetD(0x1234)
	assert.Equal(t, uint8(0x12), s.A)
	assert.Equal(t, uint8(0x34), s.B)
	assert.Equal(t, uint16(0x1234), s.D())
}

func TestFlagSetAndClearLeavesOtherBitsAlone(t *testing.T) {
	s := NewState()
	s.Status = 0xFF
	s.SetFlag(FlagZ, false)
	assert.False(t, s.Flag(FlagZ))
	assert.True(t, s.Flag(FlagC))
	assert.True(t, s.Flag(FlagN))
	assert.Equal(t, uint8(0xFF&^FlagZ), s.Status)
}

func TestFindLabelMissReturnsFalse(t *testing.T) {
	s := NewState()
	_, ok := s.FindLabel("nope")
	assert.False(t, ok)
}

func TestNewStateHasNoHaltedFlagSet(t *testing.T) {
	s := NewState()
	assert.False(t, s.Halted())
}

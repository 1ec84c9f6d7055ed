package hc11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortsResetDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, uint8(0xF8), s.Memory[AddrDDRA])
	assert.Equal(t, uint8(0xFF), s.Memory[AddrDDRC])
	assert.Equal(t, uint8(0xFF), s.Memory[AddrDDRD])
}

func TestPortAReadRespectsDirectionMask(t *testing.T) {
	s := NewState()
	s.Memory[AddrDDRA] = 0x88
	s.Ports.PortA = 0xFF
	v, f := s.ReadByte(AddrPORTA)
	require.Nil(t, f)
	assert.Equal(t, uint8(0x88), v) // only output-configured bits read back
}

func TestPortBIsWriteOnly(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(AddrPORTB, 0x55))
	v, f := s.ReadByte(AddrPORTB)
	require.Nil(t, f)
	assert.Equal(t, uint8(0), v)
}

func TestPortEIsInputOnly(t *testing.T) {
	s := NewState()
	s.Ports.PortE = 0x3C // externally latched
	require.Nil(t, s.WriteByte(AddrPORTE, 0xFF))
	v, f := s.ReadByte(AddrPORTE)
	require.Nil(t, f)
	assert.Equal(t, uint8(0x3C), v) // write was ignored
}

func TestPortDDRAWritePreservesReservedBits(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(AddrDDRA, 0x00))
	assert.Equal(t, uint8(0x70), s.Memory[AddrDDRA]) // reserved 0x70 preserved, configurable bits cleared
}

func TestPortDDRDWriteIsMaskedTo6Bits(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(AddrDDRD, 0xFF))
	assert.Equal(t, uint8(0x3F), s.Memory[AddrDDRD])
}

func TestDDRWritesThroughToMemory(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(AddrDDRC, 0x0F))
	assert.Equal(t, uint8(0x0F), s.Memory[AddrDDRC])

	v, f := s.ReadByte(AddrDDRC)
	require.Nil(t, f)
	assert.Equal(t, uint8(0x0F), v)
}

func TestUnimplementedPortsFault(t *testing.T) {
	s := NewState()
	for _, addr := range []uint16{AddrPORTF, AddrPORTG, AddrDDRG} {
		_, f := s.ReadByte(addr)
		require.NotNil(t, f)
		assert.Equal(t, PortNotImplemented, f.Kind)

		f = s.WriteByte(addr, 0x01)
		require.NotNil(t, f)
		assert.Equal(t, PortNotImplemented, f.Kind)
	}
}

func TestPortCReadWriteRoundTrip(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(AddrPORTC, 0xAA))
	v, f := s.ReadByte(AddrPORTC)
	require.Nil(t, f)
	assert.Equal(t, uint8(0xAA), v) // DDRC defaults to 0xFF, all bits output
}

func TestAddressOutsidePortRangeIsPlainMemory(t *testing.T) {
	s := NewState()
	require.Nil(t, s.WriteByte(0x0FFF, 0x42))
	v, f := s.ReadByte(0x0FFF)
	require.Nil(t, f)
	assert.Equal(t, uint8(0x42), v)
}

package hc11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberPrefixes(t *testing.T) {
	v, ok := parseNumber("$FF")
	require.True(t, ok)
	assert.Equal(t, uint16(0xFF), v)

	v, ok = parseNumber("%1010")
	require.True(t, ok)
	assert.Equal(t, uint16(10), v)

	v, ok = parseNumber("42")
	require.True(t, ok)
	assert.Equal(t, uint16(42), v)

	_, ok = parseNumber("not-a-number")
	assert.False(t, ok)
}

func TestClassifyLineBlankAndComment(t *testing.T) {
	info, f := classifyLine("", 1)
	require.Nil(t, f)
	assert.Nil(t, info)

	info, f = classifyLine("* full line comment", 2)
	require.Nil(t, f)
	assert.Nil(t, info)

	info, f = classifyLine("    nop ; trailing comment", 3)
	require.Nil(t, f)
	require.NotNil(t, info)
	assert.Equal(t, "nop", info.Mnemonic)
}

func TestClassifyLineColumnZeroLabel(t *testing.T) {
	info, f := classifyLine("loop nop", 1)
	require.Nil(t, f)
	require.NotNil(t, info)
	assert.Equal(t, "loop", info.Label)
	assert.Equal(t, "nop", info.Mnemonic)
}

func TestClassifyLineBareLabelOnly(t *testing.T) {
	info, f := classifyLine("target", 1)
	require.Nil(t, f)
	require.NotNil(t, info)
	assert.Equal(t, "target", info.Label)
	assert.Equal(t, "", info.Mnemonic)
}

func TestClassifyLineEquRequiresExactlyThreeTokens(t *testing.T) {
	_, f := classifyLine("count equ", 1)
	require.NotNil(t, f)
	assert.Equal(t, SyntaxError, f.Kind)
}

func TestClassifyLineOrgWithoutLabel(t *testing.T) {
	info, f := classifyLine("    org $8000", 1)
	require.Nil(t, f)
	require.NotNil(t, info)
	assert.Equal(t, "org", info.Directive)
	assert.Equal(t, "$8000", info.DirectiveOperand)
}

func TestClassifyLineTooManyTokensFaults(t *testing.T) {
	_, f := classifyLine("    ldaa #$01 garbage", 1)
	require.NotNil(t, f)
	assert.Equal(t, LexError, f.Kind)
}

func TestClassifyOperandImmediateDirectExtendedPrefixes(t *testing.T) {
	ldaa, ok := LookupByName("ldaa")
	require.True(t, ok)

	r, f := classifyOperand("#$10", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Immediate, r.Mode)
	assert.Equal(t, uint16(0x10), r.Literal)

	r, f = classifyOperand("<$10", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Direct, r.Mode)

	r, f = classifyOperand(">$10", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Extended, r.Mode)
}

func TestClassifyOperandBareBelowAndAbove255(t *testing.T) {
	ldaa, ok := LookupByName("ldaa")
	require.True(t, ok)

	r, f := classifyOperand("$FF", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Direct, r.Mode)

	r, f = classifyOperand("$100", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Extended, r.Mode)
}

func TestClassifyOperandRelativeOnlySpecialCase(t *testing.T) {
	bra, ok := LookupByName("bra")
	require.True(t, ok)

	r, f := classifyOperand("somelabel", bra, 1)
	require.Nil(t, f)
	assert.Equal(t, Relative, r.Mode)
	assert.True(t, r.IsIdent)

	r, f = classifyOperand("$05", bra, 1)
	require.Nil(t, f)
	assert.Equal(t, Relative, r.Mode)
	assert.False(t, r.IsIdent)
}

func TestClassifyOperandEquIdentifierUnderPrefixes(t *testing.T) {
	ldaa, ok := LookupByName("ldaa")
	require.True(t, ok)

	r, f := classifyOperand("#count", ldaa, 1)
	require.Nil(t, f)
	assert.Equal(t, Immediate, r.Mode)
	assert.True(t, r.IsIdent)
	assert.Equal(t, "count", r.Ident)
}

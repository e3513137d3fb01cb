package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallOpRoundTrip(t *testing.T) {
	for argc := 0; argc <= MaxCallArity; argc++ {
		c := CallOp(argc)
		assert.True(t, IsCall(c))
		assert.Equal(t, argc, CallArity(c))
	}
}

func TestOperandCounts(t *testing.T) {
	assert.Equal(t, 1, OperandCount(CONSTANT))
	assert.Equal(t, 1, OperandCount(JUMP))
	assert.Equal(t, 0, OperandCount(END))
	assert.Equal(t, 2, OperandCount(METHOD))
	assert.Equal(t, 1, OperandCount(CallOp(3)))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "CALL_2", Name(CallOp(2)))
	assert.Equal(t, "END", Name(END))
	assert.Equal(t, "UNKNOWN", Name(Invalid))
}

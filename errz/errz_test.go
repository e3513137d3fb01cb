package errz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkStickyAndFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink().WithWriter(&buf)

	assert.False(t, sink.HasError())

	sink.Report(Semantic, 3, "x", "undefined variable")
	assert.True(t, sink.HasError())
	assert.Equal(t, "[Line 3] Error on 'x': undefined variable\n", buf.String())

	// Sticky: a second report doesn't clear the flag, and both accumulate.
	sink.Report(Syntax, 4, ")", "expected ')'")
	assert.True(t, sink.HasError())
	assert.Len(t, sink.Errors(), 2)
	assert.Equal(t, Semantic, sink.Errors()[0].Category)
	assert.Equal(t, Syntax, sink.Errors()[1].Category)
}

func TestNoReportsMeansNoError(t *testing.T) {
	sink := NewSink().WithWriter(&bytes.Buffer{})
	assert.False(t, sink.HasError())
	assert.Empty(t, sink.Errors())
}

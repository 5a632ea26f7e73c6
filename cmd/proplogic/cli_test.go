package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalCommandRuns(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"eval", "(1*-1)"})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestSATCommandUnsatExitsNonNil(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"sat", "(1+-1)"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Equal(t, 1, exitCodeFor(err))
}

func TestParseErrorExitCode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"eval", "(1+2*3)"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Equal(t, 1, exitCodeFor(err))
}

func TestTableCommandRuns(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"table", "(1=2)"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

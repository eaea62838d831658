// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintSource(t *testing.T) {
	assert := assert.New(t)

	var buff bytes.Buffer
	printSource(&buff, []string{"loop: addi $t0, $t0, -1", "bne $t0, $zero, loop"})
	assert.Equal("PROGRAM:\n0: loop: addi $t0, $t0, -1\n1: bne $t0, $zero, loop\n", buff.String())

	buff.Reset()
	printSource(&buff, nil)
	assert.Equal("PROGRAM:\n", buff.String())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	d := defines{}
	assert.NoError(d.Set("COUNT=4"))
	assert.NoError(d.Set("DEBUG"))
	assert.Equal(defines{"COUNT": "4", "DEBUG": "1"}, d)
}

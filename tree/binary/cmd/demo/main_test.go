package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var sb strings.Builder

	run(&sb)

	assert.Equal(t, "3 5 7\n3 5\n3\n5\n7\n", sb.String())
}

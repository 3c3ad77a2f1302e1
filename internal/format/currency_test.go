// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 12.000.000", BRL(12000000))
	assert.Equal(t, "R$ 1.800.000", BRL(1800000))
	assert.Equal(t, "R$ 0", BRL(0))
	assert.Equal(t, "R$ 999", BRL(999))
	assert.Equal(t, "R$ 1.000", BRL(1000))
}

func TestInt(t *testing.T) {
	assert.Equal(t, "8", Int(8))
	assert.Equal(t, "1.234", Int(1234))
}

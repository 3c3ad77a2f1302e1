// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPresent(t *testing.T) {
	for _, name := range Names() {
		rec, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, rec.Name)
	}
}

func TestLookupAbsent(t *testing.T) {
	_, err := Lookup("Atlântida")
	assert.ErrorIs(t, err, ErrNotFound)

	// Case matters; near-misses are still absent.
	_, err = Lookup("centro")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCentroRecord(t *testing.T) {
	rec, err := Lookup("Centro")
	require.NoError(t, err)

	assert.Equal(t, 8, rec.Schools)
	assert.Equal(t, 6, rec.HealthUnits)
	assert.Equal(t, int64(12000000), rec.Investment)
	assert.Equal(t, []string{"Restauro de patrimônio", "Modernização do Mercado"}, rec.PublicWorks)
	assert.InDelta(t, -34.8711, rec.Anchor.Lng, 0.0001)
	assert.InDelta(t, -8.0578, rec.Anchor.Lat, 0.0001)
}

func TestNamesUnique(t *testing.T) {
	names := Names()
	assert.Len(t, names, Count())

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	orig := all[0].Name
	all[0].Name = "mutated"

	rec, err := Lookup(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, rec.Name)
}

func TestRecordsAreNonNegative(t *testing.T) {
	for _, rec := range All() {
		assert.GreaterOrEqual(t, rec.Schools, 0, rec.Name)
		assert.GreaterOrEqual(t, rec.HealthUnits, 0, rec.Name)
		assert.GreaterOrEqual(t, rec.Investment, int64(0), rec.Name)
	}
}

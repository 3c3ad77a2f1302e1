// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package dataset holds the fixed table of Recife bairros and their
// civic statistics. The table is loaded once at init and never mutated,
// so it is safe to read from any goroutine.
package dataset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound indicates a lookup for a bairro that is not in the table.
var ErrNotFound = errors.New("bairro not found")

// Coordinate is a geographic anchor in (longitude, latitude) order,
// matching the order used by the map surface.
type Coordinate struct {
	Lng float64
	Lat float64
}

// Record holds the civic statistics for a single bairro.
// Investment is in whole reais.
type Record struct {
	Name        string
	Schools     int
	HealthUnits int
	Investment  int64
	PublicWorks []string
	Anchor      Coordinate
}

// byName indexes the table for lookup. Built once in init.
var byName map[string]Record

func init() {
	byName = make(map[string]Record, len(bairros))
	for _, b := range bairros {
		if _, dup := byName[b.Name]; dup {
			panic(fmt.Sprintf("dataset: duplicate bairro %q", b.Name))
		}
		byName[b.Name] = b
	}
}

// Lookup returns the record for the named bairro.
// Absent names return ErrNotFound, never a default record.
func Lookup(name string) (Record, error) {
	rec, ok := byName[name]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return rec, nil
}

// All returns the full table in its original display order.
// The returned slice is a copy; callers may not reach the table itself.
func All() []Record {
	out := make([]Record, len(bairros))
	copy(out, bairros)
	return out
}

// Names returns every bairro name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of bairros in the table.
func Count() int {
	return len(bairros)
}

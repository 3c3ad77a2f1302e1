// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package mapview

import (
	"math"

	"github.com/digai/digai-tui/internal/dataset"
)

// =============================================================================
// CAMERA CONSTANTS
// =============================================================================

// Overview framing: the whole city, tilted.
var OverviewCenter = dataset.Coordinate{Lng: -34.8851, Lat: -8.0476}

const (
	OverviewZoom  = 11.0
	OverviewPitch = 45.0

	// Focus framing: a single bairro anchor.
	FocusZoom  = 15.0
	FocusPitch = 45.0

	// FocusSpeed is the fly-to speed factor. Higher is faster.
	FocusSpeed = 1.2

	// frameRate is the camera animation rate in frames per second.
	frameRate = 30
)

// =============================================================================
// CAMERA
// =============================================================================

// Camera is the map viewpoint: center, zoom level, and pitch.
type Camera struct {
	Center dataset.Coordinate
	Zoom   float64
	Pitch  float64
}

// OverviewCamera returns the city-wide framing.
func OverviewCamera() Camera {
	return Camera{Center: OverviewCenter, Zoom: OverviewZoom, Pitch: OverviewPitch}
}

// FocusCamera returns the framing for a single region anchor.
func FocusCamera(region dataset.Record) Camera {
	return Camera{Center: region.Anchor, Zoom: FocusZoom, Pitch: FocusPitch}
}

// step moves the camera a fraction of the way toward target. It returns
// true when the camera has effectively arrived and snaps to the target.
func (c *Camera) step(target Camera, dt float64) bool {
	f := FocusSpeed * dt * frameRate / 10
	if f > 1 {
		f = 1
	}

	c.Center.Lng += (target.Center.Lng - c.Center.Lng) * f
	c.Center.Lat += (target.Center.Lat - c.Center.Lat) * f
	c.Zoom += (target.Zoom - c.Zoom) * f
	c.Pitch += (target.Pitch - c.Pitch) * f

	arrived := math.Abs(target.Center.Lng-c.Center.Lng) < 1e-4 &&
		math.Abs(target.Center.Lat-c.Center.Lat) < 1e-4 &&
		math.Abs(target.Zoom-c.Zoom) < 0.01 &&
		math.Abs(target.Pitch-c.Pitch) < 0.1
	if arrived {
		*c = target
	}
	return arrived
}

// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the colour palettes used by the vitals views.
package theme

import "image/color"

// Palette is a set of surface and text colours for one appearance.
type Palette struct {
	Background      color.NRGBA
	Foreground      color.NRGBA
	Card            color.NRGBA
	Primary         color.NRGBA
	PrimaryFg       color.NRGBA
	Secondary       color.NRGBA
	Muted           color.NRGBA
	MutedForeground color.NRGBA
	Accent          color.NRGBA
	Destructive     color.NRGBA
	Border          color.NRGBA
}

var (
	// Light is the default appearance.
	Light = Palette{
		Background:      hex(0xf0f5fa),
		Foreground:      hex(0x0a1628),
		Card:            hex(0xf5f8fa),
		Primary:         hex(0x6b9dd9),
		PrimaryFg:       hex(0xfafafa),
		Secondary:       hex(0xe8f0f5),
		Muted:           hex(0xe8f0f5),
		MutedForeground: hex(0x6b7280),
		Accent:          hex(0x8fc4f0),
		Destructive:     hex(0xef4444),
		Border:          hex(0xe2e8f0),
	}

	// Dark is the dark-mode appearance.
	Dark = Palette{
		Background:      hex(0x0a1628),
		Foreground:      hex(0xe8f0f5),
		Card:            hex(0x0a1628),
		Primary:         hex(0x6b9dd9),
		PrimaryFg:       hex(0xe8f0f5),
		Secondary:       hex(0x1e3a5f),
		Muted:           hex(0x1e3a5f),
		MutedForeground: hex(0x9ca3af),
		Accent:          hex(0x8fc4f0),
		Destructive:     hex(0x7f1d1d),
		Border:          hex(0x1e3a5f),
	}
)

// For returns the palette for the requested appearance.
func For(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// Metric colours.
var (
	HeartRate     = hex(0xef4444)
	BloodPressure = hex(0x3b82f6)
	BloodOxygen   = hex(0x06b6d4)
	Calories      = hex(0xf97316)
	Steps         = hex(0x22c55e)
	Sleep         = hex(0x6366f1)
)

// Status is a semantic severity used to colour readings and badges.
type Status uint8

//go:generate go tool golang.org/x/tools/cmd/stringer -type Status -trimprefix Status
const (
	StatusInfo Status = iota
	StatusSuccess
	StatusWarning
	StatusError
)

var statusColors = [...]color.NRGBA{
	StatusInfo:    hex(0x3b82f6),
	StatusSuccess: hex(0x10b981),
	StatusWarning: hex(0xf59e0b),
	StatusError:   hex(0xef4444),
}

// Color returns the colour for s. Unknown values are reported
// in the muted light foreground.
func (s Status) Color() color.NRGBA {
	if int(s) >= len(statusColors) {
		return Light.MutedForeground
	}
	return statusColors[s]
}

// WithAlpha returns c with its alpha replaced by a.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Hex returns the #rrggbb form of c, dropping alpha.
func Hex(c color.NRGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0xf]
	}
	return string(b)
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import "testing"

func TestHex(t *testing.T) {
	for _, test := range []struct {
		v    uint32
		want string
	}{
		{v: 0xef4444, want: "#ef4444"},
		{v: 0x0a1628, want: "#0a1628"},
		{v: 0x000000, want: "#000000"},
	} {
		got := Hex(hex(test.v))
		if got != test.want {
			t.Errorf("unexpected hex for %#x: got:%s want:%s", test.v, got, test.want)
		}
	}
}

func TestStatusColor(t *testing.T) {
	if StatusError.Color() != HeartRate {
		t.Errorf("unexpected error colour: %v", StatusError.Color())
	}
	if Status(42).Color() != Light.MutedForeground {
		t.Errorf("unexpected fallback colour: %v", Status(42).Color())
	}
	if For(true) != Dark || For(false) != Light {
		t.Error("unexpected palette selection")
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggscene

// DesignWidth is the number of device-independent units spanning the screen.
const DesignWidth = 750

// DeviceInfo reports the live device screen width in logical pixels.
type DeviceInfo interface {
	ScreenWidth() float64
}

// StaticDevice is a DeviceInfo with a fixed screen width.
type StaticDevice float64

// ScreenWidth implements DeviceInfo.
func (d StaticDevice) ScreenWidth() float64 { return float64(d) }

// DeviceFunc adapts a function to DeviceInfo.
type DeviceFunc func() float64

// ScreenWidth implements DeviceInfo.
func (f DeviceFunc) ScreenWidth() float64 { return f() }

// Converter maps device-independent lengths to surface pixels.
// The device is queried on every conversion, so a screen width change
// between renders is picked up without rebuilding the converter.
type Converter struct {
	Device DeviceInfo
}

// ToPixels converts a device-independent length to pixels:
//
//	screenWidth / 750 * length * 2
//
// The factor 2 targets a 2x backing store.
func (c Converter) ToPixels(length float64) float64 {
	return c.Device.ScreenWidth() / DesignWidth * length * 2
}

package capture

import (
	"strings"

	"github.com/pkg/errors"
)

// Device identifies what produced a pointer event.
type Device int

const (
	DevicePen Device = iota
	DeviceTouch
	DeviceMouse
)

func (d Device) String() string {
	switch d {
	case DevicePen:
		return "pen"
	case DeviceTouch:
		return "touch"
	case DeviceMouse:
		return "mouse"
	}
	return "unknown"
}

// ParseDevice accepts the names returned by String.
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen", "stylus", "pencil":
		return DevicePen, nil
	case "touch", "finger":
		return DeviceTouch, nil
	case "mouse":
		return DeviceMouse, nil
	}
	return DevicePen, errors.Errorf("unknown input device %q", s)
}

// RawPoint is one coalesced pointer sample in device pixels.
type RawPoint struct {
	X, Y        float64
	Pressure    float64
	HasPressure bool
	Device      Device
}

// At builds a RawPoint without force information.
func At(x, y float64, d Device) RawPoint {
	return RawPoint{X: x, Y: y, Device: d}
}

// PenAt builds a pen RawPoint carrying pressure.
func PenAt(x, y, pressure float64) RawPoint {
	return RawPoint{X: x, Y: y, Pressure: pressure, HasPressure: true, Device: DevicePen}
}

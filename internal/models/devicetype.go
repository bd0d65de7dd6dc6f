package models

import (
	"fmt"
	"strings"
)

// DeviceType is the closed set of recognized device-type codes. Anything
// outside the set fails validation at the boundary instead of being stored
// as-is.
type DeviceType string

const (
	DeviceTypeTemp  DeviceType = "temp"
	DeviceTypeHum   DeviceType = "hum"
	DeviceTypeCam   DeviceType = "cam"
	DeviceTypeGPS   DeviceType = "gps"
	DeviceTypeRelay DeviceType = "relay"
)

var deviceTypes = []DeviceType{
	DeviceTypeTemp,
	DeviceTypeHum,
	DeviceTypeCam,
	DeviceTypeGPS,
	DeviceTypeRelay,
}

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeTemp:  "Temperature Sensor",
	DeviceTypeHum:   "Humidity Sensor",
	DeviceTypeCam:   "Camera",
	DeviceTypeGPS:   "GPS Tracker",
	DeviceTypeRelay: "Relay Switch",
}

// ParseDeviceType validates a raw code against the recognized set.
func ParseDeviceType(code string) (DeviceType, error) {
	t := DeviceType(code)
	if !t.Valid() {
		return "", fmt.Errorf("unknown device type %q", code)
	}
	return t, nil
}

// Valid reports whether t belongs to the recognized set.
func (t DeviceType) Valid() bool {
	_, ok := deviceTypeNames[t]
	return ok
}

// DisplayName returns the human-readable label for the code. Codes without a
// label render as the upper-cased code.
func (t DeviceType) DisplayName() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return strings.ToUpper(string(t))
}

// AvailableDeviceTypes returns the recognized codes in their declared order.
func AvailableDeviceTypes() []DeviceType {
	out := make([]DeviceType, len(deviceTypes))
	copy(out, deviceTypes)
	return out
}

// DeviceTypeDisplayNames returns the code-to-label mapping for the
// recognized set.
func DeviceTypeDisplayNames() map[DeviceType]string {
	out := make(map[DeviceType]string, len(deviceTypeNames))
	for k, v := range deviceTypeNames {
		out[k] = v
	}
	return out
}

package config

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
)

// CapacityBytes converts a configured capacity such as ("2", "GB") to bytes.
// Units are binary: 1 GB = 1024^3 bytes.
func CapacityBytes(size, unit string) (int64, error) {
	u := strings.ToUpper(strings.TrimSpace(unit))
	switch u {
	case "MB", "GB", "TB":
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	n, err := units.RAMInBytes(strings.TrimSpace(size) + u)
	if err != nil {
		return 0, fmt.Errorf("%w: size %q: %v", ErrInvalidStorageConfigs, size, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: capacity must be positive", ErrInvalidStorageConfigs)
	}
	return n, nil
}

// CapacityBytes returns the configured capacity in bytes.
func (s Storage) CapacityBytes() (int64, error) {
	return CapacityBytes(s.Size, s.Unit)
}

// HumanCapacity formats n bytes the way the capacity is logged at startup.
func HumanCapacity(n int64) string {
	return units.BytesSize(float64(n))
}

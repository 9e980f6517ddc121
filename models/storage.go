package models

// StorageUsageSnapshot is the disk usage of the node's data directory at
// one measurement moment. It is rebuilt on every report tick.
type StorageUsageSnapshot struct {
	// TotalSpaceBytes is the capacity the operator shares, converted from
	// the configured size and unit.
	TotalSpaceBytes int64
	// UsedBytes is the measured size of the data directory tree.
	UsedBytes int64
}

// FreeBytes returns TotalSpaceBytes - UsedBytes, never below zero.
func (s StorageUsageSnapshot) FreeBytes() int64 {
	if s.UsedBytes >= s.TotalSpaceBytes {
		return 0
	}
	return s.TotalSpaceBytes - s.UsedBytes
}

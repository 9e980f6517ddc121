package diskusage

import "errors"

// ErrFilesystem is returned when the root of a measurement exists but cannot
// be inspected (for example, permission denied on the root itself).
var ErrFilesystem = errors.New("filesystem error")

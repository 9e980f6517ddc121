package bandwidth

import "errors"

var (
	// ErrSpeedTest wraps every failure of a speed test run by
	// [Cache.RefreshIfStale].
	ErrSpeedTest = errors.New("speed test failed")

	// ErrNoSample is returned by [FileSampleStore.Load] when the cache file
	// does not exist yet.
	ErrNoSample = errors.New("no bandwidth sample cached")

	// ErrCorruptCache is returned by [FileSampleStore.Load] when the cache
	// file cannot be decoded.
	ErrCorruptCache = errors.New("bandwidth cache is corrupt")
)

// Package bandwidth keeps the node's last measured throughput.
//
// A speed test is slow and uses real traffic, so [Cache] runs one at most
// once per freshness window and persists the result through a [SampleStore].
package bandwidth

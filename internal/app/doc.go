// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the reporter daemon runtime.
//
// It unlocks the node identity from the encrypted key file, resolves the
// contact address, wires adapters, the bandwidth cache, the tick journal and
// the telemetry service, and runs the report job until the process is asked
// to stop.
package app

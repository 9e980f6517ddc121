// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diskusage measures how many bytes a directory tree occupies.
//
// The walk is iterative (explicit stack) so deeply nested trees cannot
// exhaust the goroutine stack. A symlinked root is resolved once; below the
// root symbolic links are never followed and the link entry itself is
// counted. Subdirectories that cannot be read and entries
// that disappear during the walk are skipped, so a partially unreadable
// data directory still yields the size of its readable remainder.
package diskusage

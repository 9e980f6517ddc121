// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diskusage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Result is a detailed measurement outcome.
type Result struct {
	// Bytes is the total size: regular files, directory entries and
	// symlink entries, including the root directory itself.
	Bytes int64
	// Files counts regular files visited.
	Files int64
	// Dirs counts directories visited, the root included.
	Dirs int64
	// Skipped counts directories that could not be read and entries that
	// vanished mid-walk.
	Skipped int64
}

//go:generate mockgen -source=measure.go -destination=../mock/measurer_mock.go -package=mock

// Measurer computes the on-disk size of a directory tree.
type Measurer interface {
	// Measure returns the total bytes under root. A missing root yields 0
	// and no error. An existing but inaccessible root wraps
	// [ErrFilesystem].
	Measure(ctx context.Context, root string) (int64, error)

	// MeasureDetailed is Measure with per-kind counters.
	MeasureDetailed(ctx context.Context, root string) (Result, error)
}

type measurer struct {
	stat    func(string) (fs.FileInfo, error)
	readDir func(string) ([]fs.DirEntry, error)
}

// NewMeasurer returns a [Measurer] backed by the os package.
func NewMeasurer() Measurer {
	return &measurer{
		stat:    os.Stat,
		readDir: os.ReadDir,
	}
}

// Measure implements [Measurer].
func (m *measurer) Measure(ctx context.Context, root string) (int64, error) {
	res, err := m.MeasureDetailed(ctx, root)
	return res.Bytes, err
}

// MeasureDetailed implements [Measurer].
func (m *measurer) MeasureDetailed(ctx context.Context, root string) (Result, error) {
	var res Result

	// the root itself is followed once so a symlinked data directory is
	// measured at its target; nothing below it is
	info, err := m.stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return res, fmt.Errorf("%w: %v", ErrFilesystem, err)
	}

	if !info.IsDir() {
		res.add(info)
		return res, nil
	}

	res.add(info)
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := m.readDir(dir)
		if err != nil {
			// unreadable or removed since it was pushed
			res.Skipped++
			if len(entries) == 0 {
				continue
			}
		}

		for _, entry := range entries {
			entryInfo, err := entry.Info()
			if err != nil {
				res.Skipped++
				continue
			}

			res.add(entryInfo)
			if entryInfo.IsDir() {
				stack = append(stack, filepath.Join(dir, entry.Name()))
			}
		}
	}

	return res, nil
}

// add accounts a single entry. Symlinks contribute the size of the link
// itself; devices, sockets and pipes are ignored.
func (r *Result) add(info fs.FileInfo) {
	mode := info.Mode()
	switch {
	case mode.IsRegular():
		r.Files++
		r.Bytes += info.Size()
	case mode.IsDir():
		r.Dirs++
		r.Bytes += info.Size()
	case mode&fs.ModeSymlink != 0:
		r.Bytes += info.Size()
	}
}

// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mmapfile memory-maps a file read-only for use as diff input, the way the reference
// diff(1) collaborator does (original_source/diff.c's mmapfile()), falling back to a plain read
// when mapping isn't possible.
package mmapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped (or, on fallback, ordinary in-memory) view of a file's
// content.
type File struct {
	data   []byte
	mapped bool
}

// Open maps path read-only. A zero-length file yields an empty, unmapped File without being
// mapped or read. Where mmap fails (e.g. some network or pseudo filesystems) Open falls back to
// os.ReadFile rather than failing outright, since a diff tool should still work in those cases.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &File{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		// Fall back to a regular read, e.g. for pipes or filesystems that reject mmap.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &File{data: data}, nil
	}
	return &File{data: data, mapped: true}, nil
}

// Bytes returns the file's content. The slice is only valid until [File.Close].
func (f *File) Bytes() []byte { return f.data }

// Close unmaps the file if it was mapped; it is a no-op otherwise.
func (f *File) Close() error {
	if !f.mapped {
		return nil
	}
	data := f.data
	f.data = nil
	f.mapped = false
	return unix.Munmap(data)
}

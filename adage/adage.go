// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package adage implements reading adages from fortune data files.
//
// A data file is plain text. Each adage is a run of lines terminated by a
// line holding only the delimiter character, usually '%'. The last adage may
// be terminated by the end of the file instead. Data files may be compressed
// with dictzip, which keeps them randomly accessible.
package adage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// DictZipExt is the extension of dictzip compressed data files.
const DictZipExt = ".dz"

var errOffsetTooLarge = errors.New("adage offset too large")

// File is an open data file.
type File struct {
	r io.ReaderAt
	c io.Closer
}

// New returns a File reading from r.
func New(r io.ReaderAt) *File {
	return &File{r: r}
}

// Open opens the data file at path. If path does not exist but a dictzip
// compressed file at path+".dz" does, that file is opened instead. The File
// should be closed with the Close method.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err == nil {
		return &File{r: f, c: f}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	zf, zErr := os.Open(path + DictZipExt)
	if zErr != nil {
		// Report the uncompressed path.
		return nil, err
	}
	z, err := dictzip.NewReader(zf)
	if err != nil {
		_ = zf.Close()
		return nil, fmt.Errorf("opening dictzip data: %w", err)
	}
	return &File{r: z, c: zf}, nil
}

// Adage reads the adage starting at offset.
func (f *File) Adage(offset uint64, delim byte) (string, error) {
	if offset > math.MaxInt64 {
		return "", fmt.Errorf("%w: %d", errOffsetTooLarge, offset)
	}
	//nolint:gosec // offset is bounds checked above.
	off := int64(offset)
	return Read(io.NewSectionReader(f.r, off, math.MaxInt64-off), delim)
}

// Close closes the underlying file.
func (f *File) Close() error {
	if f.c == nil {
		return nil
	}
	if err := f.c.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	return nil
}

// Read reads lines from r until a line holding only delim or the end of r.
// The lines are returned with their line terminators. The delimiter line is
// not included.
func Read(r io.Reader, delim byte) (string, error) {
	br := bufio.NewReader(r)
	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if isDelim(line, delim) {
				return sb.String(), nil
			}
			sb.WriteString(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", fmt.Errorf("reading adage: %w", err)
		}
	}
}

// isDelim returns whether line, minus its terminator, is the delimiter.
func isDelim(line string, delim byte) bool {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return len(line) == 1 && line[0] == delim
}

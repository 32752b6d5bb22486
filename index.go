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

package fortune

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/ianlewis/go-fortune/strfile"
)

const (
	// IndexExt is the extension of index files.
	IndexExt = ".dat"

	// GzipIndexExt is the extension of gzip compressed index files.
	GzipIndexExt = ".dat.gz"

	// DefaultDelim is the delimiter used when an index's delimiter byte is
	// not a printable ASCII character.
	DefaultDelim = '%'
)

// Options are options for BuildIndex.
type Options struct {
	// Header are options for decoding index files.
	Header *strfile.Options
}

// DefaultOptions is the default options for BuildIndex.
var DefaultOptions = &Options{
	Header: strfile.DefaultOptions,
}

// Warning is a failure to read part of a file tree. It is not fatal to
// building an index.
type Warning struct {
	// Path is the file or directory that could not be read.
	Path string

	// Err is the cause.
	Err error
}

// Error implements error.
func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Unwrap returns the cause.
func (w *Warning) Unwrap() error {
	return w.Err
}

// BuildIndex builds an index of the adages in all collections found under
// paths. Each path may be a directory, which is searched recursively, or an
// index file.
//
// Files and directories that cannot be read are skipped and reported as
// [*Warning] errors. The adages of each collection are contiguous in the
// returned Index and in the order the collections were found. Directory
// entries are visited in lexical order.
func BuildIndex(paths []string, options *Options) (Index, []error) {
	if options == nil {
		options = DefaultOptions
	}

	b := &builder{
		options: options,
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			b.warn(path, err)
			continue
		}
		b.add(path, info)
	}
	return b.index, b.warnings
}

// builder accumulates index entries and warnings while walking a file tree.
// A failure on one path never discards entries found elsewhere.
type builder struct {
	options  *Options
	index    Index
	warnings []error
}

func (b *builder) warn(path string, err error) {
	b.warnings = append(b.warnings, &Warning{
		Path: path,
		Err:  err,
	})
}

func (b *builder) add(path string, info fs.FileInfo) {
	switch {
	case info.IsDir():
		b.addDir(path)
	case info.Mode().IsRegular() && indexExt(path) != "":
		b.addIndex(path)
	}
}

func (b *builder) addDir(path string) {
	children, err := os.ReadDir(path)
	if err != nil {
		b.warn(path, err)
		return
	}

	for _, c := range children {
		childPath := filepath.Join(path, c.Name())

		var info fs.FileInfo
		if c.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(childPath)
			// Symlinked directories are not followed.
			if err == nil && info.IsDir() {
				continue
			}
		} else {
			info, err = c.Info()
		}
		if err != nil {
			b.warn(childPath, err)
			continue
		}

		b.add(childPath, info)
	}
}

func (b *builder) addIndex(path string) {
	ext := indexExt(path)
	h, err := readHeader(path, ext == GzipIndexExt, b.options.Header)
	if err != nil {
		b.warn(path, err)
		return
	}

	src := &Source{
		Path:      strings.TrimSuffix(path, ext),
		IndexPath: path,
		Version:   h.Version,
		NumStr:    h.NumStr,
		LongLen:   h.LongLen,
		ShortLen:  h.ShortLen,
		Flags:     h.Flags,
		Delim:     delimiter(h.Delim),
	}
	for _, o := range h.Offsets {
		b.index = append(b.index, &Entry{
			Source: src,
			Offset: uint64(o),
			Delim:  src.Delim,
		})
	}
}

// readHeader reads the index file at path.
func readHeader(path string, compressed bool, options *strfile.Options) (*strfile.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("reading gzip index: %w", err)
		}
		defer z.Close()
		r = z
	}

	h, err := strfile.New(bufio.NewReader(r), options)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	return h, nil
}

// indexExt returns the index extension of path or an empty string if path
// is not an index file.
func indexExt(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{GzipIndexExt, IndexExt} {
		if len(name) > len(ext) && strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}

// delimiter returns d if it is a printable, non-space ASCII character and
// DefaultDelim otherwise.
func delimiter(d byte) byte {
	if d > ' ' && d < 0x7f {
		return d
	}
	return DefaultDelim
}

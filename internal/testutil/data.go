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

package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"

	"github.com/ianlewis/go-fortune/strfile"
)

// MakeData makes a test data file holding the given adages. Each adage is
// followed by a line containing only delim. The offset of each adage is
// returned along with the data.
func MakeData(t *testing.T, adages []string, delim byte) ([]byte, []uint32) {
	t.Helper()

	var b []byte
	var offsets []uint32
	for _, a := range adages {
		if len(b) > math.MaxUint32 {
			t.Fatalf("data too long: %d", len(b))
		}
		//nolint:gosec // bounds checked above.
		offsets = append(offsets, uint32(len(b)))
		b = append(b, a...)
		b = append(b, delim, '\n')
	}
	return b, offsets
}

// CollectionOptions are options for WriteCollection.
type CollectionOptions struct {
	// Delim is the delimiter character. Defaults to '%'.
	Delim byte

	// Padding is the number of padding bytes after the delimiter byte in
	// the index.
	Padding int

	// GzipIndex writes a gzip compressed index with a .dat.gz extension.
	GzipIndex bool

	// DictZip writes the data file compressed with dictzip with a .dz
	// extension.
	DictZip bool
}

func (o *CollectionOptions) delim() byte {
	if o == nil || o.Delim == 0 {
		return '%'
	}
	return o.Delim
}

// WriteCollection writes a data file and its index named name under dir
// and returns the data file path without any compression extension.
func WriteCollection(t *testing.T, dir, name string, adages []string, opts *CollectionOptions) string {
	t.Helper()
	if opts == nil {
		opts = &CollectionOptions{}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)

	data, offsets := MakeData(t, adages, opts.delim())
	if opts.DictZip {
		writeDictZip(t, path+".dz", data)
	} else {
		WriteFile(t, path, data)
	}

	idx := MakeIndex(t, &strfile.Header{
		Version: 2,
		Delim:   opts.delim(),
		Offsets: offsets,
	}, opts.Padding)
	if opts.GzipIndex {
		var buf bytes.Buffer
		z := gzip.NewWriter(&buf)
		if _, err := z.Write(idx); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		WriteFile(t, path+".dat.gz", buf.Bytes())
	} else {
		WriteFile(t, path+".dat", idx)
	}

	return path
}

// WriteFile writes b to path creating parent directories as needed.
func WriteFile(t *testing.T, path string, b []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}

func writeDictZip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}

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
	"fmt"
	"path/filepath"

	"github.com/ianlewis/go-fortune/adage"
	"github.com/ianlewis/go-fortune/strfile"
)

// Source is a fortune collection. It is shared by all of the collection's
// entries.
type Source struct {
	// Path is the path to the data file.
	Path string

	// IndexPath is the path to the index file.
	IndexPath string

	// Version is the index format version.
	Version uint32

	// NumStr is the number of adages in the collection.
	NumStr uint32

	// LongLen is the length of the longest adage.
	LongLen uint32

	// ShortLen is the length of the shortest adage.
	ShortLen uint32

	// Flags are the index flags.
	Flags strfile.Flags

	// Delim is the delimiter character.
	Delim byte
}

// Name returns the collection name.
func (s *Source) Name() string {
	return filepath.Base(s.Path)
}

// Entry is the location of a single adage.
type Entry struct {
	Source *Source
	Offset uint64
	Delim  byte
}

// Text reads the adage from the collection's data file. The data file is
// opened and closed on each call.
func (e *Entry) Text() (string, error) {
	f, err := adage.Open(e.Source.Path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Source.Path, err)
	}
	defer f.Close()

	text, err := f.Adage(e.Offset, e.Delim)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Source.Path, err)
	}
	return text, nil
}

// Index is a list of adage entries. Entries from the same collection are
// contiguous.
type Index []*Entry

// Sources returns the collections in the index in order.
func (idx Index) Sources() []*Source {
	var sources []*Source
	for i, e := range idx {
		if i == 0 || idx[i-1].Source != e.Source {
			sources = append(sources, e.Source)
		}
	}
	return sources
}

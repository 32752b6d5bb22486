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

package strfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidOptions indicates that the decoding options are invalid.
var ErrInvalidOptions = errors.New("invalid options")

// Flags is the header's bit field.
type Flags uint32

const (
	// FlagRandom indicates that the offset table was shuffled.
	FlagRandom Flags = 1 << iota

	// FlagOrdered indicates that the offset table is sorted by adage text.
	FlagOrdered

	// FlagRotated indicates that the adages are ROT13 encoded.
	FlagRotated
)

// String returns a comma separated list of the set flags.
func (f Flags) String() string {
	var names []string
	if f&FlagRandom != 0 {
		names = append(names, "random")
	}
	if f&FlagOrdered != 0 {
		names = append(names, "ordered")
	}
	if f&FlagRotated != 0 {
		names = append(names, "rotated")
	}
	if rest := f &^ (FlagRandom | FlagOrdered | FlagRotated); rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Header is a decoded .dat file.
type Header struct {
	// Version is the format version. It is not validated.
	Version uint32

	// NumStr is the number of adages in the data file.
	NumStr uint32

	// LongLen is the length of the longest adage.
	LongLen uint32

	// ShortLen is the length of the shortest adage.
	ShortLen uint32

	// Flags are the header flags.
	Flags Flags

	// Delim is the raw delimiter byte.
	Delim byte

	// Offsets are the offsets of each adage in the data file. len(Offsets)
	// is always NumStr.
	Offsets []uint32
}

// Options are options for decoding .dat files.
type Options struct {
	// DelimPadding is the number of bytes after the delimiter byte that are
	// skipped before the offset table. Files written by the classic strfile
	// tool store the delimiter in a 4 byte field and so use 3.
	DelimPadding int
}

// DefaultOptions is the default options for New.
var DefaultOptions = &Options{}

// fixedHeader is the fixed size prefix of a .dat file.
type fixedHeader struct {
	Version  uint32
	NumStr   uint32
	LongLen  uint32
	ShortLen uint32
	Flags    uint32
	Delim    byte
}

// offsetChunk is the maximum number of offsets read at once. The offset
// count comes from the file and is only trusted as far as the data backs it.
const offsetChunk = 1024

// New decodes a header and its offset table from r. r must be positioned at
// the start of the .dat file. If r ends before the offset table is complete
// an error wrapping [io.ErrUnexpectedEOF] is returned and no header.
func New(r io.Reader, options *Options) (*Header, error) {
	if options == nil {
		options = DefaultOptions
	}
	if options.DelimPadding < 0 {
		return nil, fmt.Errorf("%w: delimiter padding %d", ErrInvalidOptions, options.DelimPadding)
	}

	var fh fixedHeader
	if err := binary.Read(r, binary.BigEndian, &fh); err != nil {
		return nil, fmt.Errorf("reading header: %w", unexpectedEOF(err))
	}

	if options.DelimPadding > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(options.DelimPadding)); err != nil {
			return nil, fmt.Errorf("reading delimiter: %w", unexpectedEOF(err))
		}
	}

	offsets := make([]uint32, 0, min(fh.NumStr, offsetChunk))
	buf := make([]uint32, min(fh.NumStr, offsetChunk))
	for remaining := fh.NumStr; remaining > 0; {
		n := min(remaining, offsetChunk)
		if err := binary.Read(r, binary.BigEndian, buf[:n]); err != nil {
			return nil, fmt.Errorf("reading offset %d: %w", len(offsets), unexpectedEOF(err))
		}
		offsets = append(offsets, buf[:n]...)
		remaining -= n
	}

	return &Header{
		Version:  fh.Version,
		NumStr:   fh.NumStr,
		LongLen:  fh.LongLen,
		ShortLen: fh.ShortLen,
		Flags:    Flags(fh.Flags),
		Delim:    fh.Delim,
		Offsets:  offsets,
	}, nil
}

// unexpectedEOF converts io.EOF to io.ErrUnexpectedEOF. A .dat file that
// ends at a field boundary is still truncated.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

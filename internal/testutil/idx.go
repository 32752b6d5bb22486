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
	"encoding/binary"
	"testing"

	"github.com/ianlewis/go-fortune/strfile"
)

// MakeIndex makes a test .dat file from the given header. The offset count
// written is len(h.Offsets); h.NumStr is ignored. padding zero bytes are
// written after the delimiter byte.
func MakeIndex(t *testing.T, h *strfile.Header, padding int) []byte {
	t.Helper()

	b := binary.BigEndian.AppendUint32(nil, h.Version)
	//nolint:gosec // test code, offset tables are small.
	b = binary.BigEndian.AppendUint32(b, uint32(len(h.Offsets)))
	b = binary.BigEndian.AppendUint32(b, h.LongLen)
	b = binary.BigEndian.AppendUint32(b, h.ShortLen)
	b = binary.BigEndian.AppendUint32(b, uint32(h.Flags))
	b = append(b, h.Delim)
	b = append(b, make([]byte, padding)...)
	for _, o := range h.Offsets {
		b = binary.BigEndian.AppendUint32(b, o)
	}
	return b
}

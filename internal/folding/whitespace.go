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

// Package folding implements text folding transformers used when matching
// adages.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace returns a [transform.Transformer] that replaces every run of
// whitespace, line breaks included, with a single ASCII space. Leading and
// trailing whitespace is dropped.
func Whitespace() transform.Transformer {
	return &whitespace{}
}

// String folds the whitespace in s.
func String(s string) string {
	folded, _, err := transform.String(Whitespace(), s)
	if err != nil {
		return s
	}
	return folded
}

type whitespace struct {
	// started is true once a non-space rune has been written.
	started bool

	// pending is true if whitespace was read after the last written rune.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			w.pending = w.started
			nSrc += size
			continue
		}

		n := size
		if w.pending {
			n++
		}
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		// Invalid bytes are copied as is.
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		w.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *whitespace) Reset() {
	*w = whitespace{}
}

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

package folding

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "no whitespace",
			input:    "foo",
			expected: "foo",
		},
		{
			name:     "leading and trailing",
			input:    " \t　foo \n",
			expected: "foo",
		},
		{
			name:     "line breaks",
			input:    "a stitch\n  in time\r\nsaves nine\n",
			expected: "a stitch in time saves nine",
		},
		{
			name:     "multibyte",
			input:    "ユニ　　コード",
			expected: "ユニ コード",
		},
		{
			name:     "invalid utf-8",
			input:    "a\xff  b",
			expected: "a\xff b",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, String(test.input)); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestWhitespace_shortSrc tests folding input that arrives one byte at a
// time so runes are split across Transform calls.
func TestWhitespace_shortSrc(t *testing.T) {
	t.Parallel()

	r := transform.NewReader(iotest.OneByteReader(strings.NewReader("  ユニ　\n コード ")), Whitespace())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if diff := cmp.Diff("ユニ コード", string(got)); diff != "" {
		t.Fatalf("ReadAll (-want, +got):\n%s", diff)
	}
}

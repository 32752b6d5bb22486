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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-fortune"
	"github.com/ianlewis/go-fortune/internal/testutil"
)

var testAdages = []string{
	"Art is long,\nlife is short.\n",
	"A picture is worth a thousand words.\n",
	"<b>Bold</b> moves win.\n",
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	app := newFortuneApp()
	app.Name = "fortune"
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"fortune"}, args...))
	return out.String(), errOut.String(), err
}

func TestApp_random(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteCollection(t, dir, "art", testAdages, nil)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "directory",
			args: []string{"--seed", "42", dir},
		},
		{
			name: "index file",
			args: []string{"-s", "42", path + fortune.IndexExt},
		},
		{
			name: "data file",
			args: []string{"-s", "42", path},
		},
		{
			name: "default path",
			args: []string{"-s", "42", "--path", dir},
		},
	}

	var first string
	for _, test := range tests {
		out, errOut, err := runApp(t, test.args...)
		if err != nil {
			t.Fatalf("%s: Run: %v", test.name, err)
		}
		if errOut != "" {
			t.Errorf("%s: unexpected stderr: %q", test.name, errOut)
		}
		if first == "" {
			first = out
			found := false
			for _, a := range testAdages {
				found = found || a == out
			}
			if !found {
				t.Fatalf("%s: unexpected adage: %q", test.name, out)
			}
		}
		// The same seed picks the same adage.
		if diff := cmp.Diff(first, out); diff != "" {
			t.Errorf("%s: output (-want, +got):\n%s", test.name, diff)
		}
	}
}

func TestApp_showFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "single", []string{"only one\n"}, nil)

	out, errOut, err := runApp(t, "-c", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff("only one\n", out); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("(single)\n%\n", errOut); diff != "" {
		t.Errorf("stderr (-want, +got):\n%s", diff)
	}
}

func TestApp_search(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "art", testAdages, nil)
	testutil.WriteCollection(t, dir, "life", []string{"Life is what happens.\n", "Nothing here.\n"}, nil)

	out, errOut, err := runApp(t, "-m", "life", "-i", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	expectedOut := "Art is long,\nlife is short.\n%\nLife is what happens.\n%\n"
	if diff := cmp.Diff(expectedOut, out); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("(art)\n%\n(life)\n%\n", errOut); diff != "" {
		t.Errorf("stderr (-want, +got):\n%s", diff)
	}
}

func TestApp_html(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "art", testAdages, nil)

	out, _, err := runApp(t, "--html", "-m", "Bold", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Bold moves win.") || strings.Contains(out, "<b>") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestApp_padded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "classic", []string{"from strfile\n"}, &testutil.CollectionOptions{
		Padding: strfilePadding,
	})

	out, _, err := runApp(t, "--padded", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff("from strfile\n", out); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
}

func TestApp_files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "art", testAdages, nil)
	testutil.WriteCollection(t, dir, "life", []string{"Life is what happens.\n"}, nil)

	out, _, err := runApp(t, "-f", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if want, got := 3, len(lines); want != got {
		t.Fatalf("lines: want %d, got %d: %q", want, got, out)
	}
	if !strings.HasPrefix(lines[1], "art ") || !strings.HasPrefix(lines[2], "life ") {
		t.Errorf("unexpected collections: %q", out)
	}
}

func TestApp_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{
			name:     "insensitive without pattern",
			args:     []string{"-i", dir},
			expected: ErrFlagParse,
		},
		{
			name:     "unknown flag",
			args:     []string{"--no-such-flag", dir},
			expected: ErrFlagParse,
		},
		{
			name:     "no fortunes",
			args:     []string{dir},
			expected: fortune.ErrNoFortunes,
		},
		{
			name:     "invalid pattern",
			args:     []string{"-m", "(", dir},
			expected: fortune.ErrInvalidPattern,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runApp(t, test.args...)
			if !errors.Is(err, test.expected) {
				t.Fatalf("Run: want %v, got %v", test.expected, err)
			}
		})
	}
}

func TestApp_warnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteCollection(t, dir, "art", testAdages, nil)
	testutil.WriteFile(t, dir+"/broken.dat", []byte{0, 0})

	_, errOut, err := runApp(t, "-s", "1", dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(errOut, "fortune: warning: ") || !strings.Contains(errOut, "broken.dat") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

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
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/ianlewis/go-fortune/internal/folding"
)

// ErrInvalidPattern indicates that a search pattern is not a valid regular
// expression.
var ErrInvalidPattern = errors.New("invalid pattern")

// SearchOptions are options for Index.Search.
type SearchOptions struct {
	// CaseInsensitive makes the pattern match without regard to case.
	CaseInsensitive bool

	// FoldWhitespace matches the pattern against the adage with each run of
	// whitespace, line breaks included, replaced by a single space.
	FoldWhitespace bool
}

// Match is an adage matched by Index.Search.
type Match struct {
	Entry *Entry
	Text  string

	// NewGroup is true if the previous match was from a different
	// collection or if this is the first match.
	NewGroup bool
}

// Search returns every adage matching the regular expression pattern in
// index order. Reading any adage fails the whole search.
//
// Matches are grouped by collection only because the entries of a
// collection are contiguous in the Index.
func (idx Index) Search(pattern string, options *SearchOptions) ([]*Match, error) {
	if options == nil {
		options = &SearchOptions{}
	}
	if options.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	var matches []*Match
	var prev string
	for _, e := range idx {
		text, err := e.Text()
		if err != nil {
			return nil, err
		}

		subject := text
		if options.FoldWhitespace {
			subject = folding.String(text)
		}
		if !re.MatchString(subject) {
			continue
		}

		matches = append(matches, &Match{
			Entry:    e,
			Text:     text,
			NewGroup: len(matches) == 0 || e.Source.Path != prev,
		})
		prev = e.Source.Path
	}
	return matches, nil
}

// PrintMatches writes matches to w with each adage followed by a "%" line.
// A "(name)" header followed by a "%" line is written to groups before the
// first match of each collection.
func PrintMatches(w, groups io.Writer, matches []*Match) error {
	for _, m := range matches {
		if m.NewGroup {
			if _, err := fmt.Fprintf(groups, "(%s)\n%%\n", m.Entry.Source.Name()); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s%%\n", m.Text); err != nil {
			return fmt.Errorf("writing match: %w", err)
		}
	}
	return nil
}

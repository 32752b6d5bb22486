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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-fortune"
)

// listCollections prints a table of the collections in the index.
func listCollections(c *cli.Context, idx fortune.Index) error {
	tbl := table.New("Name", "Adages", "Longest", "Shortest", "Flags", "Path").
		WithWriter(c.App.Writer)
	for _, s := range idx.Sources() {
		tbl.AddRow(s.Name(), s.NumStr, s.LongLen, s.ShortLen, s.Flags, s.Path)
	}
	tbl.Print()
	return nil
}

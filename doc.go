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

// Package fortune implements a library for finding and reading adages in
// fortune collections in pure Go.
//
// A fortune collection is a pair of files:
//  1. A data file holding the adages as plain text. Each adage is followed by
//     a line holding only the delimiter character, usually '%'. The data
//     file may be compressed with dictzip.
//  2. A .dat index file written by strfile. It holds a small header and the
//     offset of every adage in the data file (see the strfile package). The
//     index file may be compressed with gzip.
//
// [BuildIndex] walks files and directories and gathers every adage of every
// collection found into an [Index]. The Index can then be used to pick a
// random adage or to search adages with a regular expression.
package fortune

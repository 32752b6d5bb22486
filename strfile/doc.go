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

// Package strfile implements reading strfile index (.dat) files.
//
// A .dat file describes where each adage starts in its paired data file. It
// is laid out as a fixed header followed by a table of offsets. All integers
// are unsigned and in network byte order.
//  1. version: 32 bit version number.
//  2. numstr: 32 bit number of adages in the data file.
//  3. longlen: 32 bit length of the longest adage.
//  4. shortlen: 32 bit length of the shortest adage.
//  5. flags: 32 bit bit field (see [Flags]).
//  6. delim: a single byte holding the delimiter character. Files written
//     by the classic strfile tool pad this field to 4 bytes.
//  7. offsets: numstr 32 bit offsets into the data file.
package strfile

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
	"math/rand/v2"
)

// ErrNoFortunes indicates that an index has no adages to pick from.
var ErrNoFortunes = errors.New("no fortunes found")

// NewRand returns a random number generator for picking adages. If seed is
// not nil the generator is deterministic. Otherwise it is seeded from system
// entropy.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	// The top level generator is seeded by the runtime from system entropy.
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick returns an entry chosen uniformly at random.
func (idx Index) Pick(rng *rand.Rand) (*Entry, error) {
	if len(idx) == 0 {
		return nil, ErrNoFortunes
	}
	return idx[rng.IntN(len(idx))], nil
}

// Random returns the text of an adage chosen uniformly at random.
func (idx Index) Random(rng *rand.Rand) (string, error) {
	e, err := idx.Pick(rng)
	if err != nil {
		return "", err
	}
	return e.Text()
}

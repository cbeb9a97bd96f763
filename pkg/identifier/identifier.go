/*
 *     Copyright 2025 The Pigeonhole Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package identifier validates two-word item identifiers of the form
// "FirstWord SecondWord" and derives their storage coordinates.
package identifier

import (
	"errors"
	"strings"
)

// ErrInvalidIdentifier is returned when an identifier does not follow
// the "FirstWord SecondWord" format.
var ErrInvalidIdentifier = errors.New("invalid identifier")

const (
	firstLetter   = 'A'
	lastLetter    = 'Z'
	wordSeparator = ' '
)

// Locator addresses a single slot in the two-level store. Shelf is the
// first letter of the first word ('A'-'Z'), Slot is the index of the
// second word's first letter (0-25).
type Locator struct {
	Shelf byte
	Slot  int
}

// Parse validates id and derives its Locator. An identifier is valid
// when it is non-empty, its first byte is an uppercase ASCII letter,
// it contains a space, and the byte right after the first space is an
// uppercase ASCII letter. Nothing else is validated and no
// normalization is applied; matching stays case sensitive.
func Parse(id string) (Locator, error) {
	if id == "" {
		return Locator{}, ErrInvalidIdentifier
	}

	shelf := id[0]
	if shelf < firstLetter || shelf > lastLetter {
		return Locator{}, ErrInvalidIdentifier
	}

	sep := strings.IndexByte(id, wordSeparator)
	if sep < 0 || sep+1 >= len(id) {
		return Locator{}, ErrInvalidIdentifier
	}

	second := id[sep+1]
	if second < firstLetter || second > lastLetter {
		return Locator{}, ErrInvalidIdentifier
	}

	return Locator{
		Shelf: shelf,
		Slot:  int(second - firstLetter),
	}, nil
}

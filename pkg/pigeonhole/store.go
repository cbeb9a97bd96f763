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

// Package pigeonhole implements a two-level in-memory container for
// items keyed by two-word identifiers. The outer level maps the first
// word's initial letter to a shelf; each shelf holds 26 ordered slots
// indexed by the second word's initial letter. "Cafe Noir" lives on
// shelf 'C' in slot 13.
package pigeonhole

import (
	"sort"
	"strings"

	"github.com/pigeonhole-io/pigeonhole/pkg/identifier"
)

// Store is the pigeonhole container. It is not safe for concurrent
// use; callers needing that must serialize every operation.
type Store interface {
	// Len returns the total number of stored items. It is recomputed
	// on every call by walking the present shelves.
	Len() int

	// Get returns a borrowed reference to the item with the given
	// identifier. Malformed identifiers report a plain miss.
	Get(id string) (*Item, bool)

	// Add stores the item. It fails with ErrInvalidIdentifier or
	// ErrDuplicateIdentifier, leaving the store untouched.
	Add(item Item) error

	// Delete removes the item with the given identifier. It fails
	// with ErrInvalidIdentifier or ErrItemNotFound, leaving the store
	// untouched.
	Delete(id string) error

	// Range walks the items in display order: shelves in ascending
	// letter order, slots 0-25, items within a slot newest first.
	// Returning false from fn stops the walk.
	Range(fn func(*Item) bool)

	// String renders one identifier per line in Range order.
	String() string
}

type store struct {
	// shelves is populated lazily and sparsely. A shelf, once created
	// by a successful Add, is never removed, even when every slot on
	// it becomes empty again.
	shelves map[byte]*shelf
}

// New returns an empty Store.
func New() Store {
	return &store{
		shelves: map[byte]*shelf{},
	}
}

func (s *store) Len() int {
	var n int
	for _, sh := range s.shelves {
		n += sh.len()
	}

	return n
}

func (s *store) Get(id string) (*Item, bool) {
	loc, err := identifier.Parse(id)
	if err != nil {
		return nil, false
	}

	sh, ok := s.shelves[loc.Shelf]
	if !ok {
		return nil, false
	}

	item := sh.get(loc.Slot, id)
	if item == nil {
		return nil, false
	}

	return item, true
}

func (s *store) Add(item Item) error {
	loc, err := identifier.Parse(item.ID)
	if err != nil {
		return err
	}

	sh, ok := s.shelves[loc.Shelf]
	if !ok {
		sh = newShelf()
		s.shelves[loc.Shelf] = sh
	}

	if !sh.add(loc.Slot, item) {
		return ErrDuplicateIdentifier
	}

	return nil
}

func (s *store) Delete(id string) error {
	loc, err := identifier.Parse(id)
	if err != nil {
		return err
	}

	sh, ok := s.shelves[loc.Shelf]
	if !ok {
		return ErrItemNotFound
	}

	// The shelf stays allocated even when its last item goes away.
	if !sh.delete(loc.Slot, id) {
		return ErrItemNotFound
	}

	return nil
}

func (s *store) Range(fn func(*Item) bool) {
	letters := make([]byte, 0, len(s.shelves))
	for letter := range s.shelves {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	for _, letter := range letters {
		if !s.shelves[letter].rangeItems(fn) {
			return
		}
	}
}

func (s *store) String() string {
	var b strings.Builder
	s.Range(func(item *Item) bool {
		b.WriteString(item.String())
		b.WriteByte('\n')
		return true
	})

	return b.String()
}

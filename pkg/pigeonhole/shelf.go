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

package pigeonhole

// SlotCount is the number of slots on a shelf, one per letter A-Z.
const SlotCount = 26

// shelf is the dense inner level of the store: one ordered slot per
// second-word letter. Slots keep most-recently-added items first.
type shelf struct {
	slots [SlotCount][]Item
}

func newShelf() *shelf {
	return &shelf{}
}

// add prepends item to the slot. It reports false when an item with
// the same identifier is already present, leaving the slot unchanged.
func (s *shelf) add(slot int, item Item) bool {
	if s.find(slot, item.ID) >= 0 {
		return false
	}

	s.slots[slot] = append([]Item{item}, s.slots[slot]...)
	return true
}

// delete excises the item with the given identifier and reports
// whether a match was found. The relative order of the remaining
// items is preserved.
func (s *shelf) delete(slot int, id string) bool {
	i := s.find(slot, id)
	if i < 0 {
		return false
	}

	s.slots[slot] = append(s.slots[slot][:i], s.slots[slot][i+1:]...)
	return true
}

// get returns a borrowed reference to the item with the given
// identifier, or nil. The scan never leaves the addressed slot.
func (s *shelf) get(slot int, id string) *Item {
	if i := s.find(slot, id); i >= 0 {
		return &s.slots[slot][i]
	}

	return nil
}

// find returns the position of id in the slot, or -1. Identifiers are
// compared as full strings, byte for byte.
func (s *shelf) find(slot int, id string) int {
	for i := range s.slots[slot] {
		if s.slots[slot][i].ID == id {
			return i
		}
	}

	return -1
}

func (s *shelf) len() int {
	var n int
	for i := range s.slots {
		n += len(s.slots[i])
	}

	return n
}

// rangeItems walks slots 0-25 in ascending order and items within a
// slot in storage order. It reports false when fn stopped the walk.
func (s *shelf) rangeItems(fn func(*Item) bool) bool {
	for i := range s.slots {
		for j := range s.slots[i] {
			if !fn(&s.slots[i][j]) {
				return false
			}
		}
	}

	return true
}

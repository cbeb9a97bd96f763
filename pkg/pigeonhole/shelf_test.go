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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shelfSlotIDs(s *shelf, slot int) []string {
	ids := make([]string, 0, len(s.slots[slot]))
	for i := range s.slots[slot] {
		ids = append(ids, s.slots[slot][i].ID)
	}

	return ids
}

func TestShelfAdd(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, s *shelf)
	}{
		{
			name: "add prepends within a slot",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				assert.True(s.add(13, Item{ID: "Cafe Noir"}))
				assert.True(s.add(13, Item{ID: "Cafe Nutmeg"}))
				assert.Equal([]string{"Cafe Nutmeg", "Cafe Noir"}, shelfSlotIDs(s, 13))
			},
		},
		{
			name: "duplicate identifier is refused",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				assert.True(s.add(13, Item{ID: "Cafe Noir", Code: 1}))
				assert.False(s.add(13, Item{ID: "Cafe Noir", Code: 2}))
				assert.Equal(1, s.len())
				assert.Equal(uint64(1), s.slots[13][0].Code)
			},
		},
		{
			name: "same identifier in a different slot is unrelated",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				assert.True(s.add(13, Item{ID: "Cafe Noir"}))
				assert.True(s.add(0, Item{ID: "Cafe Noir"}))
				assert.Equal(2, s.len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, newShelf())
		})
	}
}

func TestShelfDelete(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, s *shelf)
	}{
		{
			name: "delete keeps the order of the remaining items",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				s.add(0, Item{ID: "Cafe Au-lait"})
				s.add(0, Item{ID: "Cafe Americano"})
				s.add(0, Item{ID: "Cup Ahead"})
				assert.True(s.delete(0, "Cafe Americano"))
				assert.Equal([]string{"Cup Ahead", "Cafe Au-lait"}, shelfSlotIDs(s, 0))
			},
		},
		{
			name: "delete misses an absent identifier",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				s.add(0, Item{ID: "Cafe Au-lait"})
				assert.False(s.delete(0, "Cafe Absent"))
				assert.Equal(1, s.len())
			},
		},
		{
			name: "delete the last item leaves an empty slot",
			expect: func(t *testing.T, s *shelf) {
				assert := assert.New(t)
				s.add(0, Item{ID: "Cafe Au-lait"})
				assert.True(s.delete(0, "Cafe Au-lait"))
				assert.Equal(0, s.len())
				assert.Empty(s.slots[0])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, newShelf())
		})
	}
}

func TestShelfGet(t *testing.T) {
	assert := assert.New(t)
	s := newShelf()
	s.add(13, Item{ID: "Cafe Noir", Code: 7})

	item := s.get(13, "Cafe Noir")
	assert.NotNil(item)
	assert.Equal(uint64(7), item.Code)

	// Full-string comparison: same coordinates, different rest.
	assert.Nil(s.get(13, "Cafe Nocturne"))
	assert.Nil(s.get(0, "Cafe Noir"))
}

func TestShelfRangeItems(t *testing.T) {
	assert := assert.New(t)
	s := newShelf()
	s.add(25, Item{ID: "Avocado Zebra"})
	s.add(0, Item{ID: "Avocado Apple"})

	var ids []string
	assert.True(s.rangeItems(func(item *Item) bool {
		ids = append(ids, item.ID)
		return true
	}))
	assert.Equal([]string{"Avocado Apple", "Avocado Zebra"}, ids)

	var n int
	assert.False(s.rangeItems(func(item *Item) bool {
		n++
		return false
	}))
	assert.Equal(1, n)
}

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

package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pigeonhole-io/pigeonhole/pkg/identifier"
	"github.com/pigeonhole-io/pigeonhole/pkg/pigeonhole"
)

func TestCatalogFetch(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		expect func(t *testing.T, item *pigeonhole.Item, err error)
	}{
		{
			name: "fetch a known identifier",
			id:   "Cafe Noir",
			expect: func(t *testing.T, item *pigeonhole.Item, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("Cafe Noir", item.ID)
				assert.NotEmpty(item.Time)
			},
		},
		{
			name: "fetch an unknown identifier",
			id:   "Unknown Entry",
			expect: func(t *testing.T, item *pigeonhole.Item, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, ErrProviderUnavailable)
				assert.Nil(item)
			},
		},
		{
			name: "fetch an arbitrary item",
			id:   "",
			expect: func(t *testing.T, item *pigeonhole.Item, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotEmpty(item.ID)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewCatalog(1)
			item, err := p.Fetch(tc.id)
			tc.expect(t, item, err)
		})
	}
}

func TestCatalogFetchIsSeeded(t *testing.T) {
	assert := assert.New(t)
	a := NewCatalog(42)
	b := NewCatalog(42)

	for i := 0; i < 20; i++ {
		itemA, errA := a.Fetch("")
		itemB, errB := b.Fetch("")
		assert.NoError(errA)
		assert.NoError(errB)
		assert.Equal(itemA.ID, itemB.ID)
	}
}

func TestCatalogIdentifiersAreWellFormed(t *testing.T) {
	assert := assert.New(t)
	for _, id := range catalogIdentifiers {
		_, err := identifier.Parse(id)
		assert.NoError(err, id)
	}
}

func TestRecordItemDropsFeedLink(t *testing.T) {
	assert := assert.New(t)
	record := &Record{
		ID:   "Cafe Noir",
		Code: 7,
		Time: "2025-01-01T00:00:00Z",
		Next: &Record{ID: "Cafe Nutmeg"},
	}

	item := record.Item()
	assert.Equal(pigeonhole.Item{ID: "Cafe Noir", Code: 7, Time: "2025-01-01T00:00:00Z"}, item)
}

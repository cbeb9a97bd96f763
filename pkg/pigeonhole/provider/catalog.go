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
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pigeonhole-io/pigeonhole/pkg/pigeonhole"
)

// catalogIdentifiers lists the identifiers the built-in provider can
// fabricate. Deliberately uneven across letters so random feeds
// produce collisions and crowded slots.
var catalogIdentifiers = []string{
	"Avocado Green",
	"Avocado Toast",
	"Amber Waves",
	"Banana Yellow",
	"Banana Split",
	"Bitter Lemon",
	"Cafe Noir",
	"Cafe Nutmeg",
	"Cafe Normandie",
	"Candy Apple",
	"Dusty Rose",
	"Ebony Pearl",
	"Forest Floor",
	"Golden Gate",
	"Golden Hour",
	"Harvest Moon",
	"Iron Gate",
	"Jade Empire",
	"Lunar Tide",
	"Maple Syrup",
	"Night Owl",
	"Ocean Drive",
	"Paper Crane",
	"Quiet Storm",
	"River Stone",
	"Silver Lining",
	"Tiffany Blue",
	"Umber Shade",
	"Velvet Rope",
	"Winter Palace",
	"Zebra Crossing",
}

// catalog is the default in-process Provider. It fabricates one
// record per catalog identifier at construction time and hands out
// copies.
type catalog struct {
	rnd     *rand.Rand
	records map[string]*Record
}

// NewCatalog returns the built-in provider. The seed makes the random
// picks of Fetch("") reproducible.
func NewCatalog(seed int64) Provider {
	records := make(map[string]*Record, len(catalogIdentifiers))

	// Records are chained via Next in catalog order, mirroring the
	// upstream feed layout. Consumers only ever see Item conversions.
	var next *Record
	now := time.Now().Format(time.RFC3339)
	for i := len(catalogIdentifiers) - 1; i >= 0; i-- {
		id := catalogIdentifiers[i]
		records[id] = &Record{
			ID:   id,
			Code: uint64(uuid.New().ID()),
			Time: now,
			Next: next,
		}
		next = records[id]
	}

	return &catalog{
		rnd:     rand.New(rand.NewSource(seed)),
		records: records,
	}
}

func (c *catalog) Fetch(id string) (*pigeonhole.Item, error) {
	if id == "" {
		id = catalogIdentifiers[c.rnd.Intn(len(catalogIdentifiers))]
	}

	record, ok := c.records[id]
	if !ok {
		return nil, errors.Wrapf(ErrProviderUnavailable, "no item %q in catalog", id)
	}

	item := record.Item()
	return &item, nil
}

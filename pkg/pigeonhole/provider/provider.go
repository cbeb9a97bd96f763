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

// Package provider fabricates items for the pigeonhole store. The
// store consumes the Provider interface and never depends on a
// concrete implementation.
package provider

import (
	"errors"

	"github.com/pigeonhole-io/pigeonhole/pkg/pigeonhole"
)

// ErrProviderUnavailable is returned when the provider cannot supply
// the requested item.
var ErrProviderUnavailable = errors.New("provider unavailable")

// Provider supplies items on demand. An empty identifier asks for an
// arbitrary item.
type Provider interface {
	Fetch(id string) (*pigeonhole.Item, error)
}

// Record is the provider's raw feed record. Next chains records the
// way the upstream feed delivers them; it is kept for shape
// compatibility only and is never followed.
type Record struct {
	ID   string
	Code uint64
	Time string
	Next *Record
}

// Item converts the record to a store item, dropping the feed link.
func (r *Record) Item() pigeonhole.Item {
	return pigeonhole.Item{
		ID:   r.ID,
		Code: r.Code,
		Time: r.Time,
	}
}

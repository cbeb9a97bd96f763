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
	"errors"

	"github.com/pigeonhole-io/pigeonhole/pkg/identifier"
)

var (
	// ErrInvalidIdentifier is returned by Add and Delete when the item
	// identifier does not follow the "FirstWord SecondWord" format.
	// Get treats such identifiers as a plain miss instead.
	ErrInvalidIdentifier = identifier.ErrInvalidIdentifier

	// ErrDuplicateIdentifier is returned by Add when an item with the
	// same identifier is already stored.
	ErrDuplicateIdentifier = errors.New("item already exists")

	// ErrItemNotFound is returned by Delete when no stored item has
	// the given identifier.
	ErrItemNotFound = errors.New("item not found")
)

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

// Item is a single stored record. ID is the unique key in the
// "FirstWord SecondWord" format; Code and Time are opaque to the
// store.
type Item struct {
	ID   string
	Code uint64
	Time string
}

// String renders the item as its identifier, or "(null)" when the
// identifier is absent.
func (i *Item) String() string {
	if i.ID == "" {
		return "(null)"
	}

	return i.ID
}

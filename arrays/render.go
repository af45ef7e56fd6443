// Copyright 2026 go-arrayops Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrays

import "strconv"

// Format renders data as a bracketed, comma-separated list, e.g.
// "[1, 2, 3]". A nil or empty slice renders as "[NULL]".
func Format[T Int](data []T) string {
	if len(data) == 0 {
		return "[NULL]"
	}

	// Rough guess: most elements are short; the buffer grows if not.
	buf := make([]byte, 0, 2+len(data)*4)
	buf = append(buf, '[')
	for i, v := range data {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	buf = append(buf, ']')
	return string(buf)
}

// Copyright 2025 walteh LLC
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

package comment

import "fmt"

// 🏷️ Markers holds the literal start and end marker text of a named block
type Markers struct {
	Start string
	End   string
}

// NewMarkers builds the markers for block name in dialect d, e.g.
// "// $Start-Feature$" or "<!-- $End-Feature$ -->".
func NewMarkers(name string, d Dialect) Markers {
	suffix := ""
	if d.HasEnd() {
		suffix = " " + d.End
	}
	return Markers{
		Start: fmt.Sprintf("%s $Start-%s$%s", d.Start, name, suffix),
		End:   fmt.Sprintf("%s $End-%s$%s", d.Start, name, suffix),
	}
}

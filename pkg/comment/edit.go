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

import (
	"strings"
	"unicode"

	"gitlab.com/tozd/go/errors"
)

// ✂️ Mode decides what happens to the lines between a pair of markers.
// Marker lines are removed in every mode.
type Mode int

const (
	KeepCode      Mode = iota // keep interior lines verbatim
	UncommentCode             // keep interior lines with one layer of comment removed
	DeleteCode                // drop interior lines
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case KeepCode:
		return "keep"
	case UncommentCode:
		return "uncomment"
	case DeleteCode:
		return "delete"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes
func (m Mode) Valid() bool {
	switch m {
	case KeepCode, UncommentCode, DeleteCode:
		return true
	default:
		return false
	}
}

// 🔍 ParseMode parses the textual form of a mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep", "keep_code":
		return KeepCode, nil
	case "uncomment", "uncomment_code":
		return UncommentCode, nil
	case "delete", "delete_code":
		return DeleteCode, nil
	default:
		return 0, errors.Errorf("unknown edit mode %q", s)
	}
}

// ✏️ Edit rewrites lines for the block called name.
//
// Any line containing the start marker opens the block and any line containing the
// end marker closes it; both are dropped. Blocks do not nest, and a block that is
// never closed runs to the end of the input.
func Edit(lines []string, name string, mode Mode, d Dialect) []string {
	markers := NewMarkers(name, d)
	out := make([]string, 0, len(lines))

	inside := false
	for _, line := range lines {
		if !inside {
			if strings.Contains(line, markers.Start) {
				inside = true
				continue
			}
			out = append(out, line)
			continue
		}

		if strings.Contains(line, markers.End) {
			inside = false
			continue
		}

		switch mode {
		case DeleteCode:
		case UncommentCode:
			out = append(out, Uncomment(line, d))
		case KeepCode:
			out = append(out, line)
		}
	}

	return out
}

// 🧽 Uncomment removes one layer of d's comment decoration from line.
// A single space after the start token goes with it; leading indentation stays.
func Uncomment(line string, d Dialect) string {
	if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), d.Start) {
		i := strings.Index(line, d.Start)
		rest := line[i+len(d.Start):]
		rest = strings.TrimPrefix(rest, " ")
		line = line[:i] + rest
	}

	if d.HasEnd() && strings.HasSuffix(strings.TrimRightFunc(line, unicode.IsSpace), d.End) {
		i := strings.LastIndex(line, d.End)
		line = line[:i] + line[i+len(d.End):]
	}

	return line
}

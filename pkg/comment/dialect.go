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
	"path/filepath"
	"slices"
	"strings"
)

// 💬 Dialect describes the comment syntax of a file type.
// End is empty for line comments.
type Dialect struct {
	Start string
	End   string
}

// HasEnd reports whether the dialect closes a comment with an end token
func (d Dialect) HasEnd() bool {
	return d.End != ""
}

var (
	Slash = Dialect{Start: "//"}
	XML   = Dialect{Start: "<!--", End: "-->"}
	Razor = Dialect{Start: "@*", End: "*@"}
	Hash  = Dialect{Start: "#"}
)

// 🗺️ dialects maps a lower-cased extension to its dialect
var dialects = map[string]Dialect{
	".cs":     Slash,
	".js":     Slash,
	".ts":     Slash,
	".json":   Slash,
	".css":    Slash,
	".scss":   Slash,
	".html":   XML,
	".config": XML,
	".xproj":  XML,
	".xml":    XML,
	".cshtml": Razor,
	".ini":    Hash,
	".txt":    Hash,
}

// 🔍 LookupDialect returns the dialect for a file extension such as ".cs".
// Matching is case-insensitive.
func LookupDialect(ext string) (Dialect, bool) {
	d, ok := dialects[strings.ToLower(ext)]
	return d, ok
}

// 🔍 ForFile returns the dialect for the extension of path
func ForFile(path string) (Dialect, bool) {
	return LookupDialect(filepath.Ext(path))
}

// Extensions returns every supported extension, sorted
func Extensions() []string {
	var keys []string
	for k := range dialects {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

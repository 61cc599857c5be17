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

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// buildInfo is what the binary knows about itself
type buildInfo struct {
	version  string
	revision string
	dirty    bool
	goos     string
	goarch   string
	goVer    string
}

func readBuildInfo() buildInfo {
	info := buildInfo{
		version: "dev",
		goos:    runtime.GOOS,
		goarch:  runtime.GOARCH,
		goVer:   runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.revision = s.Value
		case "vcs.modified":
			info.dirty = s.Value == "true"
		}
	}
	return info
}

// FormatVersion returns the version banner printed by the version command
func FormatVersion() string {
	info := readBuildInfo()

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 scaffoldrc %s\n", info.version)
	if info.revision != "" {
		rev := info.revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if info.dirty {
			rev += "-dirty"
		}
		fmt.Fprintf(&b, "revision: %s\n", rev)
	}
	fmt.Fprintf(&b, "go:       %s %s/%s\n", info.goVer, info.goos, info.goarch)
	return b.String()
}

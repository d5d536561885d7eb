// Package version reports which build of pwtable is running.
package version

import (
	"runtime/debug"
	"strings"
)

const repo = "https://github.com/pwtable/pwtable"

type build struct {
	module   string // e.g. v1.2.0 when installed with go install
	revision string
	modified bool
}

func read() (build, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build{}, false
	}
	b := build{module: info.Main.Version}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}
	// Pseudo-versions end in the commit hash: v0.0.0-20230107144322-7a5757f46310.
	if b.revision == "" {
		if idx := strings.LastIndexByte(b.module, '-'); idx > -1 {
			b.revision = b.module[idx+1:]
		}
	}
	return b, true
}

// Read returns a human-readable description of the running build.
func Read() string {
	b, ok := read()
	if !ok {
		return "pwtable (unknown build)"
	}
	switch {
	case b.revision != "":
		s := "pwtable " + repo + "/commit/" + b.revision
		if b.modified {
			s += " (modified)"
		}
		return s
	case b.module != "" && b.module != "(devel)":
		return "pwtable " + b.module
	default:
		return "pwtable (devel)"
	}
}

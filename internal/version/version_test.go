package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.Commit != Commit {
		t.Errorf("Commit = %q, want %q", info.Commit, Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch form", info.Platform)
	}
}

func TestFull(t *testing.T) {
	out := Full()

	if !strings.HasPrefix(out, "tmxclean ") {
		t.Errorf("Full() = %q, want tmxclean prefix", out)
	}
	for _, field := range []string{"Commit:", "Built:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out, field) {
			t.Errorf("Full() missing %q: %q", field, out)
		}
	}
}

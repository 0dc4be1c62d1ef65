package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestBanner(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Banner(false); got != "quill 1.2.3\n" {
		t.Fatalf("Banner = %q", got)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15T10:30:00Z"
	got := Banner(false)
	for _, want := range []string{"commit: abc123", "built:  2024-01-15T10:30:00Z"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Banner = %q, missing %q", got, want)
		}
	}
}

func TestColoredKeepsText(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = origVersion, origNoColor })

	color.NoColor = true
	for _, v := range []string{"0.1.0-dev", "2.0.1", "weird"} {
		Version = v
		if got := Colored(); got != v {
			t.Fatalf("Colored(%q) = %q", v, got)
		}
	}
}

package buildinfo

import (
	"strings"
	"testing"
)

func setBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestString(t *testing.T) {
	setBuildInfo(t, "v1.0.0", "abc123", "2026-01-01")

	want := "version: v1.0.0\ncommit: abc123\nbuilt: 2026-01-01"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		commit string
		want   string
	}{
		{"0123456789abcdef", "v1.0.0 (0123456)"},
		{"abc", "v1.0.0 (abc)"},
	}
	for _, tt := range tests {
		t.Run(tt.commit, func(t *testing.T) {
			setBuildInfo(t, "v1.0.0", tt.commit, "")
			if got := Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	setBuildInfo(t, "v2.0.0", "deadbeef", "today")

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v2.0.0\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: deadbeef") {
		t.Errorf("Template() missing commit: %q", got)
	}
}

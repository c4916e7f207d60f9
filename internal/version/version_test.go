package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{"Dev", "unknown", "unknown", "huewheel version dev ("},
		{"Release", "0123456789abcdef", "2026-01-02T03:04:05Z", "(commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{"ShortCommit", "abc", "2026-01-02T03:04:05Z", "(commit: abc, built:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, tt.date
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Short() {
		t.Errorf("Version = %q, want %q", info.Version, Short())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
	if len(info.Harmonies) != 5 || info.Harmonies[0] != "triad" {
		t.Errorf("Harmonies = %v, want the five harmonies starting with triad", info.Harmonies)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: "deadbeefcafe", Date: "unknown", GoVersion: "go1.25.1", Platform: "linux/amd64"}
	if got, want := info.String(), "huewheel version 1.2.3 (go1.25.1, linux/amd64)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

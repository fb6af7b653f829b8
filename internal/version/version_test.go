package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version == "" {
		t.Error("Version should not be empty")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
}

func TestShort(t *testing.T) {
	s := Short()
	if !strings.HasPrefix(s, ApplicationName) {
		t.Errorf("Short() = %q, want %q prefix", s, ApplicationName)
	}
}

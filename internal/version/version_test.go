package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetBuildInfoDefaults(t *testing.T) {
	info := GetBuildInfo()
	if info.Version != Version || info.Commit != Commit || info.Date != Date {
		t.Errorf("GetBuildInfo() = %+v, want fields matching package vars", info)
	}
}

func TestBuildInfoString(t *testing.T) {
	info := BuildInfo{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-01"}
	s := info.String()
	for _, want := range []string{"v1.2.3", "abc123", "2026-01-01"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestBuildInfoShort(t *testing.T) {
	info := BuildInfo{Version: "v1.2.3"}
	if info.Short() != "v1.2.3" {
		t.Errorf("Short() = %q, want v1.2.3", info.Short())
	}
}

func TestBuildInfoJSON(t *testing.T) {
	info := BuildInfo{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-01"}
	data, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if decoded["version"] != "v1.2.3" || decoded["commit"] != "abc123" || decoded["date"] != "2026-01-01" {
		t.Errorf("decoded JSON = %+v", decoded)
	}
}

// ABOUTME: Tests for the sizing data model
// ABOUTME: Verifies origin precedence ordering and JSON round-tripping

package models

import (
	"encoding/json"
	"testing"
)

func TestSizeOriginPrecedence(t *testing.T) {
	// Precedence is a total order: CommandLine > Ergonomic > Default.
	if !(OriginCommandLine > OriginErgonomic && OriginErgonomic > OriginDefault) {
		t.Error("expected CommandLine > Ergonomic > Default")
	}
}

func TestSizeOriginJSON(t *testing.T) {
	for _, origin := range []SizeOrigin{OriginDefault, OriginErgonomic, OriginCommandLine} {
		data, err := json.Marshal(origin)
		if err != nil {
			t.Fatalf("marshal %v: %v", origin, err)
		}

		var decoded SizeOrigin
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if decoded != origin {
			t.Errorf("round-trip changed %v to %v", origin, decoded)
		}
	}
}

func TestSizeOriginJSONUnknown(t *testing.T) {
	var origin SizeOrigin
	if err := json.Unmarshal([]byte(`"hand-tuned"`), &origin); err == nil {
		t.Error("expected an error for unknown origin")
	}
}

func TestSizeFlagExplicit(t *testing.T) {
	if (SizeFlag{Bytes: 1, Origin: OriginErgonomic}).Explicit() {
		t.Error("ergonomic flag must not be explicit")
	}
	if !(SizeFlag{Bytes: 1, Origin: OriginCommandLine}).Explicit() {
		t.Error("command-line flag must be explicit")
	}
}

func TestHeapConfigurationJSON(t *testing.T) {
	cfg := HeapConfiguration{
		InitialHeapSize: 100 << 20,
		MaxHeapSize:     256 << 20,
		MinHeapSize:     40 << 20,
		NewSize:         SizeFlag{Bytes: 20 << 20, Origin: OriginCommandLine},
		NewRatio:        2,
		HeapAlignment:   1 << 20,
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded HeapConfiguration
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != cfg {
		t.Errorf("round-trip changed %+v to %+v", cfg, decoded)
	}
}

package models

import (
	"encoding/json"
	"testing"
)

func TestOptionSnapshotUnmarshalLenientPrice(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{"number", `{"id":"roof5","label":"Transparent Roof","price":5000}`, 5000},
		{"numeric string", `{"id":"roof5","price":"5000"}`, 5000},
		{"garbage string", `{"id":"roof5","price":"lots"}`, 0},
		{"null", `{"id":"roof5","price":null}`, 0},
		{"missing", `{"id":"roof5"}`, 0},
	}

	for _, tt := range tests {
		var snap OptionSnapshot
		if err := json.Unmarshal([]byte(tt.payload), &snap); err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if snap.Price != tt.expected {
			t.Errorf("%s: price = %v, want %v", tt.name, snap.Price, tt.expected)
		}
		if snap.ID != "roof5" {
			t.Errorf("%s: id = %q, want %q", tt.name, snap.ID, "roof5")
		}
	}
}

func TestCategoryImageMapScanValueRoundTrip(t *testing.T) {
	original := CategoryImageMap{
		"exterior": {{ID: "exterior9", Label: "Accelerate Yellow", Image: "/assets/images/exteriors/accelerate_yellow.png", Price: 2000}},
		"roof":     {},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var scanned CategoryImageMap
	if err := scanned.Scan(value.([]byte)); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(scanned) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(scanned))
	}
	ext := scanned["exterior"]
	if len(ext) != 1 || ext[0].ID != "exterior9" || ext[0].Price != 2000 {
		t.Errorf("exterior snapshot did not survive the round trip: %+v", ext)
	}
	if len(scanned["roof"]) != 0 {
		t.Errorf("roof should round-trip as empty, got %+v", scanned["roof"])
	}
}

func TestJSONBValueDefaults(t *testing.T) {
	// nil custom types must serialize to valid empty JSON, not SQL NULL.
	var images CategoryImageMap
	if v, _ := images.Value(); string(v.([]byte)) != "{}" {
		t.Errorf("nil CategoryImageMap Value = %s, want {}", v)
	}

	var list ImageList
	if v, _ := list.Value(); string(v.([]byte)) != "[]" {
		t.Errorf("nil ImageList Value = %s, want []", v)
	}

	var tags TagList
	if v, _ := tags.Value(); string(v.([]byte)) != "[]" {
		t.Errorf("nil TagList Value = %s, want []", v)
	}
}

func TestScanNilColumns(t *testing.T) {
	var images CategoryImageMap
	if err := images.Scan(nil); err != nil {
		t.Errorf("CategoryImageMap.Scan(nil) error: %v", err)
	}
	if images == nil {
		t.Error("CategoryImageMap.Scan(nil) should produce an empty map")
	}

	var owner Owner
	if err := owner.Scan(nil); err != nil {
		t.Errorf("Owner.Scan(nil) error: %v", err)
	}
	if owner != (Owner{}) {
		t.Errorf("Owner.Scan(nil) should produce a zero Owner, got %+v", owner)
	}
}

func TestScanRejectsNonBytes(t *testing.T) {
	var images CategoryImageMap
	if err := images.Scan("not bytes"); err == nil {
		t.Error("CategoryImageMap.Scan(string) should fail")
	}
}

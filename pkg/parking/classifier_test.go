package parking

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestClassifyPartitionsActions(t *testing.T) {
	csvData := `Latitude,Longitude,Action
13.0827,80.2707,Searching
13.0901,80.2311,Left
13.1002,80.2455,Parked
13.0755,80.2612,Parked
`

	result := Classify(strings.NewReader(csvData), zap.NewNop())

	if len(result.GetCongested()) != 2 {
		t.Errorf("congested = %d, want 2", len(result.GetCongested()))
	}
	if len(result.GetAvailable()) != 2 {
		t.Errorf("available = %d, want 2", len(result.GetAvailable()))
	}
	if len(result.GetWarnings()) != 0 {
		t.Errorf("unexpected warnings: %v", result.GetWarnings())
	}

	first := result.GetCongested()[0]
	if first.GetCoord().GetLat() != 13.0827 || first.GetCoord().GetLon() != 80.2707 {
		t.Errorf("first congested event coord = %+v", first.GetCoord())
	}
	if first.GetAction() != "Searching" {
		t.Errorf("first congested event action = %q", first.GetAction())
	}
}

func TestClassifyMissingColumns(t *testing.T) {
	csvData := `Lat,Lon,State
13.0827,80.2707,Searching
`

	result := Classify(strings.NewReader(csvData), zap.NewNop())

	if len(result.GetCongested()) != 0 || len(result.GetAvailable()) != 0 {
		t.Errorf("expected empty sets, got %d congested, %d available",
			len(result.GetCongested()), len(result.GetAvailable()))
	}
	if len(result.GetWarnings()) != 1 {
		t.Fatalf("warnings = %v, want exactly one", result.GetWarnings())
	}
	if !strings.Contains(result.GetWarnings()[0], "missing required columns") {
		t.Errorf("warning = %q", result.GetWarnings()[0])
	}
}

func TestClassifySkipsBadRows(t *testing.T) {
	csvData := `Latitude,Longitude,Action
not-a-number,80.2707,Searching
13.0901,80.2311,Left
13.1002,,Parked
13.0755,80.2612,Parked
`

	result := Classify(strings.NewReader(csvData), zap.NewNop())

	if len(result.GetCongested()) != 1 {
		t.Errorf("congested = %d, want 1", len(result.GetCongested()))
	}
	if len(result.GetAvailable()) != 1 {
		t.Errorf("available = %d, want 1", len(result.GetAvailable()))
	}
	if len(result.GetWarnings()) != 2 {
		t.Errorf("warnings = %v, want 2", result.GetWarnings())
	}
}

func TestClassifyIgnoresUnknownActions(t *testing.T) {
	csvData := `Latitude,Longitude,Action
13.0827,80.2707,Charging
13.0901,80.2311,Parked
`

	result := Classify(strings.NewReader(csvData), zap.NewNop())

	if len(result.GetCongested()) != 0 {
		t.Errorf("congested = %d, want 0", len(result.GetCongested()))
	}
	if len(result.GetAvailable()) != 1 {
		t.Errorf("available = %d, want 1", len(result.GetAvailable()))
	}
}

func TestClassifyEmptyUpload(t *testing.T) {
	result := Classify(strings.NewReader(""), zap.NewNop())

	if len(result.GetCongested()) != 0 || len(result.GetAvailable()) != 0 {
		t.Error("expected empty sets for empty upload")
	}
	if len(result.GetWarnings()) != 1 {
		t.Errorf("warnings = %v, want exactly one", result.GetWarnings())
	}
}

func TestClassifyExtraColumns(t *testing.T) {
	csvData := `DeviceId,Latitude,Longitude,Speed,Action
dev-1,13.0827,80.2707,12.5,Searching
dev-2,13.0901,80.2311,0.0,Parked
`

	result := Classify(strings.NewReader(csvData), zap.NewNop())

	if len(result.GetCongested()) != 1 || len(result.GetAvailable()) != 1 {
		t.Errorf("got %d congested, %d available, want 1 and 1",
			len(result.GetCongested()), len(result.GetAvailable()))
	}
}

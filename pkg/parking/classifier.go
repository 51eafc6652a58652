package parking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"go.uber.org/zap"
)

// Event one uploaded parking record.
type Event struct {
	coord  geo.Coordinate
	action string
}

func NewEvent(lat, lon float64, action string) Event {
	return Event{
		coord:  geo.NewCoordinate(lat, lon),
		action: action,
	}
}

func (e Event) GetCoord() geo.Coordinate {
	return e.coord
}

func (e Event) GetAction() string {
	return e.action
}

// Classification disjoint partition of the uploaded events. Computed once per
// upload, request-scoped, never persisted.
type Classification struct {
	congested []Event
	available []Event
	warnings  []string
}

func (c Classification) GetCongested() []Event {
	return c.congested
}

func (c Classification) GetAvailable() []Event {
	return c.available
}

func (c Classification) GetWarnings() []string {
	return c.warnings
}

const (
	columnLatitude  = "Latitude"
	columnLongitude = "Longitude"
	columnAction    = "Action"
)

// Classify partitions the uploaded CSV into congested (Searching/Left) and
// available (Parked) events. A missing required column downgrades to a
// warning with two empty sets; a malformed row is skipped with a warning.
// Nothing here ever aborts the session.
func Classify(r io.Reader, log *zap.Logger) Classification {
	result := Classification{
		congested: make([]Event, 0),
		available: make([]Event, 0),
		warnings:  make([]string, 0),
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		result.warnings = append(result.warnings, "uploaded file is empty or not a readable CSV")
		log.Warn("parking upload unreadable", zap.Error(err))
		return result
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	latIdx, latOk := colIdx[columnLatitude]
	lonIdx, lonOk := colIdx[columnLongitude]
	actIdx, actOk := colIdx[columnAction]
	if !latOk || !lonOk || !actOk {
		warning := fmt.Sprintf("CSV file missing required columns: %s, %s, %s",
			columnLatitude, columnLongitude, columnAction)
		result.warnings = append(result.warnings, warning)
		log.Warn(warning, zap.Strings("header", header))
		return result
	}

	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.warnings = append(result.warnings, fmt.Sprintf("row %d is malformed, skipped", rowNum))
			log.Warn("malformed parking row", zap.Int("row", rowNum), zap.Error(err))
			continue
		}
		if latIdx >= len(record) || lonIdx >= len(record) || actIdx >= len(record) {
			result.warnings = append(result.warnings, fmt.Sprintf("row %d has too few columns, skipped", rowNum))
			continue
		}

		lat, latErr := strconv.ParseFloat(record[latIdx], 64)
		lon, lonErr := strconv.ParseFloat(record[lonIdx], 64)
		if latErr != nil || lonErr != nil {
			result.warnings = append(result.warnings, fmt.Sprintf("row %d has invalid coordinates, skipped", rowNum))
			continue
		}

		action := record[actIdx]
		event := NewEvent(lat, lon, action)
		switch action {
		case pkg.ACTION_SEARCHING, pkg.ACTION_LEFT:
			result.congested = append(result.congested, event)
		case pkg.ACTION_PARKED:
			result.available = append(result.available, event)
		}
		// unrecognized actions are neither congested nor available
	}

	return result
}

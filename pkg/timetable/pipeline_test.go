package timetable

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pulsemap/pulse/pkg/cif"
	"github.com/pulsemap/pulse/pkg/config"
	"github.com/pulsemap/pulse/pkg/operators"
)

func testConsolidator() Consolidator {
	pipeline := config.Defaults()
	pipeline.Date = "2026-02-10"

	return Consolidator{
		Resolver: testResolver(),
		AllowList: operators.AllowList{
			"GW": {Name: "Great Western Railway", Color: "#0a493e"},
			"SR": {Name: "ScotRail", Color: "#1a5ba5"},
		},
		Pipeline: pipeline,
	}
}

func TestRunOverlayWins(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X1", "P", "1111111", stop("L1", "0800"), stop("L2", "0830")),
		variant("X1", "O", "1111111", stop("L1", "0805"), stop("L2", "0835")),
	}

	document := consolidator.Run(schedules)

	if len(document.Trains) != 1 {
		t.Fatalf("expected 1 train, got %d", len(document.Trains))
	}

	train := document.Trains[0]
	if train.Path[0].Seconds != 8*3600+5*60 {
		t.Errorf("expected the overlay's 08:05 departure, got %d", train.Path[0].Seconds)
	}
}

func TestRunCancelledUIDSuppressed(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X1", "P", "1111111", stop("L1", "0800"), stop("L2", "0830")),
		variant("X1", "C", "1111111", stop("L1", "0800"), stop("L2", "0830")),
	}

	document := consolidator.Run(schedules)

	if len(document.Trains) != 0 {
		t.Errorf("expected no trains, got %d", len(document.Trains))
	}
	if document.Meta.TotalTrains != 0 {
		t.Errorf("expected total_trains 0, got %d", document.Meta.TotalTrains)
	}
}

func TestRunNoUsableWaypoints(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X2", "P", "1111111", cif.ScheduleLocation{TiplocCode: "L3"}),
	}

	document := consolidator.Run(schedules)

	if len(document.Trains) != 0 {
		t.Errorf("expected X2 to be absent from output, got %d trains", len(document.Trains))
	}
}

func TestRunOperatorFilter(t *testing.T) {
	consolidator := testConsolidator()

	unknownOperator := variant("X3", "P", "1111111", stop("L1", "0800"), stop("L2", "0830"))
	unknownOperator.ATOCCode = "ZZ"

	schedules := []*cif.Schedule{
		unknownOperator,
		variant("X4", "P", "1111111", stop("L1", "0900"), stop("L2", "0930")),
	}

	document := consolidator.Run(schedules)

	if len(document.Trains) != 1 {
		t.Fatalf("expected 1 train, got %d", len(document.Trains))
	}
	if document.Trains[0].ID != "X4" {
		t.Errorf("expected X4 to survive, got %s", document.Trains[0].ID)
	}

	if _, exists := document.Operators["ZZ"]; exists {
		t.Error("ZZ must never appear in the operators map")
	}
	if _, exists := document.Operators["SR"]; exists {
		t.Error("operators with no surviving trains must not appear in the output")
	}
	if _, exists := document.Operators["GW"]; !exists {
		t.Error("expected GW in the operators map")
	}
}

func TestRunReducedPrecisionLeavesFullPrecisionIntact(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X1", "P", "1111111", stop("L1", "0800"), stop("L2", "0830")),
	}

	fullPrecision := consolidator.BuildTrains(schedules)
	if len(fullPrecision) != 1 {
		t.Fatalf("expected 1 full-precision train, got %d", len(fullPrecision))
	}
	if fullPrecision[0].Path[0].Lng != -0.98765 {
		t.Fatalf("expected 5dp intermediate, got %v", fullPrecision[0].Path[0].Lng)
	}

	document := consolidator.Run(schedules)

	if document.Trains[0].Path[0].Lng != -0.9877 {
		t.Errorf("expected 4dp output coordinate, got %v", document.Trains[0].Path[0].Lng)
	}
}

func TestRunIdempotent(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X1", "P", "1111111", stop("L1", "0800"), stop("L2", "0830")),
		variant("X1", "O", "1111111", stop("L1", "0805"), stop("L2", "0835")),
		variant("X4", "P", "1111111", stop("L2", "0900"), stop("L3", "0930")),
	}

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")

	if err := consolidator.Run(schedules).Write(pathA); err != nil {
		t.Fatal(err)
	}
	if err := consolidator.Run(schedules).Write(pathB); err != nil {
		t.Fatal(err)
	}

	bodyA, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	bodyB, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(bodyA, bodyB) {
		t.Error("identical inputs must produce byte-identical output")
	}
}

func TestDocumentShape(t *testing.T) {
	consolidator := testConsolidator()

	schedules := []*cif.Schedule{
		variant("X1", "P", "1111111", stop("L1", "0800"), stop("L2", "0830")),
	}

	body, err := json.Marshal(consolidator.Run(schedules))
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Meta struct {
			Date        string `json:"date"`
			TotalTrains int    `json:"total_trains"`
			Source      string `json:"source"`
		} `json:"meta"`
		Operators map[string]struct {
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"operators"`
		Trains []struct {
			ID   string       `json:"id"`
			Op   string       `json:"op"`
			From string       `json:"from"`
			To   string       `json:"to"`
			Path [][3]float64 `json:"path"`
		} `json:"trains"`
	}

	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("output does not match the expected shape: %v", err)
	}

	if decoded.Meta.Date != "2026-02-10" || decoded.Meta.TotalTrains != 1 {
		t.Errorf("unexpected meta: %+v", decoded.Meta)
	}
	if decoded.Meta.Source != "Network Rail SCHEDULE" {
		t.Errorf("unexpected source: %q", decoded.Meta.Source)
	}

	train := decoded.Trains[0]
	if train.ID != "X1" || train.Op != "GW" {
		t.Errorf("unexpected train identity: %+v", train)
	}
	if len(train.Path) != 2 {
		t.Fatalf("expected path of 2, got %d", len(train.Path))
	}
	if train.Path[0][2] != 8*3600 {
		t.Errorf("expected third path element to be seconds, got %v", train.Path[0][2])
	}
}

func TestWaypointRoundTrip(t *testing.T) {
	original := Waypoint{Lng: -0.1755, Lat: 51.5154, Seconds: 28800}

	body, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	if string(body) != "[-0.1755,51.5154,28800]" {
		t.Errorf("unexpected encoding: %s", body)
	}

	var decoded Waypoint
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != original {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

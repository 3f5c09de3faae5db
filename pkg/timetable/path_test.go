package timetable

import (
	"testing"

	"github.com/pulsemap/pulse/pkg/cif"
	"github.com/pulsemap/pulse/pkg/stations"
)

func testResolver() *stations.Resolver {
	return stations.NewResolver(
		map[string]string{
			"L1": "AAA",
			"L2": "BBB",
			"L3": "CCC",
		},
		map[string]stations.Station{
			"AAA": {CRS: "AAA", Name: "Alphaville", Lat: 51.123456, Lng: -0.987654},
			"BBB": {CRS: "BBB", Name: "Betaton", Lat: 52.5, Lng: -1.5},
			"CCC": {CRS: "CCC", Name: "Gammabury", Lat: 53.25, Lng: -2.25},
		},
	)
}

func TestBuildPath(t *testing.T) {
	builder := &pathBuilder{resolver: testResolver(), precision: 5}

	schedule := variant("X1", "P", "1111111",
		stop("L1", "0800"),
		stop("L2", "0830"),
		stop("L3", "0900"),
	)

	train := builder.build(schedule)
	if train == nil {
		t.Fatal("expected a train")
	}

	if train.ID != "X1" || train.Operator != "GW" {
		t.Errorf("unexpected identity: %+v", train)
	}
	if train.From != "Alphaville" || train.To != "Gammabury" {
		t.Errorf("unexpected endpoints: from %q to %q", train.From, train.To)
	}
	if len(train.Path) != 3 {
		t.Fatalf("expected 3 waypoints, got %d", len(train.Path))
	}

	first := train.Path[0]
	if first.Lng != -0.98765 || first.Lat != 51.12346 {
		t.Errorf("expected coordinates rounded to 5 decimal places, got %v %v", first.Lng, first.Lat)
	}
	if first.Seconds != 8*3600 {
		t.Errorf("expected departure at 08:00, got %d", first.Seconds)
	}
}

func TestBuildPathSortsByTime(t *testing.T) {
	builder := &pathBuilder{resolver: testResolver(), precision: 5}

	// Feed order is physical stop order, which the feed does not guarantee
	// to be monotonic in time
	schedule := variant("X1", "P", "1111111",
		stop("L1", "0900"),
		stop("L2", "0800"),
		stop("L3", "0830"),
	)

	train := builder.build(schedule)
	if train == nil {
		t.Fatal("expected a train")
	}

	for i := 1; i < len(train.Path); i++ {
		if train.Path[i].Seconds < train.Path[i-1].Seconds {
			t.Fatalf("path not sorted by time: %v", train.Path)
		}
	}

	// Endpoints come from the raw first/last stops, not the sorted path
	if train.From != "Alphaville" || train.To != "Gammabury" {
		t.Errorf("expected declared endpoints to survive sorting, got from %q to %q", train.From, train.To)
	}
}

func TestBuildPathDropsUnusableStops(t *testing.T) {
	tests := []struct {
		name      string
		schedule  *cif.Schedule
		waypoints int
	}{
		{
			name: "unresolvable tiploc dropped",
			schedule: variant("X1", "P", "1111111",
				stop("L1", "0800"),
				stop("UNKNOWN", "0815"),
				stop("L2", "0830"),
			),
			waypoints: 2,
		},
		{
			name: "timeless stop dropped",
			schedule: variant("X1", "P", "1111111",
				stop("L1", "0800"),
				cif.ScheduleLocation{TiplocCode: "L2"},
				stop("L3", "0900"),
			),
			waypoints: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := &pathBuilder{resolver: testResolver(), precision: 5}

			train := builder.build(tt.schedule)
			if train == nil {
				t.Fatal("expected a train")
			}
			if len(train.Path) != tt.waypoints {
				t.Errorf("expected %d waypoints, got %d", tt.waypoints, len(train.Path))
			}
		})
	}
}

func TestBuildPathTooShort(t *testing.T) {
	tests := []struct {
		name     string
		schedule *cif.Schedule
	}{
		{
			name:     "no usable times at all",
			schedule: variant("X2", "P", "1111111", cif.ScheduleLocation{TiplocCode: "L3"}),
		},
		{
			name:     "single surviving waypoint",
			schedule: variant("X2", "P", "1111111", stop("L1", "0800"), stop("UNKNOWN", "0900")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := &pathBuilder{resolver: testResolver(), precision: 5}

			if train := builder.build(tt.schedule); train != nil {
				t.Errorf("expected no train, got %+v", train)
			}
		})
	}
}

func TestBuildPathUnknownEndpointName(t *testing.T) {
	builder := &pathBuilder{resolver: testResolver(), precision: 5}

	schedule := variant("X1", "P", "1111111",
		stop("UNKNOWN", "0750"),
		stop("L1", "0800"),
		stop("L2", "0830"),
	)

	train := builder.build(schedule)
	if train == nil {
		t.Fatal("expected a train")
	}
	if train.From != "?" {
		t.Errorf("expected unresolvable origin to display as ?, got %q", train.From)
	}
}

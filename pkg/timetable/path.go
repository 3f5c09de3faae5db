package timetable

import (
	"math"
	"sort"
	"strings"

	"github.com/pulsemap/pulse/pkg/cif"
	"github.com/pulsemap/pulse/pkg/stations"
)

// pathBuilder turns winning schedules into geocoded trains, remembering
// which TIPLOCs failed to resolve so they can be reported once per run.
type pathBuilder struct {
	resolver      *stations.Resolver
	precision     int
	failedTiplocs []string
}

// build converts a schedule's calling points into a time ordered waypoint
// path. Stops that cannot be geocoded or carry no usable time are dropped;
// a path with fewer than 2 waypoints is no train at all.
func (b *pathBuilder) build(schedule *cif.Schedule) *Train {
	var path []Waypoint

	for _, location := range schedule.Segment.Locations {
		tiploc := strings.TrimSpace(location.TiplocCode)

		station, exists := b.resolver.Lookup(tiploc)
		if !exists {
			b.failedTiplocs = append(b.failedTiplocs, tiploc)
			continue
		}

		seconds, ok := cif.LocationTime(location)
		if !ok {
			continue
		}

		path = append(path, Waypoint{
			Lng:     roundTo(station.Lng, b.precision),
			Lat:     roundTo(station.Lat, b.precision),
			Seconds: seconds,
		})
	}

	if len(path) < 2 {
		return nil
	}

	// The feed guarantees stop order, not time order
	sort.SliceStable(path, func(i, j int) bool {
		return path[i].Seconds < path[j].Seconds
	})

	locations := schedule.Segment.Locations
	from := b.endpointName(locations[0])
	to := b.endpointName(locations[len(locations)-1])

	return &Train{
		ID:       schedule.TrainUID,
		Operator: schedule.ATOCCode,
		From:     from,
		To:       to,
		Path:     path,
	}
}

// endpointName resolves a display name from a raw calling point. Origin and
// destination come from the feed's declared first and last stops, even when
// time sorting has reordered the waypoints in between.
func (b *pathBuilder) endpointName(location cif.ScheduleLocation) string {
	station, exists := b.resolver.Lookup(strings.TrimSpace(location.TiplocCode))
	if !exists {
		return "?"
	}

	return station.Name
}

func roundTo(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}

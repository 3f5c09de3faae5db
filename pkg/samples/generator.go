package samples

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/pulsemap/pulse/pkg/timetable"
)

// Generator produces an illustrative trains dataset over a hand-built UK
// network. The data is seeded and deterministic; it carries no overlay
// resolution and stands in for real Network Rail output during development.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate builds every sample service and assembles them into the same
// document shape the timetable pipeline emits, marked as sample data.
func (g *Generator) Generate() *timetable.Document {
	trains := g.generateTrains()

	// Shuffle to avoid rendering artifacts from sorted data
	g.rng.Shuffle(len(trains), func(i, j int) {
		trains[i], trains[j] = trains[j], trains[i]
	})

	return &timetable.Document{
		Meta: timetable.Meta{
			Date:        time.Now().Format("2006-01-02"),
			TotalTrains: len(trains),
			Source:      "sample",
			Note:        "Generated sample data for development. Replace with real Network Rail data.",
		},
		Operators: sampleOperators,
		Trains:    trains,
	}
}

func (g *Generator) generateTrains() []*timetable.Train {
	var trains []*timetable.Train
	trainCounter := map[string]int{}

	for _, route := range sampleRoutes {
		directions := [][]string{route.Stations}
		if route.Bidirectional {
			reversed := make([]string, len(route.Stations))
			for i, code := range route.Stations {
				reversed[len(route.Stations)-1-i] = code
			}
			directions = append(directions, reversed)
		}

		for _, direction := range directions {
			services := route.ServicesPerDay
			if route.Bidirectional {
				services = services / 2
			}
			if services < 1 {
				services = 1
			}

			for _, departure := range g.departureTimes(services, route.Operator) {
				trainCounter[route.Operator] += 1
				trainID := fmt.Sprintf("%s%04d", route.Operator, trainCounter[route.Operator])

				path := g.buildPath(direction, route.AvgSpeedMPH, departure)
				path = g.addIntermediatePoints(path, 2)

				trains = append(trains, &timetable.Train{
					ID:       trainID,
					Operator: route.Operator,
					From:     sampleStations[direction[0]].Name,
					To:       sampleStations[direction[len(direction)-1]].Name,
					Path:     path,
				})
			}
		}
	}

	return trains
}

// departureWindows weights departures towards the morning and evening peaks.
var departureWindows = []struct {
	Start  float64
	End    float64
	Weight float64
}{
	{4 * 3600, 5.5 * 3600, 0.02},    // Very early
	{5.5 * 3600, 6.5 * 3600, 0.06},  // Early morning
	{6.5 * 3600, 9.5 * 3600, 0.25},  // Morning rush
	{9.5 * 3600, 12 * 3600, 0.15},   // Late morning
	{12 * 3600, 14 * 3600, 0.12},    // Midday
	{14 * 3600, 16.5 * 3600, 0.12},  // Afternoon
	{16.5 * 3600, 19.5 * 3600, 0.20}, // Evening rush
	{19.5 * 3600, 21 * 3600, 0.06},  // Evening
	{21 * 3600, 23 * 3600, 0.02},    // Late
}

func (g *Generator) departureTimes(services int, operator string) []int {
	// Sleeper services depart late evening
	if operator == "CS" {
		return []int{21*3600 + g.rng.Intn(3601)}
	}

	var times []int
	for i := 0; i < services; i++ {
		r := g.rng.Float64()
		cumulative := 0.0
		chosen := false

		for _, window := range departureWindows {
			cumulative += window.Weight
			if r <= cumulative {
				t := int(window.Start) + g.rng.Intn(int(window.End-window.Start)+1)
				// Round to nearest 5 minutes for realism
				t = int(math.Round(float64(t)/300)) * 300
				times = append(times, t)
				chosen = true
				break
			}
		}

		if !chosen {
			times = append(times, 6*3600+g.rng.Intn(16*3600+1))
		}
	}

	sort.Ints(times)
	return times
}

func (g *Generator) buildPath(direction []string, avgSpeedMPH float64, departure int) []timetable.Waypoint {
	var path []timetable.Waypoint
	currentTime := departure

	for i, code := range direction {
		station := sampleStations[code]

		if i == 0 {
			path = append(path, waypoint(station, currentTime))
			continue
		}

		previous := sampleStations[direction[i-1]]
		distance := haversineMiles(previous.Lat, previous.Lng, station.Lat, station.Lng)

		speed := avgSpeedMPH * (0.85 + g.rng.Float64()*0.25)
		travelSeconds := int(distance / speed * 3600)

		currentTime += travelSeconds
		path = append(path, waypoint(station, currentTime))

		// Dwell at intermediate stations only
		if i < len(direction)-1 {
			currentTime += 30 + g.rng.Intn(91)
		}
	}

	return path
}

// addIntermediatePoints inserts interpolated points between stations with a
// slight random curve, for smoother frontend animation.
func (g *Generator) addIntermediatePoints(path []timetable.Waypoint, count int) []timetable.Waypoint {
	if len(path) < 2 {
		return path
	}

	smooth := []timetable.Waypoint{path[0]}
	for i := 0; i < len(path)-1; i++ {
		from := path[i]
		to := path[i+1]

		for j := 1; j <= count; j++ {
			fraction := float64(j) / float64(count+1)
			offset := g.rng.NormFloat64() * 0.02 * math.Sin(fraction*math.Pi)

			smooth = append(smooth, timetable.Waypoint{
				Lng:     round5(from.Lng + (to.Lng-from.Lng)*fraction + offset),
				Lat:     round5(from.Lat + (to.Lat-from.Lat)*fraction + offset*0.5),
				Seconds: from.Seconds + int(math.Round(float64(to.Seconds-from.Seconds)*fraction)),
			})
		}

		smooth = append(smooth, to)
	}

	return smooth
}

func waypoint(station sampleStation, seconds int) timetable.Waypoint {
	return timetable.Waypoint{
		Lng:     round5(station.Lng),
		Lat:     round5(station.Lat),
		Seconds: seconds,
	}
}

func haversineMiles(lat1 float64, lng1 float64, lat2 float64, lng2 float64) float64 {
	const earthRadiusMiles = 3959

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dLng/2), 2)

	return earthRadiusMiles * 2 * math.Asin(math.Sqrt(a))
}

func round5(value float64) float64 {
	return math.Round(value*100000) / 100000
}

package timetable

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"github.com/pulsemap/pulse/pkg/cif"
	"github.com/pulsemap/pulse/pkg/config"
	"github.com/pulsemap/pulse/pkg/operators"
	"github.com/pulsemap/pulse/pkg/stations"
	"github.com/pulsemap/pulse/pkg/util"
)

// Consolidator runs the full consolidation pipeline: group raw schedules by
// UID, resolve STP overrides, build geocoded paths, filter to known
// passenger operators and assemble the output document.
type Consolidator struct {
	Resolver  *stations.Resolver
	AllowList operators.AllowList
	Pipeline  config.Pipeline
}

// BuildTrains produces the full-precision effective journeys. Each UID
// resolves independently; one journey failing never affects another.
func (c *Consolidator) BuildTrains(schedules []*cif.Schedule) []*Train {
	groups := GroupByUID(schedules)

	builder := &pathBuilder{
		resolver:  c.Resolver,
		precision: c.Pipeline.PathPrecision,
	}

	var resolved, pathValid int
	var trains []*Train

	for _, group := range groups {
		winner := ResolveOverride(group.Variants, c.Pipeline.RepresentativeDay, c.Pipeline.FailOpen())
		if winner == nil {
			continue
		}
		resolved += 1

		train := builder.build(winner)
		if train == nil {
			continue
		}
		pathValid += 1

		trains = append(trains, train)
	}

	if failed := util.RemoveDuplicateStrings(builder.failedTiplocs, []string{}); len(failed) > 0 {
		log.Debug().Strs("tiplocs", failed).Msg("Could not resolve TIPLOCs")
	}

	log.Info().
		Int("grouped", len(groups)).
		Int("resolved", resolved).
		Int("path_valid", pathValid).
		Msg("Consolidated schedules")

	return trains
}

// Run assembles the final document from raw schedules. Reduced precision is
// applied as a separate pass over copies, leaving the full-precision
// intermediate untouched for any alternate consumer.
func (c *Consolidator) Run(schedules []*cif.Schedule) *Document {
	trains := c.BuildTrains(schedules)

	util.InPlaceFilter(&trains, func(train *Train) bool {
		return c.AllowList.Allowed(train.Operator)
	})

	log.Info().Int("operator_filtered", len(trains)).Msg("Filtered to known passenger operators")

	output := make([]*Train, len(trains))
	usedOperators := operators.AllowList{}

	for i, train := range trains {
		reduced := *train
		reduced.Path = make([]Waypoint, len(train.Path))
		for j, waypoint := range train.Path {
			reduced.Path[j] = Waypoint{
				Lng:     roundTo(waypoint.Lng, c.Pipeline.OutputPrecision),
				Lat:     roundTo(waypoint.Lat, c.Pipeline.OutputPrecision),
				Seconds: waypoint.Seconds,
			}
		}
		output[i] = &reduced

		usedOperators[train.Operator] = c.AllowList[train.Operator]
	}

	log.Info().Strs("operators", maps.Keys(usedOperators)).Msg("Operators present in output")

	return &Document{
		Meta: Meta{
			Date:        c.Pipeline.Date,
			TotalTrains: len(output),
			Source:      c.Pipeline.SourceName,
		},
		Operators: usedOperators,
		Trains:    output,
	}
}

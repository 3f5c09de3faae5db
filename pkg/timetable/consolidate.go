package timetable

import (
	"sort"

	"github.com/pulsemap/pulse/pkg/cif"
)

// VariantGroup collects every schedule version sharing one train UID.
type VariantGroup struct {
	UID      string
	Variants []*cif.Schedule
}

// GroupByUID groups raw schedules by train UID, preserving the feed's
// first-seen UID order so repeat runs over the same feed produce identical
// output.
func GroupByUID(schedules []*cif.Schedule) []VariantGroup {
	groupIndex := map[string]int{}
	var groups []VariantGroup

	for _, schedule := range schedules {
		index, exists := groupIndex[schedule.TrainUID]
		if !exists {
			index = len(groups)
			groupIndex[schedule.TrainUID] = index
			groups = append(groups, VariantGroup{UID: schedule.TrainUID})
		}

		groups[index].Variants = append(groups[index].Variants, schedule)
	}

	return groups
}

// ResolveOverride picks the single schedule version that is operationally
// true on the representative weekday. Variants not running that day are out
// of consideration; the rest compete on STP priority, with feed order
// breaking ties (the feed offers no secondary discriminator). A winning
// cancellation suppresses the whole UID for the day.
func ResolveOverride(variants []*cif.Schedule, representativeDay int, assumeRunsWhenMissing bool) *cif.Schedule {
	var running []*cif.Schedule
	for _, variant := range variants {
		if cif.RunsOn(variant.DaysRun, representativeDay, assumeRunsWhenMissing) {
			running = append(running, variant)
		}
	}

	if len(running) == 0 {
		return nil
	}

	sort.SliceStable(running, func(i, j int) bool {
		return cif.STPPriority(running[i].STPIndicator) > cif.STPPriority(running[j].STPIndicator)
	})

	winner := running[0]
	if winner.STPIndicator == cif.STPCancellation {
		return nil
	}

	return winner
}

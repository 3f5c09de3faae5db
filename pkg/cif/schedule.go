package cif

// STP indicator values carried by SCHEDULE records. A short term plan (STP)
// record overrides the long term plan for the dates it covers.
const (
	STPCancellation = "C"
	STPNew          = "N"
	STPOverlay      = "O"
	STPPermanent    = "P"
)

// stpPriority ranks indicators by override strength. A last-minute
// cancellation always beats a standing permanent schedule. Unknown
// indicators rank below everything.
var stpPriority = map[string]int{
	STPCancellation: 4,
	STPNew:          3,
	STPOverlay:      2,
	STPPermanent:    1,
}

// STPPriority returns the override strength of an STP indicator.
func STPPriority(indicator string) int {
	return stpPriority[indicator]
}

// ScheduleRecord is one line of the Network Rail SCHEDULE feed.
type ScheduleRecord struct {
	Schedule *Schedule `json:"JsonScheduleV1"`
}

// Schedule is a single candidate version of a train service. Several
// schedules can share a TrainUID; the STP indicator decides which one is
// operationally true on a given day.
type Schedule struct {
	TrainUID     string `json:"CIF_train_uid"`
	STPIndicator string `json:"CIF_stp_indicator"`
	DaysRun      string `json:"schedule_days_runs"`
	ATOCCode     string `json:"atoc_code"`

	Segment ScheduleSegment `json:"schedule_segment"`
}

type ScheduleSegment struct {
	Locations []ScheduleLocation `json:"schedule_location"`
}

// ScheduleLocation is one scheduled visit within a schedule. Times are
// working timetable tokens, any of which may be empty or missing.
type ScheduleLocation struct {
	TiplocCode string `json:"tiploc_code"`
	Departure  string `json:"departure"`
	Arrival    string `json:"arrival"`
	Pass       string `json:"pass"`
}

package cif

// RunsOn reports whether a schedule runs on the given weekday (0 = Monday)
// according to its 7-flag days-run vector. A missing or truncated vector is
// an upstream data quality issue, not grounds to drop the service, so the
// assumeWhenMissing default decides it.
func RunsOn(daysRun string, weekday int, assumeWhenMissing bool) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}
	if len(daysRun) < 7 {
		return assumeWhenMissing
	}

	return daysRun[weekday] == '1'
}

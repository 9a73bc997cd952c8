package theatre

// FindConflict returns the first blocking entry whose window overlaps the proposed one.
// Completed and cancelled entries never block.
func FindConflict(entries []ScheduleEntry, proposed TimeWindow) (ScheduleEntry, bool) {
	for _, e := range entries {
		if !e.Blocks() {
			continue
		}
		if e.window.Overlaps(proposed) {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

func HasConflict(entries []ScheduleEntry, proposed TimeWindow) bool {
	_, found := FindConflict(entries, proposed)
	return found
}

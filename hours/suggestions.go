package hours

import "tp-server/models/schedule"

// SuggestedHours returns the default slots offered when a partner picks
// a venue category in the editor. Restaurants get the two service
// windows; accommodation is a full-day slot.
func SuggestedHours(poiType string) []schedule.TimeSlot {
	switch poiType {
	case "restaurant":
		return []schedule.TimeSlot{
			{Start: "12:00", End: "14:00"},
			{Start: "19:00", End: "22:00"},
		}
	case "commerce":
		return []schedule.TimeSlot{{Start: "09:00", End: "19:00"}}
	case "museum":
		return []schedule.TimeSlot{{Start: "10:00", End: "18:00"}}
	case "accommodation":
		return []schedule.TimeSlot{{Start: "00:00", End: "23:59"}}
	default:
		return []schedule.TimeSlot{{Start: "09:00", End: "18:00"}}
	}
}

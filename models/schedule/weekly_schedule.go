package schedule

// Weekday identifies one of the seven calendar weekdays, Monday first.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// DaysOfWeek is the canonical weekday ordering used everywhere a week is
// walked: grouping, validation reports, charts.
var DaysOfWeek = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// WeeklySchedule maps every weekday to exactly one DaySchedule. All
// seven days are always present; an absent day decodes as closed.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Day returns the schedule for the given weekday.
func (w *WeeklySchedule) Day(day Weekday) DaySchedule {
	switch day {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	}
	return Closed()
}

// SetDay replaces the schedule for the given weekday.
func (w *WeeklySchedule) SetDay(day Weekday, d DaySchedule) {
	switch day {
	case Monday:
		w.Monday = d
	case Tuesday:
		w.Tuesday = d
	case Wednesday:
		w.Wednesday = d
	case Thursday:
		w.Thursday = d
	case Friday:
		w.Friday = d
	case Saturday:
		w.Saturday = d
	case Sunday:
		w.Sunday = d
	}
}

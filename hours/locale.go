package hours

import "tp-server/models/schedule"

// Locale carries the day-label tables and the fixed words the formatter
// needs. It is passed in rather than read from package globals so that
// non-French surfaces render cleanly.
type Locale struct {
	Code       string
	DayLabels  map[schedule.Weekday]string
	DayAbbrevs map[schedule.Weekday]string
	Closed     string
	SeeDetails string
	Undefined  string
}

// LocaleFR is the default locale of the platform.
var LocaleFR = Locale{
	Code: "fr",
	DayLabels: map[schedule.Weekday]string{
		schedule.Monday:    "Lundi",
		schedule.Tuesday:   "Mardi",
		schedule.Wednesday: "Mercredi",
		schedule.Thursday:  "Jeudi",
		schedule.Friday:    "Vendredi",
		schedule.Saturday:  "Samedi",
		schedule.Sunday:    "Dimanche",
	},
	DayAbbrevs: map[schedule.Weekday]string{
		schedule.Monday:    "Lun",
		schedule.Tuesday:   "Mar",
		schedule.Wednesday: "Mer",
		schedule.Thursday:  "Jeu",
		schedule.Friday:    "Ven",
		schedule.Saturday:  "Sam",
		schedule.Sunday:    "Dim",
	},
	Closed:     "Fermé",
	SeeDetails: "Voir détails",
	Undefined:  "Non défini",
}

var LocaleEN = Locale{
	Code: "en",
	DayLabels: map[schedule.Weekday]string{
		schedule.Monday:    "Monday",
		schedule.Tuesday:   "Tuesday",
		schedule.Wednesday: "Wednesday",
		schedule.Thursday:  "Thursday",
		schedule.Friday:    "Friday",
		schedule.Saturday:  "Saturday",
		schedule.Sunday:    "Sunday",
	},
	DayAbbrevs: map[schedule.Weekday]string{
		schedule.Monday:    "Mon",
		schedule.Tuesday:   "Tue",
		schedule.Wednesday: "Wed",
		schedule.Thursday:  "Thu",
		schedule.Friday:    "Fri",
		schedule.Saturday:  "Sat",
		schedule.Sunday:    "Sun",
	},
	Closed:     "Closed",
	SeeDetails: "See details",
	Undefined:  "Not set",
}

// DefaultLocale is French, the platform's home market.
func DefaultLocale() Locale {
	return LocaleFR
}

// LocaleFor resolves a locale code, falling back to French for anything
// it does not know.
func LocaleFor(code string) Locale {
	if code == LocaleEN.Code {
		return LocaleEN
	}
	return LocaleFR
}

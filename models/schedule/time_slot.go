package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot is an opening interval within a single day, start and end
// both in 24h "HH:MM" form. End is expected to be strictly after start;
// slots crossing midnight are not representable (use one slot per day).
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (s TimeSlot) ToString() string {
	return fmt.Sprintf("TimeSlot(start=%s, end=%s)", s.Start, s.End)
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Callers validate the format first; malformed parts count as zero.
func TimeToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// MinutesToTime converts minutes since midnight back to an "HH:MM" string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

package schedule

import (
	"encoding/json"
	"fmt"
)

// DayScheduleKind tags the DaySchedule variant.
type DayScheduleKind int

const (
	// DayClosed means the business is closed all day. Zero value on
	// purpose: an absent day decodes as closed.
	DayClosed DayScheduleKind = iota
	// DayLegacy marks a day whose hours only exist as free text; the
	// structure is unknown and the legacy text is authoritative.
	DayLegacy
	// DayOpen carries an explicit list of time slots.
	DayOpen
)

// DaySchedule is one day's opening schedule: closed, legacy (free text
// only), or a list of time slots. On the wire it is the union
// "closed" | "legacy" | [{"start":...,"end":...}, ...].
type DaySchedule struct {
	Kind  DayScheduleKind
	Slots []TimeSlot
}

func Closed() DaySchedule {
	return DaySchedule{Kind: DayClosed}
}

func Legacy() DaySchedule {
	return DaySchedule{Kind: DayLegacy}
}

func Open(slots ...TimeSlot) DaySchedule {
	return DaySchedule{Kind: DayOpen, Slots: slots}
}

// Equal reports whether two day schedules are the same variant with the
// same ordered slots. Slot order matters: no reordering or merging.
func (d DaySchedule) Equal(other DaySchedule) bool {
	if d.Kind != other.Kind {
		return false
	}
	if d.Kind != DayOpen {
		return true
	}
	if len(d.Slots) != len(other.Slots) {
		return false
	}
	for i, slot := range d.Slots {
		if slot.Start != other.Slots[i].Start || slot.End != other.Slots[i].End {
			return false
		}
	}
	return true
}

const (
	closedLiteral = "closed"
	legacyLiteral = "legacy"
)

func (d DaySchedule) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DayLegacy:
		return json.Marshal(legacyLiteral)
	case DayOpen:
		if d.Slots == nil {
			return json.Marshal([]TimeSlot{})
		}
		return json.Marshal(d.Slots)
	default:
		return json.Marshal(closedLiteral)
	}
}

func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		switch literal {
		case closedLiteral:
			*d = Closed()
			return nil
		case legacyLiteral:
			*d = Legacy()
			return nil
		default:
			return fmt.Errorf("unknown day schedule literal %q", literal)
		}
	}

	var slots []TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("day schedule must be %q, %q or a slot array: %w",
			closedLiteral, legacyLiteral, err)
	}
	*d = DaySchedule{Kind: DayOpen, Slots: slots}
	return nil
}

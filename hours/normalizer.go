package hours

import (
	"encoding/json"
	"log"

	"tp-server/models/schedule"
)

// NormalizedOpeningHours is the canonical pair an edit form is seeded
// with. A nil Structured means the text is authoritative and no
// structured schedule exists.
type NormalizedOpeningHours struct {
	Text       string             `json:"opening_hours_text"`
	Structured *schedule.Document `json:"opening_hours_structured"`
}

// NormalizeForForm reconciles the two independently stored opening-hours
// values: a structured one (live document, JSON-encoded string, or
// absent) and a legacy free-text one (which sometimes itself holds a
// JSON document from an earlier migration pass). Candidates are tried in
// order and the first that yields a qualifying document wins; parse
// failures are logged and treated as absence. The function is total: it
// never fails and always returns both halves.
func NormalizeForForm(rawStructured, rawLegacy interface{}) NormalizedOpeningHours {
	producers := []func() *schedule.Document{
		func() *schedule.Document { return documentFromCandidate(rawStructured) },
		func() *schedule.Document { return documentFromCandidate(rawLegacy) },
	}

	var structured *schedule.Document
	for _, produce := range producers {
		if doc := produce(); doc != nil {
			structured = doc
			break
		}
	}

	text := ""
	if structured != nil {
		text = FormatOpeningHours(structured, ModeCompact)
	}
	if text == "" {
		if plain, ok := rawLegacy.(string); ok {
			text = plain
		}
	}
	if text == "" && structured != nil {
		text = structured.LegacyText
	}

	return NormalizedOpeningHours{Text: text, Structured: structured}
}

// documentFromCandidate interprets one candidate value as an
// opening-hours document, or reports absence with nil.
func documentFromCandidate(candidate interface{}) *schedule.Document {
	switch value := candidate.(type) {
	case nil:
		return nil
	case *schedule.Document:
		return value
	case schedule.Document:
		return &value
	case string:
		if value == "" {
			return nil
		}
		return documentFromJSON([]byte(value))
	case []byte:
		if len(value) == 0 {
			return nil
		}
		return documentFromJSON(value)
	case json.RawMessage:
		if len(value) == 0 {
			return nil
		}
		return documentFromJSON(value)
	case map[string]interface{}:
		data, err := json.Marshal(value)
		if err != nil {
			log.Printf("[HoursNormalizer] Could not re-encode opening hours map: %v", err)
			return nil
		}
		return documentFromJSON(data)
	default:
		return nil
	}
}

// documentFromJSON decodes JSON and accepts it only if it qualifies as a
// document, recognized by the presence of a regular_hours key.
func documentFromJSON(data []byte) *schedule.Document {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		log.Printf("[HoursNormalizer] Could not parse opening hours value: %v", err)
		return nil
	}
	if _, ok := fields["regular_hours"]; !ok {
		return nil
	}

	var doc schedule.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[HoursNormalizer] Could not decode opening hours document: %v", err)
		return nil
	}
	return &doc
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tp-server/dao/redis"
	"tp-server/db"
	"tp-server/hours"
	"tp-server/models/schedule"
)

func newTestHoursService() *HoursService {
	return NewHoursService(redis.NewRedisPOIDAO(db.NewMockRedisClient(context.Background())))
}

func weekdayDoc() *schedule.Document {
	doc := schedule.NewEmptyDocument()
	slot := schedule.TimeSlot{Start: "09:00", End: "18:00"}
	for _, day := range []schedule.Weekday{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday,
	} {
		doc.RegularHours.SetDay(day, schedule.Open(slot))
	}
	return doc
}

func TestSaveHoursAndLoadForForm(t *testing.T) {
	hs := newTestHoursService()

	result, err := hs.SaveHours("poi_1", weekdayDoc())
	assert.Nil(t, err)
	assert.True(t, result.IsValid)

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.NotNil(t, normalized.Structured)
	assert.Equal(t, "Lun-Ven: 09:00-18:00, Sam, Dim: Fermé", normalized.Text)
	assert.Equal(t, schedule.DayOpen, normalized.Structured.RegularHours.Monday.Kind)
	assert.NotEmpty(t, normalized.Structured.LastUpdated)
}

func TestSaveHours_InvalidDocumentIsNotStored(t *testing.T) {
	hs := newTestHoursService()

	doc := schedule.NewEmptyDocument()
	doc.RegularHours.SetDay(schedule.Monday, schedule.Open(
		schedule.TimeSlot{Start: "09:00", End: "12:00"},
		schedule.TimeSlot{Start: "11:00", End: "14:00"},
	))

	result, err := hs.SaveHours("poi_1", doc)
	assert.Nil(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Errors)

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.Nil(t, normalized.Structured)
	assert.Equal(t, "", normalized.Text)
}

func TestSaveHours_AppliesDefaultTimezone(t *testing.T) {
	hs := newTestHoursService()

	doc := weekdayDoc()
	doc.Timezone = ""
	_, err := hs.SaveHours("poi_1", doc)
	assert.Nil(t, err)

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.Equal(t, schedule.DefaultTimezone, normalized.Structured.Timezone)
}

func TestLoadForForm_TextOnlyPOI(t *testing.T) {
	dao := redis.NewRedisPOIDAO(db.NewMockRedisClient(context.Background()))
	hs := NewHoursService(dao)

	assert.Nil(t, dao.SetOpeningHoursText("poi_1", "Ouvert tous les jours en été"))

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.Nil(t, normalized.Structured)
	assert.Equal(t, "Ouvert tous les jours en été", normalized.Text)
}

func TestLoadForForm_StaleTextIsSuperseded(t *testing.T) {
	dao := redis.NewRedisPOIDAO(db.NewMockRedisClient(context.Background()))
	hs := NewHoursService(dao)

	assert.Nil(t, dao.SetOpeningHours("poi_1", weekdayDoc()))
	// text written by an older process, no longer matching the document
	assert.Nil(t, dao.SetOpeningHoursText("poi_1", "Lun: 10:00-12:00"))

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.NotNil(t, normalized.Structured)
	assert.Equal(t, "Lun-Ven: 09:00-18:00, Sam, Dim: Fermé", normalized.Text)
}

func TestGetFormattedHours(t *testing.T) {
	hs := newTestHoursService()
	_, err := hs.SaveHours("poi_1", weekdayDoc())
	assert.Nil(t, err)

	text, err := hs.GetFormattedHours("poi_1", hours.ModeCompact, hours.LocaleEN)
	assert.Nil(t, err)
	assert.Equal(t, "Mon-Fri: 09:00-18:00, Sat, Sun: Closed", text)

	// unknown POI has nothing to render
	text, err = hs.GetFormattedHours("unknown", hours.ModeCompact, hours.DefaultLocale())
	assert.Nil(t, err)
	assert.Equal(t, "", text)
}

func TestDeleteHours(t *testing.T) {
	hs := newTestHoursService()
	_, err := hs.SaveHours("poi_1", weekdayDoc())
	assert.Nil(t, err)

	assert.Nil(t, hs.DeleteHours("poi_1"))

	normalized, err := hs.LoadForForm("poi_1")
	assert.Nil(t, err)
	assert.Nil(t, normalized.Structured)
	assert.Equal(t, "", normalized.Text)
}

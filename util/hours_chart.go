package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"tp-server/hours"
	"tp-server/models/schedule"
)

// RenderWeeklyCoverage writes an HTML bar chart of open minutes per
// weekday for a document's regular hours. Legacy days render as zero:
// there is no structure to measure.
func RenderWeeklyCoverage(w io.Writer, doc *schedule.Document, loc hours.Locale, title string) error {
	labels := make([]string, 0, len(schedule.DaysOfWeek))
	data := make([]opts.BarData, 0, len(schedule.DaysOfWeek))

	for _, day := range schedule.DaysOfWeek {
		labels = append(labels, loc.DayAbbrevs[day])

		minutes := 0
		if doc != nil {
			d := doc.RegularHours.Day(day)
			if d.Kind == schedule.DayOpen {
				for _, slot := range d.Slots {
					minutes += schedule.TimeToMinutes(slot.End) - schedule.TimeToMinutes(slot.Start)
				}
			}
		}
		data = append(data, opts.BarData{Value: minutes})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
	)
	bar.SetXAxis(labels).AddSeries("open minutes", data,
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)

	return bar.Render(w)
}

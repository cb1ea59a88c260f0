package timeseries

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const (
	layoutMonthly = "2006-01"
	layoutDaily   = "2006-01-02"
	layoutYearly  = "2006"
)

var quarterRe = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)

// business calendar for advancing daily cash series past weekends and
// US holidays
var workCal = newWorkCalendar()

func newWorkCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return c
}

// NextPeriods generates n future period labels continuing the labeling
// convention of the input label. Monthly ("2006-01"), daily ("2006-01-02"),
// quarterly ("2006-Q1"), and yearly ("2006") conventions are recognized.
// Daily labels advance to the next business day. Unrecognized labels fall
// back to "<last>+k" suffixes so callers still receive n labels.
func NextPeriods(last string, n int) []string {
	if n <= 0 {
		return nil
	}
	labels := make([]string, 0, n)

	if t, err := time.Parse(layoutMonthly, last); err == nil {
		for i := 1; i <= n; i++ {
			labels = append(labels, t.AddDate(0, i, 0).Format(layoutMonthly))
		}
		return labels
	}
	if t, err := time.Parse(layoutDaily, last); err == nil {
		for i := 0; i < n; i++ {
			t = nextBusinessDay(t)
			labels = append(labels, t.Format(layoutDaily))
		}
		return labels
	}
	if m := quarterRe.FindStringSubmatch(last); m != nil {
		year, _ := strconv.Atoi(m[1])
		quarter, _ := strconv.Atoi(m[2])
		for i := 0; i < n; i++ {
			quarter++
			if quarter > 4 {
				quarter = 1
				year++
			}
			labels = append(labels, fmt.Sprintf("%d-Q%d", year, quarter))
		}
		return labels
	}
	if t, err := time.Parse(layoutYearly, last); err == nil {
		for i := 1; i <= n; i++ {
			labels = append(labels, t.AddDate(i, 0, 0).Format(layoutYearly))
		}
		return labels
	}

	for i := 1; i <= n; i++ {
		labels = append(labels, fmt.Sprintf("%s+%d", last, i))
	}
	return labels
}

func nextBusinessDay(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for !workCal.IsWorkday(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

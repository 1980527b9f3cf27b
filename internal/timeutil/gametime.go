package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DisplayDateLayout is the long-form date used in API payloads.
const DisplayDateLayout = "January 02, 2006"

// QueryDate returns the YYYY-MM-DD string for daysOffset days before now.
func QueryDate(now time.Time, daysOffset int) string {
	return FormatDate(now.AddDate(0, 0, -daysOffset))
}

// DisplayDate returns the long-form date for daysOffset days before now.
func DisplayDate(now time.Time, daysOffset int) string {
	return now.AddDate(0, 0, -daysOffset).Format(DisplayDateLayout)
}

// tipOffPattern matches a leading clock such as "7:00 pm" or "10:30PM",
// case-insensitively, with anything after it ignored.
var tipOffPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)`)

var (
	zonesOnce  sync.Once
	easternLoc *time.Location
	berlinLoc  *time.Location
	zonesErr   error
)

func loadZones() {
	easternLoc, zonesErr = time.LoadLocation("America/New_York")
	if zonesErr != nil {
		return
	}
	berlinLoc, zonesErr = time.LoadLocation("Europe/Berlin")
}

// ConvertGameTime rewrites a game status that begins with an Eastern-time
// tip-off clock ("7:00 pm ET") into central European time ("01:00 CET").
// Statuses without a leading clock, such as "Final" or "Q3", pass through
// unchanged. The Eastern wall clock is anchored to now's calendar date so
// DST resolves correctly.
func ConvertGameTime(status string, now time.Time) string {
	m := tipOffPattern.FindStringSubmatch(status)
	if m == nil {
		return status
	}
	zonesOnce.Do(loadZones)
	if zonesErr != nil {
		return status
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return status
	}
	if strings.EqualFold(m[3], "pm") {
		if hour != 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}

	eastern := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, easternLoc)
	return fmt.Sprintf("%s CET", eastern.In(berlinLoc).Format("15:04"))
}

package utils

import (
	"coach-service/internal/pkg/exceptions"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	bpRegex    = regexp.MustCompile(`^.*?(\d+)\s*/\s*(\d+).*?$`)
	clockRegex = regexp.MustCompile(`(\d+):(\d+)\s+(am|pm)`)
)

type BloodPressureParts struct {
	Systolic  string
	Diastolic string
}

// ParseBloodPressure extracts the first two integer runs separated by a slash,
// surrounding text ignored. A non-matching string is a fatal input error;
// defaulting to zero would record a silently wrong target.
func ParseBloodPressure(s string) (*BloodPressureParts, error) {
	match := bpRegex.FindStringSubmatch(s)
	if match == nil {
		return nil, exceptions.ErrParseBloodPressure(fmt.Errorf("input %q", s))
	}
	return &BloodPressureParts{
		Systolic:  match[1],
		Diastolic: match[2],
	}, nil
}

// ComposeReadingInstant merges a calendar date with a 12-hour clock string of
// the form "h:mm am|pm" into one absolute instant. Hour 12 am maps to 0,
// hours below 12 pm gain 12, minutes are copied verbatim.
func ComposeReadingInstant(date time.Time, clock string) (time.Time, error) {
	match := clockRegex.FindStringSubmatch(clock)
	if match == nil {
		return time.Time{}, exceptions.ErrParseClockTime(fmt.Errorf("input %q", clock))
	}

	h, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, exceptions.ErrParseClockTime(err)
	}
	m, err := strconv.Atoi(match[2])
	if err != nil {
		return time.Time{}, exceptions.ErrParseClockTime(err)
	}

	ampm := match[3]
	if h == 12 && ampm == "am" {
		h = 0
	} else if h < 12 && ampm == "pm" {
		h += 12
	}

	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

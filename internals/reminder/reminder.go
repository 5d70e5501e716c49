// Package reminder computes the instant a reminder would fire for a
// task: midnight of the deadline minus a lead time in hours. Nothing is
// scheduled or stored; the result is informational only.
package reminder

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDeadline = errors.New("deadline must be in YYYY-MM-DD format")
	ErrInvalidLeadTime = errors.New("lead time must be a whole number of hours")
)

const deadlineLayout = "2006-01-02"

// Compute parses deadline as YYYY-MM-DD and leadHours as a signed
// integer and returns deadline minus leadHours hours. A negative lead
// time is accepted and places the reminder after the deadline.
func Compute(deadline, leadHours string) (time.Time, error) {
	due, err := time.Parse(deadlineLayout, strings.TrimSpace(deadline))
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}

	hours, err := strconv.Atoi(strings.TrimSpace(leadHours))
	if err != nil {
		return time.Time{}, ErrInvalidLeadTime
	}

	return due.Add(-time.Duration(hours) * time.Hour), nil
}

// Package countdown computes the time remaining until the planned weekend.
package countdown

import "time"

type Breakdown struct {
	Days     int  `json:"days"`
	Hours    int  `json:"hours"`
	Minutes  int  `json:"minutes"`
	Seconds  int  `json:"seconds"`
	Finished bool `json:"finished"`
}

// Until splits the remaining time into display units, clamping to zero once
// the target has passed.
func Until(target, now time.Time) Breakdown {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return Breakdown{Finished: true}
	}

	return Breakdown{
		Days:    int(remaining.Hours() / 24),
		Hours:   int(remaining.Hours()) % 24,
		Minutes: int(remaining.Minutes()) % 60,
		Seconds: int(remaining.Seconds()) % 60,
	}
}

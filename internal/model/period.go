package model

import "fmt"

// Period 备考周期计数，每个周期覆盖两天。
// period=1 → day 01-02，period=3 → day 05-06。
type Period int

func (p Period) Valid() bool {
	return p >= 1
}

func (p Period) DayStart() int {
	return 2*int(p) - 1
}

func (p Period) DayEnd() int {
	return 2 * int(p)
}

// DayRange renders the zero-padded archive folder suffix, e.g. "05-06".
func (p Period) DayRange() string {
	return fmt.Sprintf("%02d-%02d", p.DayStart(), p.DayEnd())
}

// Previous returns the prior period; ok is false for the first period.
func (p Period) Previous() (Period, bool) {
	if p <= 1 {
		return 0, false
	}
	return p - 1, true
}

package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIsScheduledDayFlexible(t *testing.T) {
	// Flexible mode never schedules, even with fixed days configured
	p := NewPolicy(ModeFlexible, []int{1, 2, 3, 4, 5}, HolidaySkip, nil)

	for i := 0; i < 7; i++ {
		d := date(2024, 1, 1).AddDate(0, 0, i)
		if p.IsScheduledDay(d) {
			t.Errorf("flexible mode scheduled %s", d.Format("2006-01-02 Mon"))
		}
	}
}

func TestIsScheduledDayFiveFixed(t *testing.T) {
	// Fixed days config must be ignored in five_fixed mode
	p := NewPolicy(ModeFiveFixed, []int{0, 6}, HolidaySkip, nil)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"Monday", date(2024, 1, 1), true},
		{"Wednesday", date(2024, 1, 3), true},
		{"Friday", date(2024, 1, 5), true},
		{"Saturday", date(2024, 1, 6), false},
		{"Sunday", date(2024, 1, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsScheduledDay(tt.d); got != tt.want {
				t.Errorf("IsScheduledDay(%s) = %v, want %v",
					tt.d.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestIsScheduledDayFixedDayModes(t *testing.T) {
	// Mon, Wed, Fri
	p := NewPolicy(ModeThreeFixed, []int{1, 3, 5}, HolidaySkip, nil)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"Monday selected", date(2024, 1, 1), true},
		{"Tuesday not selected", date(2024, 1, 2), false},
		{"Wednesday selected", date(2024, 1, 3), true},
		{"Sunday not selected", date(2024, 1, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsScheduledDay(tt.d); got != tt.want {
				t.Errorf("IsScheduledDay(%s) = %v, want %v",
					tt.d.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}

	// four_fixed uses the same selection rule
	p4 := NewPolicy(ModeFourFixed, []int{1, 2, 3, 4}, HolidaySkip, nil)
	if !p4.IsScheduledDay(date(2024, 1, 4)) {
		t.Errorf("four_fixed did not schedule a selected Thursday")
	}
	if p4.IsScheduledDay(date(2024, 1, 5)) {
		t.Errorf("four_fixed scheduled an unselected Friday")
	}
}

func TestIsScheduledDayTwoTwoThree(t *testing.T) {
	p := NewPolicy(ModeTwoTwoThree, nil, HolidaySkip, nil)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		// Week 0 of the cycle (reference week): Mon and Tue
		{"reference Monday", date(2024, 1, 1), true},
		{"reference Tuesday", date(2024, 1, 2), true},
		{"reference Wednesday", date(2024, 1, 3), false},
		{"reference Sunday", date(2024, 1, 7), false},
		// Week 1: Wed, Thu, Fri
		{"week 1 Monday", date(2024, 1, 8), false},
		{"week 1 Wednesday", date(2024, 1, 10), true},
		{"week 1 Thursday", date(2024, 1, 11), true},
		{"week 1 Friday", date(2024, 1, 12), true},
		{"week 1 Saturday", date(2024, 1, 13), false},
		// Cycle repeats
		{"week 2 Monday", date(2024, 1, 15), true},
		{"week 2 Wednesday", date(2024, 1, 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsScheduledDay(tt.d); got != tt.want {
				t.Errorf("IsScheduledDay(%s) = %v, want %v",
					tt.d.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestIsScheduledDayTwoTwoThreeBeforeReference(t *testing.T) {
	// Dates before 2024-01-01 must use floored day/week arithmetic, so the
	// rotation continues backwards without a seam at the reference.
	p := NewPolicy(ModeTwoTwoThree, nil, HolidaySkip, nil)

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		// Week -1 (odd cycle week): Wed, Thu, Fri
		{"prior Monday", date(2023, 12, 25), false},
		{"prior Wednesday", date(2023, 12, 27), true},
		{"prior Friday", date(2023, 12, 29), true},
		{"prior Sunday", date(2023, 12, 31), false},
		// Week -2 (even cycle week): Mon, Tue
		{"two weeks prior Monday", date(2023, 12, 18), true},
		{"two weeks prior Tuesday", date(2023, 12, 19), true},
		{"two weeks prior Wednesday", date(2023, 12, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsScheduledDay(tt.d); got != tt.want {
				t.Errorf("IsScheduledDay(%s) = %v, want %v",
					tt.d.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int
		wantDiv  int
		wantMod  int
	}{
		{9, 7, 1, 2},
		{7, 7, 1, 0},
		{0, 7, 0, 0},
		{-1, 7, -1, 6},
		{-5, 7, -1, 2},
		{-7, 7, -1, 0},
		{-13, 7, -2, 1},
		{-1, 2, -1, 1},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.wantDiv {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantDiv)
		}
		if got := floorMod(tt.a, tt.b); got != tt.wantMod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.wantMod)
		}
	}
}

func TestIsHoliday(t *testing.T) {
	p := NewPolicy(ModeFiveFixed, nil, HolidaySkip, []string{"2024-07-04", "2024-12-25"})

	if !p.IsHoliday(date(2024, 7, 4)) {
		t.Errorf("2024-07-04 not recognized as holiday")
	}
	if p.IsHoliday(date(2024, 7, 5)) {
		t.Errorf("2024-07-05 wrongly recognized as holiday")
	}
}

func TestShouldWork(t *testing.T) {
	holidays := []string{"2024-07-04"} // a Thursday

	tests := []struct {
		name        string
		holidayMode string
		d           time.Time
		want        bool
	}{
		{"holiday skipped", HolidaySkip, date(2024, 7, 4), false},
		{"holiday ignored", HolidayIgnore, date(2024, 7, 4), true},
		{"ordinary workday", HolidaySkip, date(2024, 7, 3), true},
		{"weekend stays off under ignore", HolidayIgnore, date(2024, 7, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(ModeFiveFixed, nil, tt.holidayMode, holidays)
			if got := p.ShouldWork(tt.d); got != tt.want {
				t.Errorf("ShouldWork(%s) = %v, want %v",
					tt.d.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

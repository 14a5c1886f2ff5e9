package models

import "time"

// DayBuckets holds one week of tasks for a single company, Monday first,
// plus the backlog bucket for undated tasks.
type DayBuckets struct {
	Monday    []Task `json:"monday"`
	Tuesday   []Task `json:"tuesday"`
	Wednesday []Task `json:"wednesday"`
	Thursday  []Task `json:"thursday"`
	Friday    []Task `json:"friday"`
	Saturday  []Task `json:"saturday"`
	Sunday    []Task `json:"sunday"`
	Backlog   []Task `json:"backlog"`
}

// NewDayBuckets returns buckets with empty (non-nil) slices so every bucket
// serializes as [] rather than null.
func NewDayBuckets() DayBuckets {
	return DayBuckets{
		Monday:    []Task{},
		Tuesday:   []Task{},
		Wednesday: []Task{},
		Thursday:  []Task{},
		Friday:    []Task{},
		Saturday:  []Task{},
		Sunday:    []Task{},
		Backlog:   []Task{},
	}
}

// Add appends t to the bucket for the Monday=0..Sunday=6 day index.
func (b *DayBuckets) Add(day int, t Task) {
	switch day {
	case 0:
		b.Monday = append(b.Monday, t)
	case 1:
		b.Tuesday = append(b.Tuesday, t)
	case 2:
		b.Wednesday = append(b.Wednesday, t)
	case 3:
		b.Thursday = append(b.Thursday, t)
	case 4:
		b.Friday = append(b.Friday, t)
	case 5:
		b.Saturday = append(b.Saturday, t)
	case 6:
		b.Sunday = append(b.Sunday, t)
	}
}

// At returns the bucket for the Monday=0..Sunday=6 day index.
func (b *DayBuckets) At(day int) []Task {
	switch day {
	case 0:
		return b.Monday
	case 1:
		return b.Tuesday
	case 2:
		return b.Wednesday
	case 3:
		return b.Thursday
	case 4:
		return b.Friday
	case 5:
		return b.Saturday
	case 6:
		return b.Sunday
	}
	return nil
}

type CompanyWeek struct {
	Company Company    `json:"company"`
	Tasks   DayBuckets `json:"tasks"`
}

// WeeklyBoard is the response of the weekly view: the Monday-to-Sunday
// window plus one entry per company (in name order), including companies
// with no tasks at all.
type WeeklyBoard struct {
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Data      []CompanyWeek `json:"data"`
}

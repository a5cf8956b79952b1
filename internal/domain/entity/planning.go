package entity

// PlanningEntry is one month of the planning view.
type PlanningEntry struct {
	Month     int
	MonthName string
	Speaker   string
	IsNext    bool
}

// Planning is the read-only projection of the current five-month window.
type Planning struct {
	CycleLabel string
	Entries    []PlanningEntry
}

package domain

// Participants is the fixed roster, in rotation order. The tour tables and
// the random draw both work over this exact set.
var Participants = []string{"Loic", "Harrison", "Marc", "Tanguy", "Ifeyi"}

// Tour1 covers November through March (fixed table 1).
var Tour1 = map[int]string{
	11: "Tanguy",
	12: "Harrison",
	1:  "Marc",
	2:  "Loic",
	3:  "Ifeyi",
}

// Tour2 covers April through August (fixed table 2).
var Tour2 = map[int]string{
	4: "Ifeyi",
	5: "Loic",
	6: "Marc",
	7: "Harrison",
	8: "Tanguy",
}

// MonthNames maps month numbers to their French names as shown to the group.
var MonthNames = map[int]string{
	1:  "janvier",
	2:  "février",
	3:  "mars",
	4:  "avril",
	5:  "mai",
	6:  "juin",
	7:  "juillet",
	8:  "août",
	9:  "septembre",
	10: "octobre",
	11: "novembre",
	12: "décembre",
}

// Cycle type labels.
const (
	CycleNormal   = "normal"
	CycleInverted = "inversé"
)

// Planning window labels.
const (
	PlanningNormal   = "ordre normal"
	PlanningInverted = "ordre inversé"
	PlanningRandom   = "ordre normal (aléatoire jusqu'à nov)"
)

// UnknownSpeaker is the placeholder shown for a planning slot that has no
// fixed-table entry.
const UnknownSpeaker = "?"

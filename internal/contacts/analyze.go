package contacts

import (
	"sort"

	"github.com/tartampluch/go-paradox/internal/simulation"
)

// SharedDay lists the people who share one birthday.
type SharedDay struct {
	Day   simulation.Day
	Names []string
}

// GroupReport is the collision analysis of a real group.
type GroupReport struct {
	// Size is the number of people with a known birthday.
	Size int

	// Shared reports whether at least two people share a birthday.
	Shared bool

	// SharedDays holds every birthday celebrated by two or more people,
	// ascending by date, names sorted for stable display.
	SharedDays []SharedDay
}

// Analyze runs the simulation engine's detector and aggregator over a real
// group of people.
func Analyze(people []Person) GroupReport {
	days := make([]simulation.Day, len(people))
	namesByDay := make(map[simulation.Day][]string, len(people))
	for i, p := range people {
		days[i] = p.Birthday
		namesByDay[p.Birthday] = append(namesByDay[p.Birthday], p.Name)
	}

	report := GroupReport{
		Size:   len(people),
		Shared: simulation.HasDuplicate(days),
	}

	for _, entry := range simulation.CountOccurrences(days).Sorted() {
		if entry.Count < 2 {
			continue
		}
		names := namesByDay[entry.Day]
		sort.Strings(names)
		report.SharedDays = append(report.SharedDays, SharedDay{
			Day:   entry.Day,
			Names: names,
		})
	}
	return report
}

package contacts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-paradox/internal/contacts"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name   string
		people []contacts.Person
		want   contacts.GroupReport
	}{
		{
			"Empty group",
			nil,
			contacts.GroupReport{Size: 0, Shared: false},
		},
		{
			"No collisions",
			[]contacts.Person{
				{Name: "Alice", Birthday: 10},
				{Name: "Bob", Birthday: 200},
			},
			contacts.GroupReport{Size: 2, Shared: false},
		},
		{
			"One shared day",
			[]contacts.Person{
				{Name: "Carol", Birthday: 10},
				{Name: "Bob", Birthday: 200},
				{Name: "Alice", Birthday: 10},
			},
			contacts.GroupReport{
				Size:   3,
				Shared: true,
				SharedDays: []contacts.SharedDay{
					{Day: 10, Names: []string{"Alice", "Carol"}},
				},
			},
		},
		{
			"Multiple shared days sorted by date",
			[]contacts.Person{
				{Name: "Dan", Birthday: 300},
				{Name: "Eve", Birthday: 42},
				{Name: "Fay", Birthday: 300},
				{Name: "Gus", Birthday: 42},
				{Name: "Hal", Birthday: 42},
			},
			contacts.GroupReport{
				Size:   5,
				Shared: true,
				SharedDays: []contacts.SharedDay{
					{Day: 42, Names: []string{"Eve", "Gus", "Hal"}},
					{Day: 300, Names: []string{"Dan", "Fay"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contacts.Analyze(tt.people))
		})
	}
}

// TestAnalyze_AgreesWithDetector keeps the report's Shared flag in lockstep
// with the simulation package's duplicate detector.
func TestAnalyze_AgreesWithDetector(t *testing.T) {
	gen := simulation.NewGenerator(11)
	days, err := gen.Birthdays(23)
	assert.NoError(t, err)

	people := make([]contacts.Person, len(days))
	for i, d := range days {
		people[i] = contacts.Person{Name: "P", Birthday: d}
	}

	report := contacts.Analyze(people)
	assert.Equal(t, simulation.HasDuplicate(days), report.Shared)
	assert.Equal(t, report.Shared, len(report.SharedDays) > 0)
}

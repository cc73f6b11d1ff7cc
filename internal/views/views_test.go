package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/employee-dashboard/internal/employee"
	"github.com/openkcm/employee-dashboard/internal/views"
)

func rec(id, name, city string, salary float64) employee.Record {
	return employee.Record{ID: id, Name: name, City: city, Salary: salary, Age: employee.DeriveAge(id)}
}

var staff = employee.Collection{
	rec("5421", "Tiger Nixon", "Edinburgh", 320800),
	rec("8422", "Garrett Winters", "Tokyo", 170750),
	rec("1562", "Ashton Cox", "San Francisco", 86000),
	rec("6224", "Cedric Kelly", "Edinburgh", 433060),
	rec("5407", "Airi Satou", "Tokyo", 162700),
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "Name match", query: "tiger", want: []string{"5421"}},
		{name: "City match", query: "TOKYO", want: []string{"8422", "5407"}},
		{name: "City substring", query: "an", want: []string{"1562"}},
		{name: "Substring inside a word", query: "dinb", want: []string{"5421", "6224"}},
		{name: "Query is trimmed", query: "  cox  ", want: []string{"1562"}},
		{name: "No match", query: "zurich", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := views.Filter(staff, tt.query)

			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_BlankQueryReturnsInput(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		got := views.Filter(staff, q)
		assert.Equal(t, staff, got)
		assert.Same(t, &staff[0], &got[0])
	}

	assert.Nil(t, views.Filter(nil, ""))
}

func TestFilter_Idempotent(t *testing.T) {
	for _, q := range []string{"", "o", "tokyo", "Ni", "nothing"} {
		once := views.Filter(staff, q)
		assert.Equal(t, once, views.Filter(once, q), q)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	before := append(employee.Collection(nil), staff...)
	_ = views.Filter(staff, "tokyo")
	assert.Equal(t, before, staff)
}

func TestFindByID(t *testing.T) {
	dups := append(employee.Collection{}, staff...)
	dups = append(dups, rec("5421", "Second Tiger", "London", 1))

	got, ok := views.FindByID(dups, "5421")
	assert.True(t, ok)
	assert.Equal(t, "Tiger Nixon", got.Name)

	_, ok = views.FindByID(dups, "0000")
	assert.False(t, ok)

	_, ok = views.FindByID(nil, "5421")
	assert.False(t, ok)
}

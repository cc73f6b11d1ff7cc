package views

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/openkcm/employee-dashboard/internal/employee"
)

//go:embed cities.yaml
var citiesYAML []byte

type CityPoint struct {
	City  string  `json:"city"`
	Count int     `json:"count"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type coordinates struct {
	City string  `yaml:"city"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

var cityTable = mustLoadCities(citiesYAML)

func mustLoadCities(data []byte) map[string]coordinates {
	table, err := loadCities(data)
	if err != nil {
		panic(err)
	}
	return table
}

func loadCities(data []byte) (map[string]coordinates, error) {
	var entries []coordinates
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding city table: %w", err)
	}

	table := make(map[string]coordinates, len(entries))
	for _, e := range entries {
		if e.City == "" {
			return nil, fmt.Errorf("city table entry without a name at %v,%v", e.Lat, e.Lng)
		}
		table[e.City] = e
	}

	return table, nil
}

// AggregateByCity counts records per known city. Cities missing from the
// coordinate table are left out; points follow the order in which each
// city first appears.
func AggregateByCity(records employee.Collection) []CityPoint {
	points := make([]CityPoint, 0, len(cityTable))
	index := make(map[string]int, len(cityTable))

	for _, r := range records {
		city := strings.TrimSpace(r.City)
		if city == "" {
			continue
		}

		coords, ok := cityTable[city]
		if !ok {
			continue
		}

		if i, seen := index[city]; seen {
			points[i].Count++
			continue
		}

		index[city] = len(points)
		points = append(points, CityPoint{City: city, Count: 1, Lat: coords.Lat, Lng: coords.Lng})
	}

	return points
}

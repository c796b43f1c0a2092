package catalog

import (
	"classbooking/config"
	"encoding/json"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
)

// HourWindow is the bookable hour range of a classroom, inclusive on both ends.
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Rule holds the booking constraints of one classroom. Days use ISO-8601
// weekday numbers (1=Monday .. 7=Sunday).
type Rule struct {
	Days     []int      `json:"days"`
	Window   HourWindow `json:"window"`
	Hours    int        `json:"hours"`
	Capacity int        `json:"capacity"`
}

// AllowsDay reports whether the ISO weekday is bookable for this classroom.
func (r Rule) AllowsDay(isoWeekday int) bool {
	return slices.Contains(r.Days, isoWeekday)
}

// InWindow reports whether the hour lies within the bookable window.
func (r Rule) InWindow(hour int) bool {
	return hour >= r.Window.Start && hour <= r.Window.End
}

// Catalog maps classroom ids to their booking rules. Rules are data, not code:
// the built-in defaults can be replaced wholesale by a JSON file configured via
// APP_CATALOG_PATH.
type Catalog struct {
	rules map[string]Rule
}

func defaultRules() map[string]Rule {
	return map[string]Rule{
		"class-a": {
			Days:     []int{1, 3},
			Window:   HourWindow{Start: 9, End: 18},
			Hours:    1,
			Capacity: 10,
		},
		"class-b": {
			Days:     []int{1, 4, 6},
			Window:   HourWindow{Start: 8, End: 18},
			Hours:    2,
			Capacity: 15,
		},
		"class-c": {
			Days:     []int{2, 5, 6},
			Window:   HourWindow{Start: 15, End: 22},
			Hours:    1,
			Capacity: 7,
		},
	}
}

func New(cfg *config.Config) *Catalog {
	if cfg.App.CatalogPath == "" {
		log.Info().Msg("No catalog file configured, using built-in classroom rules")

		return &Catalog{rules: defaultRules()}
	}

	data, err := os.ReadFile(cfg.App.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.CatalogPath).Msg("Failed to read classroom catalog file")
	}

	rules := map[string]Rule{}
	if err := json.Unmarshal(data, &rules); err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.CatalogPath).Msg("Failed to parse classroom catalog file")
	}

	log.Info().Int("classrooms", len(rules)).Str("path", cfg.App.CatalogPath).Msg("Classroom catalog loaded")

	return &Catalog{rules: rules}
}

// FromRules builds a catalog directly from a rule map.
func FromRules(rules map[string]Rule) *Catalog {
	return &Catalog{rules: rules}
}

// Rule returns the booking rule for a classroom id.
func (c *Catalog) Rule(classroomID string) (Rule, bool) {
	rule, ok := c.rules[classroomID]

	return rule, ok
}

package catalog

import (
	"fmt"
	"strings"
	"testing"

	"catdistribution/backend/models"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildCats zips generated names and ages into records whose IDs sort in
// input order
func buildCats(catNames []string, ages []int) []models.Cat {
	n := min(len(catNames), len(ages))
	cats := make([]models.Cat, n)
	for i := 0; i < n; i++ {
		cats[i] = models.Cat{ID: fmt.Sprintf("%04d", i), Name: catNames[i], Age: ages[i]}
	}
	return cats
}

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestFilterProperties(t *testing.T) {
	props := properties(t)

	props.Property("empty search term returns the input unchanged", prop.ForAll(
		func(catNames []string, ages []int) bool {
			cats := buildCats(catNames, ages)
			got := Filter(cats, "", nil)
			if len(got) != len(cats) {
				return false
			}
			for i := range cats {
				if got[i].ID != cats[i].ID {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.IntRange(0, 35)),
	))

	props.Property("every match contains the term in its name", prop.ForAll(
		func(catNames []string, ages []int, term string) bool {
			for _, c := range Filter(buildCats(catNames, ages), term, nil) {
				if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.IntRange(0, 35)),
		gen.AlphaString().Map(func(s string) string {
			if len(s) > 2 {
				return s[:2]
			}
			return s
		}),
	))

	props.Property("every match lies inside the age range", prop.ForAll(
		func(ages []int, a, b int) bool {
			lo, hi := min(a, b), max(a, b)
			r, err := NewAgeRange(lo, hi)
			if err != nil {
				return false
			}
			for _, c := range Filter(buildCats(make([]string, len(ages)), ages), "", r) {
				if c.Age < lo || c.Age > hi {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 35)),
		gen.IntRange(0, 35),
		gen.IntRange(0, 35),
	))

	props.TestingRun(t)
}

func TestSortProperties(t *testing.T) {
	props := properties(t)

	props.Property("sort by age is stable", prop.ForAll(
		func(ages []int, descending bool) bool {
			cats := buildCats(make([]string, len(ages)), ages)
			cfg := &SortConfig{Field: SortByAge, Direction: Ascending}
			if descending {
				cfg.Direction = Descending
			}
			got := Sort(cats, cfg)
			for i := 1; i < len(got); i++ {
				prev, cur := got[i-1], got[i]
				if prev.Age == cur.Age && prev.ID > cur.ID {
					return false
				}
				if !descending && prev.Age > cur.Age {
					return false
				}
				if descending && prev.Age < cur.Age {
					return false
				}
			}
			return len(got) == len(cats)
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.Bool(),
	))

	props.TestingRun(t)
}

func TestPaginateProperties(t *testing.T) {
	props := properties(t)

	props.Property("current page stays within [1, totalPages]", prop.ForAll(
		func(n, size, page int) bool {
			p, err := Paginate(makeCats(n), size, page)
			if err != nil {
				return false
			}
			return p.CurrentPage >= 1 && p.CurrentPage <= p.TotalPages && p.TotalPages >= 1
		},
		gen.IntRange(0, 60),
		gen.IntRange(1, 15),
		gen.IntRange(-5, 20),
	))

	props.Property("pages concatenate back to the input", prop.ForAll(
		func(n, size int) bool {
			cats := makeCats(n)
			first, err := Paginate(cats, size, 1)
			if err != nil {
				return false
			}
			var joined []models.Cat
			for p := 1; p <= first.TotalPages; p++ {
				page, err := Paginate(cats, size, p)
				if err != nil {
					return false
				}
				joined = append(joined, page.Items...)
			}
			if len(joined) != len(cats) {
				return false
			}
			for i := range cats {
				if joined[i].ID != cats[i].ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 60),
		gen.IntRange(1, 15),
	))

	props.TestingRun(t)
}

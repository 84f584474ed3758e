package alert

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGroupsPartitionProperties checks that position groups partition the
// live set exactly and keep insertion order, for arbitrary show/remove mixes.
func TestGroupsPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("groups partition live alerts in insertion order", prop.ForAll(
		func(positions []int, removeEvery int) bool {
			s := NewStore(WithClock(clockwork.NewFakeClockAt(epoch)))
			defer s.Close()

			var ids []string
			for _, p := range positions {
				ids = append(ids, s.Show("m", VariantInfo, true, Position(p)))
			}
			for i, id := range ids {
				if removeEvery > 0 && i%removeEvery == 0 {
					s.Remove(id)
				}
			}

			live := s.Alerts()
			groups := s.Groups()
			if len(groups) != numPositions || groups.Len() != len(live) {
				return false
			}

			rank := make(map[string]int, len(live))
			for i, a := range live {
				rank[a.ID] = i
			}
			seen := make(map[string]bool, len(live))
			for pos, group := range groups {
				last := -1
				for _, a := range group {
					if a.Position != pos || seen[a.ID] {
						return false
					}
					r, ok := rank[a.ID]
					if !ok || r <= last {
						return false
					}
					seen[a.ID] = true
					last = r
				}
			}
			return len(seen) == len(live)
		},
		gen.SliceOf(gen.IntRange(0, numPositions-1)),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

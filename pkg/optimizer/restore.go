package optimizer

import (
	"fmt"

	"github.com/dshills/gonest/pkg/cde"
	"github.com/dshills/gonest/pkg/spp"
)

// Restore reconstructs a Layout from a warm-start Solution by replaying
// its placements through Layout.Place, with no evaluation: a warm start
// is trusted feasible, matching the idempotence property a round-tripped
// solution must have.
func Restore(inst *spp.Instance, sol *spp.Solution) (*spp.Layout, *cde.CollisionTracker, error) {
	items, transforms, err := sol.Transforms(inst)
	if err != nil {
		return nil, nil, fmt.Errorf("optimizer: restoring warm start: %w", err)
	}

	layout := spp.NewLayout(cde.NewIndex(inst.StripWidth))
	ct := cde.NewCollisionTracker(1.0, 2.0)

	for i, item := range items {
		pk := layout.Place(item, transforms[i])
		ct.Init(pk)
	}

	return layout, ct, nil
}

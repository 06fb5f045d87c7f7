package ted

// CostFunc prices one edit. A nil label is absent:
//   - (from, nil)  deleting from
//   - (nil, to)    inserting to
//   - (from, to)   relabeling from to to
//
// Costs must be non-negative.
type CostFunc func(from, to *string) int

// UnitCost charges 0 when both labels are present and equal (or both
// absent) and 1 otherwise.
func UnitCost(from, to *string) int {
	if from == nil || to == nil {
		if from == nil && to == nil {
			return 0
		}

		return 1
	}
	if *from == *to {
		return 0
	}

	return 1
}

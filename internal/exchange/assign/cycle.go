package assign

// VerifyCycle reports whether pairs form exactly one cycle of length n that
// passes through start.
//
// The walk follows giver -> receiver from start and counts distinct receivers
// until it returns to start. Any self-assignment, duplicate giver, dangling
// edge or early closure makes the set invalid.
func VerifyCycle(start string, pairs []Pair, n int) bool {
	if n < 2 || len(pairs) != n {
		return false
	}

	next := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Giver == p.Receiver {
			return false
		}
		if _, dup := next[p.Giver]; dup {
			return false
		}
		next[p.Giver] = p.Receiver
	}

	visited := make(map[string]struct{}, n)
	cur := start
	for range n {
		receiver, ok := next[cur]
		if !ok {
			return false
		}
		if _, seen := visited[receiver]; seen {
			return false
		}
		visited[receiver] = struct{}{}
		cur = receiver
		if cur == start {
			break
		}
	}

	return cur == start && len(visited) == n
}

// OrderCycle returns pairs in chain order, beginning with the pair whose
// giver is start and following each receiver to its own giving edge.
//
// The walk is bounded by len(pairs) steps. It fails with ErrBrokenCycle when
// the stored set is not a single full cycle instead of looping forever.
// An empty set orders to nil.
func OrderCycle(pairs []Pair, start string) ([]Pair, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	byGiver := make(map[string]Pair, len(pairs))
	for _, p := range pairs {
		if _, dup := byGiver[p.Giver]; dup {
			return nil, ErrBrokenCycle
		}
		byGiver[p.Giver] = p
	}

	ordered := make([]Pair, 0, len(pairs))
	cur := start
	for range len(pairs) {
		p, ok := byGiver[cur]
		if !ok {
			return nil, ErrBrokenCycle
		}
		ordered = append(ordered, p)
		cur = p.Receiver
		if cur == start {
			break
		}
	}

	if cur != start || len(ordered) != len(pairs) {
		return nil, ErrBrokenCycle
	}
	return ordered, nil
}

// Package walk provides visited-set graph traversal shared by type discovery
// and schema building.
package walk

// Closure returns every node reachable from starts through next, starts
// included. Each node is expanded at most once, so cyclic graphs terminate.
// The result is in depth-first preorder with edges followed in the order
// next returns them.
func Closure[K comparable](starts []K, next func(K) []K) []K {
	seen := make(map[K]struct{}, len(starts))
	var out []K
	stack := make([]K, 0, len(starts))
	for i := len(starts) - 1; i >= 0; i-- {
		stack = append(stack, starts[i])
	}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
		if next == nil {
			continue
		}
		succ := next(k)
		for i := len(succ) - 1; i >= 0; i-- {
			if _, ok := seen[succ[i]]; !ok {
				stack = append(stack, succ[i])
			}
		}
	}
	return out
}

// Set is an insertion-ordered set.
type Set[K comparable] struct {
	idx  map[K]struct{}
	list []K
}

// Add inserts k and reports whether it was absent.
func (s *Set[K]) Add(k K) bool {
	if s.idx == nil {
		s.idx = map[K]struct{}{}
	}
	if _, ok := s.idx[k]; ok {
		return false
	}
	s.idx[k] = struct{}{}
	s.list = append(s.list, k)
	return true
}

// Contains reports membership.
func (s *Set[K]) Contains(k K) bool {
	_, ok := s.idx[k]
	return ok
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return len(s.list) }

// Items returns the elements in insertion order.
func (s *Set[K]) Items() []K { return append([]K(nil), s.list...) }

package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosure_Acyclic(t *testing.T) {
	g := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
	}
	got := Closure([]string{"A"}, func(k string) []string { return g[k] })
	assert.Equal(t, []string{"A", "B", "D", "C"}, got)
}

func TestClosure_Cycle(t *testing.T) {
	g := map[int][]int{1: {2}, 2: {3}, 3: {1, 2}}
	calls := map[int]int{}
	got := Closure([]int{1}, func(k int) []int {
		calls[k]++
		return g[k]
	})
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, calls)
}

func TestClosure_SelfLoopAndDuplicateStarts(t *testing.T) {
	got := Closure([]string{"A", "A", "Z"}, func(k string) []string {
		if k == "A" {
			return []string{"A"}
		}
		return nil
	})
	assert.Equal(t, []string{"A", "Z"}, got)
}

func TestClosure_NilNext(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Closure([]int{1, 2}, nil))
	assert.Empty(t, Closure[int](nil, nil))
}

func TestSet(t *testing.T) {
	var s Set[string]
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Contains("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b", "a"}, s.Items())
}

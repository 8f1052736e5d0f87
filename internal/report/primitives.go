package report

import (
	"cmp"
	"slices"
)

// Pair is one row produced by Join.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Join is an inner equi-join. For each left row, in order, it emits one Pair
// per right row with an equal key, in right order. Left rows without a match
// produce nothing.
func Join[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Pair[L, R] {
	index := make(map[K][]R, len(right))
	for _, r := range right {
		k := rightKey(r)
		index[k] = append(index[k], r)
	}

	var out []Pair[L, R]
	for _, l := range left {
		for _, r := range index[leftKey(l)] {
			out = append(out, Pair[L, R]{Left: l, Right: r})
		}
	}
	return out
}

// Group is a key and the source rows that share it.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions src by key. Groups come out in first-seen key order and
// members keep their source order.
func GroupBy[T any, K comparable](src []T, key func(T) K) []Group[K, T] {
	pos := make(map[K]int)
	var groups []Group[K, T]
	for _, item := range src {
		k := key(item)
		i, ok := pos[k]
		if !ok {
			i = len(groups)
			pos[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Index maps each key to its members, in source order.
func Index[T any, K comparable](src []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range src {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}

// Sum adds selector over items in order, starting from zero. No rounding is
// applied; monetary totals are plain float64 sums.
func Sum[T any](items []T, selector func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += selector(item)
	}
	return total
}

// Count returns the number of items matching pred, or len(items) when pred is nil.
func Count[T any](items []T, pred func(T) bool) int {
	if pred == nil {
		return len(items)
	}
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Where keeps the rows matching pred.
func Where[T any](src []T, pred func(T) bool) []T {
	var out []T
	for _, item := range src {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Select maps every row through f.
func Select[T, U any](src []T, f func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, item := range src {
		out = append(out, f(item))
	}
	return out
}

// SelectMany flattens f over src, keeping order.
func SelectMany[T, U any](src []T, f func(T) []U) []U {
	var out []U
	for _, item := range src {
		out = append(out, f(item)...)
	}
	return out
}

// Distinct keeps the first row for each key.
func Distinct[T any, K comparable](src []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(src))
	var out []T
	for _, item := range src {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Take returns the first n rows, or all of them when there are fewer.
func Take[T any](src []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(src) {
		n = len(src)
	}
	return src[:n:n]
}

// Order compares two rows on one sort key.
type Order[T any] func(a, b T) int

// Asc orders by an ordered key, smallest first.
func Asc[T any, V cmp.Ordered](key func(T) V) Order[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Desc orders by an ordered key, largest first.
func Desc[T any, V cmp.Ordered](key func(T) V) Order[T] {
	return func(a, b T) int { return cmp.Compare(key(b), key(a)) }
}

// AscFunc orders by key using compare, e.g. a collator for strings.
func AscFunc[T, V any](key func(T) V, compare func(a, b V) int) Order[T] {
	return func(a, b T) int { return compare(key(a), key(b)) }
}

// OrderBy returns a sorted copy of src. Keys are applied left to right and
// the sort is stable, so full ties keep their source order.
func OrderBy[T any](src []T, keys ...Order[T]) []T {
	out := slices.Clone(src)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, key := range keys {
			if c := key(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}

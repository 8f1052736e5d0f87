package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id   int
	key  string
	cost float64
}

func TestJoin_InnerSemantics(t *testing.T) {
	left := []item{{id: 1, key: "a"}, {id: 2, key: "b"}, {id: 3, key: "z"}}
	right := []item{{id: 10, key: "b"}, {id: 11, key: "a"}, {id: 12, key: "b"}}

	got := Join(left, right,
		func(l item) string { return l.key },
		func(r item) string { return r.key },
	)

	pairs := make([][2]int, 0, len(got))
	for _, p := range got {
		pairs = append(pairs, [2]int{p.Left.id, p.Right.id})
	}
	assert.Equal(t, [][2]int{{1, 11}, {2, 10}, {2, 12}}, pairs)
}

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	src := []item{{id: 1, key: "b"}, {id: 2, key: "a"}, {id: 3, key: "b"}}

	groups := GroupBy(src, func(i item) string { return i.key })

	assert.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].Key)
	assert.Equal(t, []item{{id: 1, key: "b"}, {id: 3, key: "b"}}, groups[0].Items)
	assert.Equal(t, "a", groups[1].Key)
}

func TestSum_NoRounding(t *testing.T) {
	src := []item{{cost: 14301872.17}, {cost: 4726478.00}}

	assert.Equal(t, 19028350.17, Sum(src, func(i item) float64 { return i.cost }))
	assert.Zero(t, Sum([]item(nil), func(i item) float64 { return i.cost }))
}

func TestCount(t *testing.T) {
	src := []item{{id: 1}, {id: 2}, {id: 3}}

	assert.Equal(t, 3, Count(src, nil))
	assert.Equal(t, 1, Count(src, func(i item) bool { return i.id%2 == 0 }))
}

func TestOrderBy_StableMultiKey(t *testing.T) {
	src := []item{
		{id: 1, key: "b", cost: 1},
		{id: 2, key: "a", cost: 2},
		{id: 3, key: "b", cost: 1},
		{id: 4, key: "a", cost: 5},
	}

	got := OrderBy(src,
		Asc(func(i item) string { return i.key }),
		Desc(func(i item) float64 { return i.cost }),
	)

	assert.Equal(t, []int{4, 2, 1, 3}, Select(got, func(i item) int { return i.id }))
	assert.Equal(t, 1, src[0].id, "source must not be reordered")
}

func TestOrderBy_Collator(t *testing.T) {
	src := []item{{id: 1, key: "Мизягин"}, {id: 2, key: "Корнеев"}, {id: 3, key: "Аскерова"}, {id: 4, key: "ёлкин"}}
	coll := nameCollator()

	got := OrderBy(src, AscFunc(func(i item) string { return i.key }, coll.CompareString))

	assert.Equal(t, []int{3, 4, 2, 1}, Select(got, func(i item) int { return i.id }))
}

func TestTake(t *testing.T) {
	src := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Take(src, 2))
	assert.Equal(t, []int{1, 2, 3}, Take(src, 5))
	assert.Empty(t, Take(src, -1))
}

func TestDistinctWhereSelectMany(t *testing.T) {
	words := []string{"Go", "go", "Rust", "GO"}

	assert.Equal(t, []string{"Go", "Rust"}, Distinct(words, strings.ToLower))
	assert.Equal(t, []string{"Rust"}, Where(words, func(w string) bool { return len(w) > 2 }))
	assert.Equal(t, []rune("GoRu"), SelectMany([]string{"Go", "Ru"}, func(w string) []rune { return []rune(w) }))
}

func TestIndex(t *testing.T) {
	src := []item{{id: 1, key: "a"}, {id: 2, key: "b"}, {id: 3, key: "a"}}

	idx := Index(src, func(i item) string { return i.key })

	assert.Len(t, idx["a"], 2)
	assert.Equal(t, 3, idx["a"][1].id)
	assert.Nil(t, idx["missing"])
}

package freq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/factorshape/factor"
	"github.com/katalvlaran/factorshape/freq"
)

func TestTable_MergeCommutes(t *testing.T) {
	a := freq.NewTable()
	a.Add(factor.Shape{1})
	a.Add(factor.Shape{1})
	a.Add(factor.Shape{2, 1})

	b := freq.NewTable()
	b.Add(factor.Shape{1})
	b.Add(factor.Shape{3})

	ab := freq.NewTable()
	ab.Merge(a)
	ab.Merge(b)
	ba := freq.NewTable()
	ba.Merge(b)
	ba.Merge(a)

	assert.Equal(t, ab.Ranked(), ba.Ranked())
	assert.Equal(t, 5, ab.Total())
	assert.Equal(t, 3, ab.Get(factor.Shape{1}))
	assert.Equal(t, 3, a.Total(), "merge must not modify its argument")
}

func TestTable_TieBreak(t *testing.T) {
	tbl := freq.NewTable()
	for _, sh := range []factor.Shape{{1, 1}, {2}, {3}, {2, 1}, {1, 1, 1}} {
		tbl.Add(sh)
	}
	var got []string
	for _, e := range tbl.Ranked() {
		got = append(got, e.Shape.String())
	}
	assert.Equal(t, []string{"[2]", "[3]", "[1, 1]", "[2, 1]", "[1, 1, 1]"}, got)
}

func TestTable_AddCopiesShape(t *testing.T) {
	sh := factor.Shape{2, 1}
	tbl := freq.NewTable()
	tbl.Add(sh)
	sh[0] = 9
	assert.Equal(t, 1, tbl.Get(factor.Shape{2, 1}))

	ranked := tbl.Ranked()
	ranked[0].Shape[0] = 7
	assert.Equal(t, 1, tbl.Get(factor.Shape{2, 1}), "Ranked returns copies")
}

func TestTable_TopBounds(t *testing.T) {
	tbl := freq.NewTable()
	tbl.Add(factor.Shape{1})
	assert.Empty(t, tbl.Top(0))
	assert.Empty(t, tbl.Top(-3))
	assert.Len(t, tbl.Top(10), 1)
	assert.Empty(t, freq.NewTable().Ranked())
}

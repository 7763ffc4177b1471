package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKleeneNot(t *testing.T) {
	assert.Equal(t, TriFalse, Not(TriTrue))
	assert.Equal(t, TriTrue, Not(TriFalse))
	assert.Equal(t, TriNull, Not(TriNull))
}

func TestKleeneAnd(t *testing.T) {
	cases := []struct {
		a, b, want Tri
	}{
		{TriTrue, TriTrue, TriTrue},
		{TriTrue, TriFalse, TriFalse},
		{TriFalse, TriNull, TriFalse}, // false wins even against null
		{TriNull, TriFalse, TriFalse},
		{TriTrue, TriNull, TriNull},
		{TriNull, TriNull, TriNull},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, And(c.a, c.b))
	}
}

func TestKleeneOr(t *testing.T) {
	cases := []struct {
		a, b, want Tri
	}{
		{TriFalse, TriFalse, TriFalse},
		{TriTrue, TriFalse, TriTrue},
		{TriTrue, TriNull, TriTrue}, // true wins even against null
		{TriNull, TriTrue, TriTrue},
		{TriFalse, TriNull, TriNull},
		{TriNull, TriNull, TriNull},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Or(c.a, c.b))
	}
}

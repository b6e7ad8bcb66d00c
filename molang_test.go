package mcaddon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blockforge/mcaddon"
)

func TestMolang_IsExpression(t *testing.T) {
	cases := map[mcaddon.Molang]bool{
		"q.is_sneaking":           true,
		"query.block_face == 1":   true,
		"math.random(0, 1) > 0.5": true,
		"variable.charge + 1":     true,
		"stone":                   false,
		"minecraft:dirt":          false,
		"up":                      false,
	}
	for expr, want := range cases {
		assert.Equal(t, want, expr.IsExpression(), string(expr))
	}
	assert.Equal(t, "q.is_sneaking", mcaddon.Molang("q.is_sneaking").String())
}

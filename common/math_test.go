package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToward(t *testing.T) {
	cases := []struct {
		name  string
		from  Vec
		to    Vec
		speed float64
		want  Vec
	}{
		{"right", Vec{0, 0}, Vec{10, 0}, 50, Vec{50, 0}},
		{"down", Vec{5, 5}, Vec{5, 105}, 80, Vec{0, 80}},
		{"same_point", Vec{3, 3}, Vec{3, 3}, 200, Vec{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Toward(c.from, c.to, c.speed)
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 6))
	assert.Equal(t, 6, Clamp(9, 0, 6))
	assert.Equal(t, 4, Clamp(4, 0, 6))
}

package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	c := NewContainer()

	mw := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }
	c.Add(mw)
	c.Add(mw)

	got := c.GetAllAndClear()
	assert.Len(t, got, 2)

	// A second call starts from an empty chain.
	assert.Empty(t, c.GetAllAndClear())
}

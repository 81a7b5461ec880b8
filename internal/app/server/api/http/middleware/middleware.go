package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates middlewares for the next handler being wired.
// Order of Add calls is the order of execution.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

// GetAllAndClear hands out the accumulated chain and resets the container
// so the next handler starts from an empty one.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}

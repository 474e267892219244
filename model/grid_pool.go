package model

import "sync"

// GridPool recycles snapshot grids between frames
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a cleared grid from the pool, resized to the given dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}

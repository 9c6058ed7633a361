package main

import (
	"math"

	"github.com/milk9111/hopper/ecs/system"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLava
	cellPlatform
	cellMoving
	cellWall
	cellHazard
	cellFinish
	cellBody
)

// canvas is the feed scaled down to terminal cells. A cell takes the kind
// of the last shape covering its centre.
type canvas struct {
	cols, rows int
	sx, sy     float64
	cells      []cellKind
}

func rasterize(feed system.RenderFeed, cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([]cellKind, cols*rows)}
	if cols <= 0 || rows <= 0 || feed.Width <= 0 || feed.Height <= 0 {
		return c
	}
	c.sx = float64(cols) / feed.Width
	c.sy = float64(rows) / feed.Height

	if feed.Lava != nil {
		c.fill(*feed.Lava, cellLava)
	}
	for _, r := range feed.Platforms {
		c.fill(r, cellPlatform)
	}
	for _, r := range feed.Moving {
		c.fill(r, cellMoving)
	}
	for _, r := range feed.Walls {
		c.fill(r, cellWall)
	}
	for _, r := range feed.Hazards {
		c.fill(r, cellHazard)
	}
	for _, circle := range feed.Circles {
		c.fillCircle(circle, cellHazard)
	}
	c.fill(feed.Finish, cellFinish)
	c.fill(feed.Body, cellBody)
	return c
}

func (c *canvas) at(col, row int) cellKind {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return cellEmpty
	}
	return c.cells[row*c.cols+col]
}

func (c *canvas) fill(r system.Rect, kind cellKind) {
	if r.W <= 0 || r.H <= 0 || r.X+r.W <= 0 || r.Y+r.H <= 0 {
		return
	}
	if r.X*c.sx >= float64(c.cols) || r.Y*c.sy >= float64(c.rows) {
		return
	}
	c0, c1 := c.span(r.X, r.X+r.W, c.sx, c.cols)
	r0, r1 := c.span(r.Y, r.Y+r.H, c.sy, c.rows)
	// Thin shapes still get one cell so platforms stay visible.
	if c1 <= c0 {
		c1 = min(c0+1, c.cols)
	}
	if r1 <= r0 {
		r1 = min(r0+1, c.rows)
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.cells[row*c.cols+col] = kind
		}
	}
}

func (c *canvas) fillCircle(circle system.Circle, kind cellKind) {
	c0, c1 := c.span(circle.X-circle.R, circle.X+circle.R, c.sx, c.cols)
	r0, r1 := c.span(circle.Y-circle.R, circle.Y+circle.R, c.sy, c.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			x := (float64(col) + 0.5) / c.sx
			y := (float64(row) + 0.5) / c.sy
			if math.Hypot(x-circle.X, y-circle.Y) <= circle.R {
				c.cells[row*c.cols+col] = kind
			}
		}
	}
}

// span converts [lo, hi) in level pixels to the cells whose centres fall
// inside, clamped to [0, limit].
func (c *canvas) span(lo, hi, scale float64, limit int) (int, int) {
	from := int(math.Ceil(lo*scale - 0.5))
	to := int(math.Ceil(hi*scale - 0.5))
	from = max(0, min(from, limit))
	to = max(0, min(to, limit))
	return from, to
}

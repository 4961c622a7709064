package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// halfBlock draws the top pixel as foreground over the bottom pixel as background
const halfBlock = '▀'

type glyph struct {
	r  rune
	fg RGB
}

// Canvas is a half-block compositor: each terminal cell holds two stacked pixels
// plus an optional text glyph drawn over their average
type Canvas struct {
	img  *image.RGBA
	text []glyph
	cols int
	rows int
}

// NewCanvas creates a canvas of cols×rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if c.img != nil && cols == c.cols && rows == c.rows {
		return
	}
	size := cols * rows
	pix := 4 * size * 2
	if c.img != nil && cap(c.img.Pix) >= pix {
		c.img.Pix = c.img.Pix[:pix]
	} else {
		buf := make([]uint8, pix)
		c.img = &image.RGBA{Pix: buf}
	}
	c.img.Stride = 4 * cols
	c.img.Rect = image.Rect(0, 0, cols, rows*2)

	if cap(c.text) >= size {
		c.text = c.text[:size]
	} else {
		c.text = make([]glyph, size)
	}
	c.cols, c.rows = cols, rows
	c.Clear(RgbBackground)
}

// Size returns the canvas size in cells
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Image exposes the pixel plane for direct compositing; height is twice the row count
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills every pixel with bg and drops all text using exponential copy
func (c *Canvas) Clear(bg RGB) {
	clear(c.text)
	pix := c.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = bg.R, bg.G, bg.B, 0xff
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.cols && y >= 0 && y < c.rows*2
}

// Pixel returns the color at pixel (x, y); out of range reads black
func (c *Canvas) Pixel(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	i := c.img.PixOffset(x, y)
	return RGB{c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2]}
}

// BlendPixel composites col over pixel (x, y)
func (c *Canvas) BlendPixel(x, y int, col RGB, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	i := c.img.PixOffset(x, y)
	out := Blend(RGB{c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2]}, col, alpha)
	c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2] = out.R, out.G, out.B
}

// FillRect composites a solid rectangle in pixel space
func (c *Canvas) FillRect(r image.Rectangle, col RGB, alpha float64) {
	xdraw.Draw(c.img, r, image.NewUniform(col.NRGBA(alpha)), image.Point{}, xdraw.Over)
}

// StrokeRect draws a one pixel outline in pixel space
func (c *Canvas) StrokeRect(r image.Rectangle, col RGB) {
	if r.Empty() {
		return
	}
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col, 1)
	c.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col, 1)
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col, 1)
	c.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col, 1)
}

// DrawText writes s starting at cell (col, row); runes past the right edge are dropped
func (c *Canvas) DrawText(col, row int, s string, fg RGB) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.cols {
			c.text[row*c.cols+col] = glyph{r: r, fg: fg}
		}
		col++
	}
}

// Glyph returns the text rune at a cell, 0 when none
func (c *Canvas) Glyph(col, row int) (rune, RGB) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, RGB{}
	}
	g := c.text[row*c.cols+col]
	return g.r, g.fg
}

// Flush writes every cell to screen with its top-left at (x0, y0)
func (c *Canvas) Flush(screen tcell.Screen, x0, y0 int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.Pixel(col, 2*row)
			bottom := c.Pixel(col, 2*row+1)

			if g := c.text[row*c.cols+col]; g.r != 0 {
				style := tcell.StyleDefault.Foreground(g.fg.Tcell()).Background(Lerp(top, bottom, 0.5).Tcell())
				screen.SetContent(x0+col, y0+row, g.r, nil, style)
				continue
			}
			if top == bottom {
				screen.SetContent(x0+col, y0+row, ' ', nil, tcell.StyleDefault.Background(top.Tcell()))
				continue
			}
			style := tcell.StyleDefault.Foreground(top.Tcell()).Background(bottom.Tcell())
			screen.SetContent(x0+col, y0+row, halfBlock, nil, style)
		}
	}
}

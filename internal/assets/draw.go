package assets

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	oldGloryRed  = mustHex("#B22234")
	oldGloryBlue = mustHex("#3C3B6E")
	mapleRed     = mustHex("#D80621")
	white        = mustHex("#FFFFFF")

	bannerSky    = mustHex("#5DADE2")
	bannerCloth  = mustHex("#F39C12")
	bannerStripe = mustHex("#C0392B")
	bannerPole   = mustHex("#6E4B2A")
)

// mustHex parses a #rrggbb color literal
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// drawStarsAndStripes draws thirteen stripes with a starred canton
func drawStarsAndStripes(w, h int) []colorful.Color {
	pixels := make([]colorful.Color, w*h)
	cantonW := w * 2 / 5
	cantonH := h * 7 / 13

	for y := 0; y < h; y++ {
		stripe := y * 13 / h
		for x := 0; x < w; x++ {
			c := white
			if stripe%2 == 0 {
				c = oldGloryRed
			}
			if x < cantonW && y < cantonH {
				c = oldGloryBlue
				// Staggered star grid
				row, col := y*9/cantonH, x*11/cantonW
				if (row+col)%2 == 0 && y%(cantonH/9+1) == 0 {
					c = white
				}
			}
			pixels[y*w+x] = c
		}
	}
	return pixels
}

// drawMapleLeaf draws red bands around a white square holding a red leaf
func drawMapleLeaf(w, h int) []colorful.Color {
	pixels := make([]colorful.Color, w*h)
	cx, cy := float64(w)/2, float64(h)/2
	leaf := float64(h) * 0.35

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := white
			if x < w/4 || x >= w*3/4 {
				c = mapleRed
			} else if inLeaf(float64(x)-cx, float64(y)-cy, leaf) {
				c = mapleRed
			}
			pixels[y*w+x] = c
		}
	}
	return pixels
}

// inLeaf is a lobed star with a short stem, scaled by r
func inLeaf(dx, dy, r float64) bool {
	// Stem
	if math.Abs(dx) < r*0.08 && dy > 0 && dy < r*1.1 {
		return true
	}
	angle := math.Atan2(dy, dx)
	dist := math.Hypot(dx, dy)
	// Five-lobed outline pointing up
	edge := r * (0.65 + 0.35*math.Cos(5*(angle+math.Pi/2)))
	return dist < edge
}

// drawBanner draws a waving cartoon pennant on a pole
func drawBanner(w, h int) []colorful.Color {
	pixels := make([]colorful.Color, w*h)
	pole := w / 16

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := bannerSky
			switch {
			case x < pole:
				c = bannerPole
			default:
				u := float64(x-pole) / float64(w-pole)
				wave := math.Sin(u*2*math.Pi) * float64(h) / 10
				top := float64(h)/8 + wave
				bottom := float64(h)*7/8 + wave
				fy := float64(y)
				if fy >= top && fy <= bottom {
					c = bannerCloth
					mid := (top + bottom) / 2
					if math.Abs(fy-mid) < float64(h)/10 {
						c = bannerStripe
					}
				}
			}
			pixels[y*w+x] = c
		}
	}
	return pixels
}

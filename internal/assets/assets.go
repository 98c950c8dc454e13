// Package assets provides the three textures the table is drawn with: the
// obstacle banner and the two paddle faces. Each texture carries its own
// readiness flag and is not drawn before it is set.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/errgroup"
)

// Texture names, also the file stems looked up in an asset directory
const (
	ObstacleName     = "obstacle"
	PlayerFaceName   = "player"
	OpponentFaceName = "opponent"
)

const (
	textureWidth  = 96
	textureHeight = 48
)

// Texture is an image sampled in normalized coordinates
type Texture struct {
	Name string
	W, H int

	pixels []colorful.Color
	ready  atomic.Bool
}

// NewTexture creates an empty texture. It reports not ready until filled.
func NewTexture(name string) *Texture {
	return &Texture{Name: name}
}

// Ready reports whether the texture may be drawn
func (t *Texture) Ready() bool {
	return t.ready.Load()
}

// At samples the texture at u, v in [0,1]. An unready texture is black.
func (t *Texture) At(u, v float64) colorful.Color {
	if !t.Ready() || t.W == 0 || t.H == 0 {
		return colorful.Color{}
	}
	x := int(u * float64(t.W))
	y := int(v * float64(t.H))
	x = min(max(x, 0), t.W-1)
	y = min(max(y, 0), t.H-1)
	return t.pixels[y*t.W+x]
}

// fill stores the pixels and publishes the texture
func (t *Texture) fill(w, h int, pixels []colorful.Color) {
	t.W, t.H = w, h
	t.pixels = pixels
	t.ready.Store(true)
}

// Set holds every texture the renderer uses
type Set struct {
	Obstacle     *Texture
	PlayerFace   *Texture
	OpponentFace *Texture

	loaded chan struct{}
}

// NewSet returns a set whose textures are all still loading
func NewSet() *Set {
	return &Set{
		Obstacle:     NewTexture(ObstacleName),
		PlayerFace:   NewTexture(PlayerFaceName),
		OpponentFace: NewTexture(OpponentFaceName),
		loaded:       make(chan struct{}),
	}
}

// All returns the textures in a fixed order
func (s *Set) All() []*Texture {
	return []*Texture{s.Obstacle, s.PlayerFace, s.OpponentFace}
}

// AllReady reports whether every texture is ready
func (s *Set) AllReady() bool {
	for _, t := range s.All() {
		if !t.Ready() {
			return false
		}
	}
	return true
}

// Loaded is closed once every texture is ready
func (s *Set) Loaded() <-chan struct{} {
	return s.loaded
}

// Load fills every texture concurrently. A texture is read from
// <dir>/<name>.png when that file exists and drawn procedurally otherwise.
// Load must be called once.
func (s *Set) Load(ctx context.Context, dir string) error {
	g, ctx := errgroup.WithContext(ctx)

	generators := map[*Texture]func(w, h int) []colorful.Color{
		s.Obstacle:     drawBanner,
		s.PlayerFace:   drawStarsAndStripes,
		s.OpponentFace: drawMapleLeaf,
	}

	for tex, draw := range generators {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if dir != "" {
				ok, err := loadPNG(tex, filepath.Join(dir, tex.Name+".png"))
				if err != nil {
					return err
				}
				if ok {
					return nil
				}
			}

			tex.fill(textureWidth, textureHeight, draw(textureWidth, textureHeight))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load textures: %w", err)
	}

	close(s.loaded)
	return nil
}

// loadPNG fills tex from path. A missing file is not an error.
func loadPNG(tex *Texture, path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return false, fmt.Errorf("decode %s: empty image", path)
	}

	pixels := make([]colorful.Color, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := colorful.MakeColor(img.At(x, y))
			pixels = append(pixels, c)
		}
	}

	tex.fill(w, h, pixels)
	return true, nil
}

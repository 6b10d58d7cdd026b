// Package bigchar renders cuneiform glyphs as large block art using
// half-block characters, so signs stay legible in small terminal fonts.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontPaths lists the cuneiform fonts tried, in order.
var FontPaths = []string{
	// Noto
	"/usr/share/fonts/truetype/noto/NotoSansCuneiform-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansCuneiform-Regular.ttf",
	"/usr/share/fonts/google-noto/NotoSansCuneiform-Regular.ttf",
	"/Library/Fonts/NotoSansCuneiform-Regular.ttf",
	// Santakku and Ullikummi from the ORACC font set
	"/usr/share/fonts/truetype/oracc/Santakku.ttf",
	"/usr/share/fonts/truetype/oracc/UllikummiA.ttf",
	"/Library/Fonts/Santakku.ttf",
	// Windows ships Segoe UI Historic with the cuneiform block
	"C:\\Windows\\Fonts\\seguihis.ttf",
}

// threshold is the gray level above which a pixel counts as ink.
const threshold = 40

// Renderer draws glyphs with the first usable font it finds. Renders are
// cached by glyph and size. It is safe for concurrent use.
type Renderer struct {
	paths []string

	once sync.Once
	face font.Face

	mu    sync.Mutex
	cache map[cacheKey]string
}

type cacheKey struct {
	glyph      string
	cols, rows int
}

// New creates a renderer over the given font paths. Fonts are loaded on
// first use.
func New(paths ...string) *Renderer {
	if len(paths) == 0 {
		paths = FontPaths
	}
	return &Renderer{paths: paths, cache: make(map[cacheKey]string)}
}

// Available reports whether a cuneiform font could be loaded.
func (r *Renderer) Available() bool {
	r.once.Do(r.load)
	return r.face != nil
}

// Render returns glyph as block art of cols by rows terminal cells, or ""
// when no font is available.
func (r *Renderer) Render(glyph string, cols, rows int) string {
	if glyph == "" || cols <= 0 || rows <= 0 || !r.Available() {
		return ""
	}

	key := cacheKey{glyph: glyph, cols: cols, rows: rows}
	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.cache[key]; ok {
		return out
	}

	out := HalfBlocks(scaleDown(r.draw(glyph), cols, rows*2), cols, rows)
	r.cache[key] = out
	return out
}

func (r *Renderer) load() {
	for _, path := range r.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			r.face = face
			return
		}
	}
}

func parseFace(data []byte) font.Face {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	var fnt *opentype.Font
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		fnt, _ = coll.Font(0)
	}
	if fnt == nil {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil
		}
		fnt = parsed
	}

	face, err := opentype.NewFace(fnt, opts)
	if err != nil {
		return nil
	}
	return face
}

// draw rasterizes glyph, which may be several signs wide, onto a padded
// grayscale canvas.
func (r *Renderer) draw(glyph string) *image.Gray {
	const padding = 4

	bounds, advance := font.BoundString(r.face, glyph)
	width := advance.Ceil() + padding*2
	height := (bounds.Max.Y-bounds.Min.Y).Ceil() + padding*2
	width = max(width, 64)
	height = max(height, 64)

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P((width-advance.Ceil())/2, height-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(glyph)
	return img
}

// scaleDown shrinks src to w by h using area averaging.
func scaleDown(src *image.Gray, w, h int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for dy := 0; dy < h; dy++ {
		y0, y1 := dy*sh/h, min((dy+1)*sh/h, sh)
		for dx := 0; dx < w; dx++ {
			x0, x1 := dx*sw/w, min((dx+1)*sw/w, sw)

			sum, n := 0, 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					sum += int(src.GrayAt(x, y).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

// HalfBlocks maps each pair of vertically adjacent pixels of img to one of
// ' ', '▀', '▄' or '█'.
func HalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := inked(img, col, row*2)
			bottom := inked(img, col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func inked(img *image.Gray, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return false
	}
	return img.GrayAt(x, y).Y > threshold
}

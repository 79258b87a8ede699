package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"raymaze/internal/logger"
)

// Manifest lists texture files to bind into an atlas. Wall keys are single
// grid symbols.
type Manifest struct {
	Walls   map[string]string `yaml:"walls"`
	Floor   string            `yaml:"floor"`
	Ceiling string            `yaml:"ceiling"`
	Sprites map[string]string `yaml:"sprites"`
}

// Empty reports whether the manifest names no files at all.
func (m Manifest) Empty() bool {
	return len(m.Walls) == 0 && m.Floor == "" && m.Ceiling == "" && len(m.Sprites) == 0
}

// Decode reads an image file and converts it to texture data. PNG, JPEG,
// GIF and BMP are understood.
func Decode(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	d, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return d, nil
}

// ErrZeroSize is returned for images without pixels.
var ErrZeroSize = errors.New("zero-sized image")

// FromImage converts any image to texture data.
func FromImage(img image.Image) (*Data, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrZeroSize
	}
	if n, ok := img.(*image.NRGBA); ok {
		return fromNRGBA(n), nil
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return fromNRGBA(nrgba), nil
}

func fromNRGBA(img *image.NRGBA) *Data {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	d := NewData(w, h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			d.Pixels[y*w+x] = color.RGBA{p[0], p[1], p[2], p[3]}
		}
	}
	return d
}

// LoadWall decodes path and binds it to symbol. On failure the previous
// binding is left untouched.
func (a *Atlas) LoadWall(symbol rune, path string) error {
	d, err := Decode(path)
	if err != nil {
		return err
	}
	a.SetWall(symbol, d)
	return nil
}

// LoadFloor decodes path and binds it as the floor texture.
func (a *Atlas) LoadFloor(path string) error {
	d, err := Decode(path)
	if err != nil {
		return err
	}
	a.SetFloor(d)
	return nil
}

// LoadCeiling decodes path and binds it as the ceiling texture.
func (a *Atlas) LoadCeiling(path string) error {
	d, err := Decode(path)
	if err != nil {
		return err
	}
	a.SetCeiling(d)
	return nil
}

// LoadSprite decodes path and binds it under name.
func (a *Atlas) LoadSprite(name, path string) error {
	d, err := Decode(path)
	if err != nil {
		return err
	}
	a.SetSprite(name, d)
	return nil
}

type loadKind int

const (
	kindWall loadKind = iota
	kindFloor
	kindCeiling
	kindSprite
)

type loadJob struct {
	kind   loadKind
	symbol rune
	name   string
	path   string
	data   *Data
	err    error
}

func (j *loadJob) install(a *Atlas) {
	switch j.kind {
	case kindWall:
		a.SetWall(j.symbol, j.data)
	case kindFloor:
		a.SetFloor(j.data)
	case kindCeiling:
		a.SetCeiling(j.data)
	case kindSprite:
		a.SetSprite(j.name, j.data)
	}
}

// Preload decodes every file in the manifest concurrently and binds the
// ones that succeed. Failures do not stop the others; they are logged and
// returned joined. The atlas is only modified after all decoders finish.
func (a *Atlas) Preload(ctx context.Context, m Manifest) error {
	jobs, errs := planJobs(m)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			job.data, job.err = Decode(job.path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("preload textures: %w", err)
	}

	log := logger.Named("texture")
	loaded := 0
	for _, job := range jobs {
		if job.err != nil {
			log.Warn("texture load failed", zap.String("path", job.path), zap.Error(job.err))
			errs = append(errs, job.err)
			continue
		}
		job.install(a)
		loaded++
		log.Debug("texture loaded",
			zap.String("path", job.path),
			zap.Int("width", job.data.Width),
			zap.Int("height", job.data.Height))
	}
	log.Info("textures preloaded", zap.Int("loaded", loaded), zap.Int("failed", len(errs)))
	return errors.Join(errs...)
}

// planJobs turns a manifest into a deterministic job list. Wall keys that are
// not exactly one symbol are reported as errors.
func planJobs(m Manifest) ([]*loadJob, []error) {
	var jobs []*loadJob
	var errs []error

	for _, key := range sortedKeys(m.Walls) {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			errs = append(errs, fmt.Errorf("wall texture key %q: must be a single symbol", key))
			continue
		}
		jobs = append(jobs, &loadJob{kind: kindWall, symbol: r, path: m.Walls[key]})
	}
	if m.Floor != "" {
		jobs = append(jobs, &loadJob{kind: kindFloor, path: m.Floor})
	}
	if m.Ceiling != "" {
		jobs = append(jobs, &loadJob{kind: kindCeiling, path: m.Ceiling})
	}
	for _, name := range sortedKeys(m.Sprites) {
		jobs = append(jobs, &loadJob{kind: kindSprite, name: name, path: m.Sprites[name]})
	}
	return jobs, errs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

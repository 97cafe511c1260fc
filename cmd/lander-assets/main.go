// Command lander-assets writes the default texture, font and sound files
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/rocket-lander/audio"
	"github.com/lixenwraith/rocket-lander/constants"
)

const (
	textureSize = 64
	atlasCell   = 16
)

func main() {
	out := flag.String("out", "assets", "Output directory")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	written, err := generate(*out, *force)
	for _, p := range written {
		fmt.Println("wrote", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lander-assets: %v\n", err)
		os.Exit(1)
	}
}

// generate writes every default asset under dir and returns the paths written
// Existing files are kept unless force is set
func generate(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	jobs := []struct {
		name  string
		write func(path string) error
	}{
		{filepath.Base(constants.PlayerTexturePath), writeRocket},
		{filepath.Base(constants.PlatformTexturePath), writePlatform},
		{filepath.Base(constants.FloorTexturePath), writeFloor},
		{filepath.Base(constants.FontTexturePath), writeFontAtlas},
		{filepath.Base(constants.MusicPath), writeMusic},
		{filepath.Base(constants.EffectPath), writeEffect},
	}

	var written []string
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := j.write(path); err != nil {
			return written, fmt.Errorf("%s: %w", j.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeRocket(path string) error {
	dc := gg.NewContext(textureSize, textureSize)
	defer dc.Close()

	// Hull
	dc.SetRGB(0.85, 0.87, 0.92)
	dc.MoveTo(32, 4)
	dc.LineTo(44, 26)
	dc.LineTo(44, 50)
	dc.LineTo(20, 50)
	dc.LineTo(20, 26)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return err
	}

	// Fins
	dc.SetRGB(0.8, 0.15, 0.15)
	dc.MoveTo(20, 36)
	dc.LineTo(8, 58)
	dc.LineTo(20, 50)
	dc.ClosePath()
	dc.MoveTo(44, 36)
	dc.LineTo(56, 58)
	dc.LineTo(44, 50)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return err
	}

	// Window
	dc.SetRGB(0.2, 0.45, 0.8)
	dc.DrawCircle(32, 26, 6)
	if err := dc.Fill(); err != nil {
		return err
	}

	// Flame
	dc.SetRGB(1.0, 0.6, 0.1)
	dc.MoveTo(24, 50)
	dc.LineTo(32, 63)
	dc.LineTo(40, 50)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return err
	}

	return dc.SavePNG(path)
}

func writePlatform(path string) error {
	dc := gg.NewContext(textureSize, textureSize)
	defer dc.Close()

	dc.ClearWithColor(gg.RGBA{R: 0.3, G: 0.62, B: 0.32, A: 1})
	dc.SetRGB(0.45, 0.78, 0.4)
	dc.DrawRectangle(0, 0, textureSize, 12)
	if err := dc.Fill(); err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func writeFloor(path string) error {
	dc := gg.NewContext(textureSize, textureSize)
	defer dc.Close()

	dc.ClearWithColor(gg.RGBA{R: 0.55, G: 0.08, B: 0.08, A: 1})

	// Hazard stripes
	dc.SetRGB(0.95, 0.75, 0.1)
	for x := -textureSize; x < textureSize; x += 16 {
		fx := float64(x)
		dc.MoveTo(fx, textureSize)
		dc.LineTo(fx+8, textureSize)
		dc.LineTo(fx+8+textureSize, 0)
		dc.LineTo(fx+textureSize, 0)
		dc.ClosePath()
	}
	if err := dc.Fill(); err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// writeFontAtlas renders printable ASCII (32-126) into a 16x16 grid of 256 cells, row-major
// The remaining cells stay transparent
func writeFontAtlas(path string) error {
	n := constants.FontBankSize
	img := image.NewNRGBA(image.Rect(0, 0, n*atlasCell, n*atlasCell))

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 20, G: 20, B: 40, A: 255}),
		Face: face,
	}
	for code := 32; code < 127; code++ {
		col, row := code%n, code/n
		adv := d.MeasureString(string(rune(code)))
		x := col*atlasCell + (atlasCell-adv.Ceil())/2
		y := row*atlasCell + (atlasCell+face.Ascent-face.Descent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(string(rune(code)))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeMusic renders a short looping arpeggio
func writeMusic(path string) error {
	rate := beep.SampleRate(constants.AudioSampleRate)
	note := 250 * time.Millisecond

	var notes []beep.Streamer
	for _, freq := range []float64{220.0, 277.18, 329.63, 440.0, 329.63, 277.18} {
		osc := audio.NewOscillator(freq, note, audio.WaveTriangle, rate)
		notes = append(notes, audio.NewEnvelope(osc, note, 10*time.Millisecond, 120*time.Millisecond, rate))
	}
	return writeWAV(path, beep.Seq(notes...), rate)
}

// writeEffect renders a short upward blip
func writeEffect(path string) error {
	rate := beep.SampleRate(constants.AudioSampleRate)
	d := 120 * time.Millisecond
	sweep := audio.NewSweep(300, 900, d, audio.WaveSine, rate)
	return writeWAV(path, audio.NewEnvelope(sweep, d, 5*time.Millisecond, 80*time.Millisecond, rate), rate)
}

func writeWAV(path string, s beep.Streamer, rate beep.SampleRate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

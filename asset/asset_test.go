package asset

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "red.png", 8, 4, color.NRGBA{R: 255, A: 255})

	tex, err := LoadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 8, tex.Width)
	assert.Equal(t, 4, tex.Height)
	require.NotNil(t, tex.Image)
	assert.Equal(t, 8, tex.Image.Width())
	assert.NotZero(t, tex.Checksum)

	assert.InDelta(t, 255, int(tex.Average.R), 1)
	assert.InDelta(t, 0, int(tex.Average.G), 1)
	assert.InDelta(t, 0, int(tex.Average.B), 1)
	assert.InDelta(t, 255, int(tex.Average.A), 1)
}

func TestLoadTextureMissingFile(t *testing.T) {
	_, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTexture))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeTextureGarbage(t *testing.T) {
	_, err := DecodeTexture("junk.png", []byte("not an image"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTexture))
}

func TestAverageColorMixed(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 200, A: 255})

	avg := AverageColor(img)
	assert.InDelta(t, 100, int(avg.R), 8)
	assert.InDelta(t, 100, int(avg.B), 8)
	assert.Equal(t, uint8(0), avg.G)
}

func TestStoreLoadAllAssignsHandlesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 4, 4, color.NRGBA{R: 255, A: 255})
	b := writePNG(t, dir, "b.png", 4, 4, color.NRGBA{G: 255, A: 255})
	c := writePNG(t, dir, "c.png", 4, 4, color.NRGBA{B: 255, A: 255})

	s := NewStore(nil)
	ids, err := s.LoadAll(context.Background(), a, b, c)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.EqualValues(t, 1, ids[0])
	assert.EqualValues(t, 2, ids[1])
	assert.EqualValues(t, 3, ids[2])
	assert.Equal(t, 3, s.Len())

	tex, err := s.Get(ids[1])
	require.NoError(t, err)
	assert.Equal(t, b, tex.Path)

	col, ok := s.Color(ids[2])
	require.True(t, ok)
	assert.InDelta(t, 255, int(col.B), 1)

	assert.NotNil(t, s.Image(ids[0]))
}

func TestStoreDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 4, 4, color.NRGBA{R: 10, A: 255})
	same := writePNG(t, dir, "copy.png", 4, 4, color.NRGBA{R: 10, A: 255})

	core, logs := observer.New(zapcore.DebugLevel)
	s := NewStore(zap.New(core))

	ids, err := s.LoadAll(context.Background(), a, same, a)
	require.NoError(t, err)
	assert.Equal(t, ids[0], ids[1], "identical content shares a handle")
	assert.Equal(t, ids[0], ids[2], "repeated path shares a handle")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, logs.FilterMessage("texture deduplicated").Len())

	again, err := s.Load(context.Background(), same)
	require.NoError(t, err)
	assert.Equal(t, ids[0], again)
}

func TestStoreLoadAllFailsFast(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", 2, 2, color.NRGBA{A: 255})

	s := NewStore(nil)
	_, err := s.LoadAll(context.Background(), good, filepath.Join(dir, "nope.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTexture))
	assert.Equal(t, 0, s.Len(), "nothing registered on failure")
}

func TestStoreUnknownHandle(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Get(0)
	assert.True(t, errors.Is(err, ErrUnknownTexture))
	_, err = s.Get(42)
	assert.True(t, errors.Is(err, ErrUnknownTexture))
	assert.Nil(t, s.Image(7))
	_, ok := s.Color(7)
	assert.False(t, ok)
}

package asset

import (
	"context"
	"errors"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/rocket-lander/core"
)

// ErrUnknownTexture is returned for handles the store never issued
var ErrUnknownTexture = errors.New("unknown texture")

// Store owns loaded textures and hands out opaque handles
// Files with identical content share one handle
type Store struct {
	mu       sync.RWMutex
	textures []*Texture
	byPath   map[string]core.TextureID
	bySum    map[uint64]core.TextureID
	logger   *zap.Logger
}

// NewStore creates an empty texture store
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		byPath: make(map[string]core.TextureID),
		bySum:  make(map[uint64]core.TextureID),
		logger: logger,
	}
}

// Load loads a single texture
func (s *Store) Load(ctx context.Context, path string) (core.TextureID, error) {
	ids, err := s.LoadAll(ctx, path)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// LoadAll decodes paths concurrently and registers them in argument order
// The first failure cancels the remaining loads and nothing is registered
func (s *Store) LoadAll(ctx context.Context, paths ...string) ([]core.TextureID, error) {
	decoded := make([]*Texture, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		if _, ok := s.lookupPath(path); ok {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tex, err := LoadTexture(path)
			if err != nil {
				return err
			}
			decoded[i] = tex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]core.TextureID, len(paths))
	for i, path := range paths {
		if id, ok := s.byPath[path]; ok {
			ids[i] = id
			continue
		}
		ids[i] = s.register(decoded[i])
	}
	return ids, nil
}

// register adds a decoded texture, caller holds the write lock
func (s *Store) register(tex *Texture) core.TextureID {
	if id, ok := s.bySum[tex.Checksum]; ok {
		s.byPath[tex.Path] = id
		s.logger.Debug("texture deduplicated",
			zap.String("path", tex.Path),
			zap.String("shared_with", s.textures[id-1].Path),
		)
		return id
	}

	tex.ID = core.TextureID(len(s.textures) + 1)
	s.textures = append(s.textures, tex)
	s.byPath[tex.Path] = tex.ID
	s.bySum[tex.Checksum] = tex.ID

	s.logger.Info("texture loaded",
		zap.String("path", tex.Path),
		zap.Uint32("id", uint32(tex.ID)),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
		zap.Uint64("checksum", tex.Checksum),
	)
	return tex.ID
}

func (s *Store) lookupPath(path string) (core.TextureID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byPath[path]
	return id, ok
}

// Get returns the texture for a handle
func (s *Store) Get(id core.TextureID) (*Texture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == 0 || int(id) > len(s.textures) {
		return nil, ErrUnknownTexture
	}
	return s.textures[id-1], nil
}

// Image returns the pixel buffer for a handle, nil if unknown
func (s *Store) Image(id core.TextureID) *gg.ImageBuf {
	tex, err := s.Get(id)
	if err != nil {
		return nil
	}
	return tex.Image
}

// Color returns the average colour for a handle, ok is false if unknown
func (s *Store) Color(id core.TextureID) (color.NRGBA, bool) {
	tex, err := s.Get(id)
	if err != nil {
		return color.NRGBA{}, false
	}
	return tex.Average, true
}

// Len returns the number of distinct textures
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.textures)
}

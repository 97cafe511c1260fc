package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/core"
	"github.com/lixenwraith/rocket-lander/engine"
)

type backendEntry struct {
	name     string
	backend  Backend
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator builds one frame per Present and hands it to every backend
type RenderOrchestrator struct {
	font     core.TextureID
	frame    Frame
	backends []backendEntry
	regCount int
	frames   uint64
	logger   *zap.Logger
}

// NewRenderOrchestrator creates an orchestrator drawing text from the given font atlas
func NewRenderOrchestrator(font core.TextureID, logger *zap.Logger) *RenderOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenderOrchestrator{
		font:     font,
		backends: make([]backendEntry, 0, 4),
		logger:   logger,
	}
}

// Register adds a backend at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(name string, b Backend, priority RenderPriority) {
	entry := backendEntry{
		name:     name,
		backend:  b,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.backends)
	for i, e := range o.backends {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.backends = append(o.backends, backendEntry{})
	copy(o.backends[pos+1:], o.backends[pos:])
	o.backends[pos] = entry

	o.logger.Debug("render backend registered", zap.String("backend", name), zap.Int("priority", int(priority)))
}

// Present implements engine.Presenter
// Every visible backend draws; failures are joined and returned after all have run
func (o *RenderOrchestrator) Present(s *engine.Session) error {
	BuildFrame(&o.frame, s, o.font)
	o.frames++

	var errs []error
	for _, entry := range o.backends {
		if vt, ok := entry.backend.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		if err := entry.backend.Draw(&o.frame); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.name, err))
		}
	}
	return errors.Join(errs...)
}

// LastFrame returns the most recently built frame
func (o *RenderOrchestrator) LastFrame() *Frame {
	return &o.frame
}

// Frames returns the number of frames presented
func (o *RenderOrchestrator) Frames() uint64 {
	return o.frames
}

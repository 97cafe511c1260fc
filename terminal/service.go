package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/rocket-lander/constants"
	"github.com/lixenwraith/rocket-lander/core"
)

// TerminalService manages the tcell screen lifecycle and the input pump
type TerminalService struct {
	screen    tcell.Screen
	colorMode ColorMode
	eventCh   chan tcell.Event
	stopCh    chan struct{}
	logger    *zap.Logger

	mu       sync.Mutex
	running  bool
	inited   bool
	finiOnce sync.Once
}

// NewService creates a terminal service; a nil screen opens the real terminal at Init
func NewService(screen tcell.Screen, mode ColorMode, logger *zap.Logger) *TerminalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TerminalService{
		screen:    screen,
		colorMode: mode,
		eventCh:   make(chan tcell.Event, 256),
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

// Init opens the screen and registers it for crash restoration
func (s *TerminalService) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	if s.screen == nil {
		if err := s.colorMode.Apply(); err != nil {
			return fmt.Errorf("terminal color mode: %w", err)
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal open: %w", err)
		}
		s.screen = screen
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.SetTitle(constants.WindowTitle)
	s.screen.HideCursor()
	s.screen.Clear()

	s.inited = true
	core.RegisterCrashTerminal(s)

	w, h := s.screen.Size()
	s.logger.Info("terminal initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("colors", s.screen.Colors()),
		zap.String("color_mode", s.colorMode.String()),
	)
	return nil
}

// Start launches the input pump; events arrive on Events until Stop
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inited {
		return fmt.Errorf("terminal start: not initialized")
	}
	if s.running {
		return nil
	}
	s.running = true

	core.Go(func() {
		s.screen.ChannelEvents(s.eventCh, s.stopCh)
	})
	return nil
}

// Stop ends the pump, which closes the event channel, and restores the terminal
func (s *TerminalService) Stop() {
	s.mu.Lock()
	if s.running {
		close(s.stopCh)
		s.running = false
	}
	s.mu.Unlock()

	s.Fini()
}

// Fini restores the terminal; safe to call more than once and from the crash handler
func (s *TerminalService) Fini() {
	s.finiOnce.Do(func() {
		s.mu.Lock()
		inited := s.inited
		s.mu.Unlock()
		if inited {
			s.screen.Fini()
		}
		core.RegisterCrashTerminal(nil)
	})
}

// Screen returns the wrapped screen
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *TerminalService) Events() <-chan tcell.Event {
	return s.eventCh
}

// Sync forces a full redraw, used after resize
func (s *TerminalService) Sync() {
	s.screen.Sync()
}

package audio

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Service plays synthesized effects and looping music through the beep speaker.
// Without an audio backend it logs once and turns every call into a no-op.
type Service struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	music    *beep.Ctrl
	closer   func() error
	disabled atomic.Bool
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		mixer:  &beep.Mixer{},
		logger: logger.With("component", "audio"),
	}
}

// Init opens the speaker. Failure disables the service and is not returned.
func (s *Service) Init() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		s.logger.Warn("audio backend unavailable, sound disabled", "error", err)
		s.disabled.Store(true)
		return
	}
	speaker.Play(s.mixer)
}

func (s *Service) IsDisabled() bool { return s.disabled.Load() }

// PlaySound implements interfaces.AudioPlayer.
func (s *Service) PlaySound(name string) {
	if s.disabled.Load() {
		return
	}
	streamer := synthesize(name, sampleRate)
	if streamer == nil {
		s.logger.Warn("unknown sound", "name", name)
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayMusic implements interfaces.AudioPlayer. It loops a WAV file, or a
// generated drone when the file cannot be opened.
func (s *Service) PlayMusic(path string) {
	if s.disabled.Load() {
		return
	}
	streamer, closer, err := loadLoop(path)
	if err != nil {
		s.logger.Error("music unavailable, using fallback", "path", path, "error", err)
		streamer, closer = fallbackMusic(sampleRate), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	if s.music != nil {
		s.music.Streamer = nil
	}
	s.music = &beep.Ctrl{Streamer: streamer}
	s.mixer.Add(s.music)
	speaker.Unlock()

	s.closeMusic()
	s.closer = closer
}

// Close stops playback and releases the music file.
func (s *Service) Close() {
	if s.disabled.Load() {
		return
	}
	speaker.Clear()
	s.mu.Lock()
	s.closeMusic()
	s.mu.Unlock()
	speaker.Close()
}

func (s *Service) closeMusic() {
	if s.closer != nil {
		if err := s.closer(); err != nil {
			s.logger.Warn("failed to close music file", "error", err)
		}
		s.closer = nil
	}
}

func loadLoop(path string) (beep.Streamer, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open music: %w", err)
	}
	decoded, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to decode music: %w", err)
	}
	var loop beep.Streamer = beep.Loop(-1, decoded)
	if format.SampleRate != sampleRate {
		loop = beep.Resample(4, format.SampleRate, sampleRate, loop)
	}
	return loop, decoded.Close, nil
}

// Nop is an AudioPlayer that discards everything.
type Nop struct{}

func (Nop) PlaySound(string) {}
func (Nop) PlayMusic(string) {}

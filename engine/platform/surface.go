package platform

import (
	"errors"
	"image"
	"image/draw"
	"sync"
)

// Frame is a drawing buffer handed out for a single render pass. Close
// releases it back to its surface; the frame must not be drawn on after
// that.
type Frame interface {
	draw.Image
	Close() error
}

// Surface is a double-buffered drawing target. Buffers can be invalidated
// underneath the renderer at any time, so a render pass checks
// ContentsRestored before presenting and ContentsLost after, repeating the
// pass until both come back clean.
type Surface interface {
	Acquire() (Frame, error)
	Present() error
	ContentsRestored() bool
	ContentsLost() bool
	Width() int
	Height() int
}

// ErrSurfaceClosed is returned by Acquire and Present after Close.
var ErrSurfaceClosed = errors.New("platform: surface closed")

// InvalidationProbe reports whether the surface's buffers were invalidated
// since the last call. Real windowing backends plug their lost-surface
// signal in here.
type InvalidationProbe func() bool

// SoftwareSurface keeps two RGBA buffers in memory and swaps them on
// Present. It satisfies Surface and is the default render target when no
// hardware backend is wired in.
type SoftwareSurface struct {
	mu       sync.Mutex
	width    int
	height   int
	buffers  [2]*image.RGBA
	back     int
	lost     bool
	restored bool
	closed   bool
	probe    InvalidationProbe
}

// NewSoftwareSurface creates a surface with the given dimensions. A nil
// probe means the buffers are never invalidated.
func NewSoftwareSurface(width, height int, probe InvalidationProbe) *SoftwareSurface {
	s := &SoftwareSurface{
		width:  width,
		height: height,
		probe:  probe,
	}
	s.buffers[0] = image.NewRGBA(image.Rect(0, 0, width, height))
	s.buffers[1] = image.NewRGBA(image.Rect(0, 0, width, height))
	return s
}

// Acquire returns the back buffer for drawing. If the buffers were lost
// since the last pass they are reallocated first and the surface reports
// ContentsRestored until the next Present.
func (s *SoftwareSurface) Acquire() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSurfaceClosed
	}
	if s.lost {
		s.buffers[0] = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		s.buffers[1] = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
		s.lost = false
		s.restored = true
	}
	return &softwareFrame{RGBA: s.buffers[s.back], surface: s}, nil
}

// Present makes the back buffer the visible one. If the probe reports an
// invalidation the swap is dropped and the surface reports ContentsLost.
func (s *SoftwareSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSurfaceClosed
	}
	if s.probe != nil && s.probe() {
		s.lost = true
		return nil
	}
	s.back = 1 - s.back
	s.restored = false
	return nil
}

// ContentsRestored reports whether the drawing buffer was reallocated
// since it was last presented. A true result means the current pass drew
// on a blank buffer and must be redrawn before presenting.
func (s *SoftwareSurface) ContentsRestored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restored {
		s.restored = false
		return true
	}
	return false
}

// ContentsLost reports whether the buffers were invalidated, which drops
// the last Present. A true result restarts the render pass from Acquire.
func (s *SoftwareSurface) ContentsLost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lost
}

func (s *SoftwareSurface) Width() int {
	return s.width
}

func (s *SoftwareSurface) Height() int {
	return s.height
}

// Front returns the most recently presented buffer.
func (s *SoftwareSurface) Front() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers[1-s.back]
}

// Resize reallocates both buffers at the new dimensions. The surface
// reports ContentsRestored on the next Acquire so the frame is redrawn.
func (s *SoftwareSurface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || (width == s.width && height == s.height) {
		return
	}
	s.width = width
	s.height = height
	s.lost = true
}

// Close releases the surface. Acquire and Present fail afterwards.
func (s *SoftwareSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.buffers[0] = nil
	s.buffers[1] = nil
	return nil
}

type softwareFrame struct {
	*image.RGBA
	surface *SoftwareSurface
	closed  bool
}

func (f *softwareFrame) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.RGBA = nil
	return nil
}

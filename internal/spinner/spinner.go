// Package spinner holds the text sweep animation and a player that walks it.
package spinner

import (
	"strings"
	"sync"
)

const (
	frameCount = 33

	// FrameWidth is the length of every frame in characters.
	FrameWidth = 19

	// Marker is the character that moves across the frame.
	Marker = 'o'
)

// Frame returns the frame at index mod FrameCount. Negative indexes wrap
// backwards, so Frame(-1) is the last frame.
func Frame(index int) string {
	return frames[wrap(index)]
}

// FrameCount returns the number of frames in the sweep.
func FrameCount() int {
	return frameCount
}

// Frames returns a copy of the whole sweep in playback order.
func Frames() []string {
	out := make([]string, frameCount)
	copy(out, frames[:])
	return out
}

// MarkerColumn returns the column of the marker in frame, or -1 if the
// frame has no marker.
func MarkerColumn(frame string) int {
	return strings.IndexRune(frame, Marker)
}

func wrap(index int) int {
	i := index % frameCount
	if i < 0 {
		i += frameCount
	}
	return i
}

// Player tracks the current position in the sweep. It is safe for
// concurrent use.
type Player struct {
	mu  sync.Mutex
	seq int
}

// NewPlayer returns a player positioned on the first frame.
func NewPlayer() *Player {
	return &Player{}
}

// NewPlayerAt returns a player positioned on seq (wrapped into range).
func NewPlayerAt(seq int) *Player {
	return &Player{seq: wrap(seq)}
}

// Current returns the frame the player is on.
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return frames[p.seq]
}

// Advance moves one frame forward and returns the new frame.
func (p *Player) Advance() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq = (p.seq + 1) % frameCount
	return frames[p.seq]
}

// Seq returns the current frame index.
func (p *Player) Seq() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq
}

// Reset rewinds the player to the first frame.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq = 0
}

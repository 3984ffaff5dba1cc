// Package window presents frames in a desktop window.
//
// The window is driven by ebiten, which must own the main goroutine: call
// [Window.Run] from main and present frames from any other goroutine.
package window

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/BeatGlow/pixels"
	"github.com/BeatGlow/pixels/pixel"
)

// ErrClosed is returned when presenting to a closed window.
var ErrClosed = errors.New("window: closed")

// Window is an ebiten game that shows the last presented frame.
type Window struct {
	title      string
	scale      int
	mu         sync.RWMutex
	width      int
	height     int
	frame      []byte
	resized    bool
	image      *ebiten.Image
	fullscreen bool
	showStatus bool
	frames     atomic.Uint64
	closed     atomic.Bool
	done       chan struct{}
	doneOnce   sync.Once
}

// New returns a window sized for width*height frames, scaled by an integer
// factor on screen.
func New(title string, width, height, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		title:  title,
		scale:  scale,
		width:  width,
		height: height,
		frame:  make([]byte, width*height*4),
		done:   make(chan struct{}),
	}
}

// Present copies the frame into the back buffer with every pixel made
// opaque. A frame with different dimensions, such as after an orientation
// change, resizes the window.
func (w *Window) Present(frame pixels.Frame) error {
	if w.closed.Load() {
		return ErrClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if frame.Width != w.width || frame.Height != w.height {
		w.width, w.height = frame.Width, frame.Height
		w.frame = make([]byte, w.width*w.height*4)
		w.resized = true
	}
	pixel.CopyOpaque(w.frame, frame.Pix)
	return nil
}

// Frames is the number of frames drawn so far.
func (w *Window) Frames() uint64 {
	return w.frames.Load()
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	defer w.doneOnce.Do(func() { close(w.done) })

	w.mu.RLock()
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	w.mu.RUnlock()
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	pixels.Logger().Info("window opened", "title", w.title, "scale", w.scale)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Done is closed once Run returns.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Close stops the game loop at the next update.
func (w *Window) Close() error {
	w.closed.Store(true)
	return nil
}

func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || w.closed.Load() {
		w.closed.Store(true)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		w.fullscreen = !w.fullscreen
		ebiten.SetFullscreen(w.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		w.showStatus = !w.showStatus
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	if w.resized && !w.fullscreen {
		ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	}
	if w.image == nil || w.resized {
		if w.image != nil {
			w.image.Deallocate()
		}
		w.image = ebiten.NewImage(w.width, w.height)
		w.resized = false
	}
	w.image.WritePixels(w.frame)
	width, height := w.width, w.height
	w.mu.Unlock()

	screen.DrawImage(w.image, nil)
	if w.showStatus {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%dx%d %.1f fps", width, height, ebiten.ActualFPS()))
	}
	w.frames.Add(1)
}

func (w *Window) Layout(_, _ int) (int, int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagegrid

import (
	"image"
	"image/color"
	"sort"
	"sync"
	"time"

	"github.com/aclements/go-chartkit/surface"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ErrMismatchedSize is returned when images in one grid differ in size.
var ErrMismatchedSize = errors.New("images differ in size")

// DefaultEnlargeDelay is how long the pointer must rest on an image
// before it is shown enlarged.
const DefaultEnlargeDelay = 900 * time.Millisecond

// A SelectionListener is notified when the user clicks in a Panel.
// Listeners must be comparable so they can be removed.
type SelectionListener interface {
	// ImageSelected is called with the clicked image, or nil if the
	// click was not on an image.
	ImageSelected(img image.Image)
}

// Colors are the colors a Panel is painted with.
type Colors struct {
	Background color.Color
	Highlight  color.Color
	Selection  color.Color
}

// DefaultColors returns orange highlights and blue selections on
// white.
func DefaultColors() Colors {
	return Colors{
		Background: color.White,
		Highlight:  color.NRGBA{255, 200, 0, 255},
		Selection:  color.NRGBA{0, 0, 255, 255},
	}
}

// A Panel shows a list of equally sized images in a grid. Clicking
// an image toggles its selection, and resting the pointer on an image
// shows it enlarged after a delay.
//
// A Panel is safe for concurrent use. Listener and repaint callbacks
// are called without the Panel's lock held.
type Panel struct {
	mu sync.Mutex

	images        []image.Image
	imgW, imgH    int
	width, height int
	layout        Layout

	selected []int // image indexes, oldest first
	maxSel   int

	highlighted int // -1 if none
	enlarged    bool
	hover       uint64 // token of the pending enlargement
	timer       *time.Timer
	delay       time.Duration

	listeners []SelectionListener
	repaint   func()
	colors    Colors
	logger    hclog.Logger
}

// NewPanel returns a Panel showing images.
func NewPanel(images []image.Image) (*Panel, error) {
	p := &Panel{
		highlighted: -1,
		delay:       DefaultEnlargeDelay,
		colors:      DefaultColors(),
		logger:      hclog.NewNullLogger(),
	}
	if err := p.SetImageList(images); err != nil {
		return nil, err
	}
	return p, nil
}

// SetImageList replaces the images and clears the selection and
// highlight. All images must have the same size.
func (p *Panel) SetImageList(images []image.Image) error {
	var w, h int
	for i, img := range images {
		if img == nil {
			return errors.Errorf("image %d is nil", i)
		}
		b := img.Bounds()
		if i == 0 {
			w, h = b.Dx(), b.Dy()
		} else if b.Dx() != w || b.Dy() != h {
			return errors.Wrapf(ErrMismatchedSize, "image %d is %dx%d, image 0 is %dx%d", i, b.Dx(), b.Dy(), w, h)
		}
	}

	p.mu.Lock()
	p.cancelLocked()
	p.images = images
	p.imgW, p.imgH = w, h
	p.selected = nil
	p.highlighted = -1
	p.enlarged = false
	p.relayoutLocked()
	repaint, logger := p.repaint, p.logger
	p.mu.Unlock()
	logger.Debug("image list set", "images", len(images), "width", w, "height", h)

	if repaint != nil {
		repaint()
	}
	return nil
}

// SetSingleImage shows just img, as large as fits.
func (p *Panel) SetSingleImage(img image.Image) error {
	if img == nil {
		return errors.New("nil image")
	}
	return p.SetImageList([]image.Image{img})
}

// Images returns the images shown.
func (p *Panel) Images() []image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.images
}

// SetSize sets the size of the panel.
func (p *Panel) SetSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
	p.relayoutLocked()
}

func (p *Panel) relayoutLocked() {
	p.layout = Compute(len(p.images), p.imgW, p.imgH, p.width, p.height)
}

// Layout returns the current arrangement of the images.
func (p *Panel) Layout() Layout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

// SetMaxNumSelections limits how many images may be selected at once.
// When the limit is reached, selecting another image deselects the
// oldest selection. n < 1 means no limit.
func (p *Panel) SetMaxNumSelections(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxSel = n
	if n > 0 && len(p.selected) > n {
		p.selected = append([]int(nil), p.selected[len(p.selected)-n:]...)
	}
}

// SetEnlargeDelay sets how long the pointer must rest on an image
// before it is enlarged.
func (p *Panel) SetEnlargeDelay(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = d
}

// SetRepaintFunc sets a function called whenever the panel's
// appearance changes outside of Paint.
func (p *Panel) SetRepaintFunc(f func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repaint = f
}

// SetColors sets the painting colors. Nil colors keep their current
// value.
func (p *Panel) SetColors(c Colors) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c.Background != nil {
		p.colors.Background = c.Background
	}
	if c.Highlight != nil {
		p.colors.Highlight = c.Highlight
	}
	if c.Selection != nil {
		p.colors.Selection = c.Selection
	}
}

// SetLogger sets the logger for panel diagnostics.
func (p *Panel) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = l
}

// AddSelectionListener registers l to be notified of clicks.
func (p *Panel) AddSelectionListener(l SelectionListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// RemoveSelectionListener unregisters l.
func (p *Panel) RemoveSelectionListener(l SelectionListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, l2 := range p.listeners {
		if l2 == l {
			p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
			return
		}
	}
}

// SelectedIndices returns the indexes of the selected images in
// increasing order.
func (p *Panel) SelectedIndices() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := append([]int(nil), p.selected...)
	sort.Ints(out)
	return out
}

// SetSelectedIndices replaces the selection with the given image
// indexes and notifies listeners of each selected image. Indexes out
// of range are ignored.
func (p *Panel) SetSelectedIndices(indices []int) {
	want := make(map[int]bool, len(indices))
	for _, i := range indices {
		want[i] = true
	}

	p.mu.Lock()
	p.selected = nil
	var notify []image.Image
	for i, img := range p.images {
		if want[i] {
			p.selectLocked(i)
			notify = append(notify, img)
		}
	}
	listeners := append([]SelectionListener(nil), p.listeners...)
	p.mu.Unlock()

	for _, img := range notify {
		for _, l := range listeners {
			l.ImageSelected(img)
		}
	}
}

// selectLocked adds image i to the selection, dropping the oldest
// selection if the limit is reached.
func (p *Panel) selectLocked(i int) {
	if p.maxSel > 0 && len(p.selected) >= p.maxSel {
		p.selected = p.selected[1:]
	}
	p.selected = append(p.selected, i)
}

func (p *Panel) isSelectedLocked(i int) bool {
	for _, j := range p.selected {
		if j == i {
			return true
		}
	}
	return false
}

// ImageAt returns the index of the image at (x, y), or -1.
func (p *Panel) ImageAt(x, y int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout.IndexAt(x, y)
}

// Highlighted returns the index of the image under the pointer, or -1.
func (p *Panel) Highlighted() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.highlighted
}

// Enlarged reports whether the highlighted image is shown enlarged.
func (p *Panel) Enlarged() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enlarged
}

// MouseMoved handles the pointer moving to (x, y). Any movement
// cancels a pending enlargement. If the pointer is over an image that
// is not already enlarged, a new enlargement is scheduled.
func (p *Panel) MouseMoved(x, y int) {
	p.mu.Lock()
	p.cancelLocked()
	i := p.layout.IndexAt(x, y)
	changed := i != p.highlighted
	if changed {
		p.highlighted = i
		p.enlarged = false
	}
	if i >= 0 && !p.enlarged {
		token := p.hover
		p.timer = time.AfterFunc(p.delay, func() { p.enlarge(token) })
	}
	repaint := p.repaint
	p.mu.Unlock()

	if changed && repaint != nil {
		repaint()
	}
}

// cancelLocked stops any pending enlargement. A timer that already
// fired but has not taken the lock sees a stale token and does
// nothing.
func (p *Panel) cancelLocked() {
	p.hover++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Panel) enlarge(token uint64) {
	p.mu.Lock()
	if token != p.hover || p.highlighted < 0 {
		p.mu.Unlock()
		return
	}
	p.enlarged = true
	p.timer = nil
	repaint := p.repaint
	p.logger.Trace("enlarging image", "index", p.highlighted)
	p.mu.Unlock()

	if repaint != nil {
		repaint()
	}
}

// MouseReleased handles a click at (x, y). Clicking an image toggles
// its selection. Listeners are notified of the clicked image, or of
// nil if the click missed every image.
func (p *Panel) MouseReleased(x, y int) {
	p.mu.Lock()
	var img image.Image
	i := p.layout.IndexAt(x, y)
	if i >= 0 {
		img = p.images[i]
		if p.isSelectedLocked(i) {
			for k, j := range p.selected {
				if j == i {
					p.selected = append(p.selected[:k:k], p.selected[k+1:]...)
					break
				}
			}
		} else {
			p.selectLocked(i)
		}
	}
	listeners := append([]SelectionListener(nil), p.listeners...)
	repaint := p.repaint
	p.mu.Unlock()

	if i >= 0 && repaint != nil {
		repaint()
	}
	for _, l := range listeners {
		l.ImageSelected(img)
	}
}

// Close cancels any pending enlargement.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
}

// Paint draws the images on s. Images are only drawn if s is a
// surface.ImageDrawer; otherwise their cells are outlined. A nil s
// draws nothing.
func (p *Panel) Paint(s surface.Surface) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.images) == 0 {
		return
	}

	s.SetColor(p.colors.Background)
	s.FillRect(0, 0, p.width, p.height)

	d, canDraw := s.(surface.ImageDrawer)
	l := p.layout
	for i, img := range p.images {
		c := l.Cell(i)
		if canDraw {
			d.DrawImage(img, c.X, c.Y, c.Width, c.Height)
		}
		switch {
		case i == p.highlighted:
			s.SetColor(p.colors.Highlight)
		case p.isSelectedLocked(i):
			s.SetColor(p.colors.Selection)
		case !canDraw:
			s.SetColor(color.Gray{0x80})
		default:
			continue
		}
		s.DrawRect(c.X-ImageMargin, c.Y-ImageMargin, c.Width+TotalMargin, c.Height+TotalMargin)
	}

	if p.enlarged && p.highlighted >= 0 {
		w, h := p.enlargedSizeLocked()
		if canDraw {
			d.DrawImage(p.images[p.highlighted], 0, 0, w, h)
		} else {
			s.SetColor(p.colors.Highlight)
			s.DrawRect(0, 0, w, h)
		}
	}
}

// enlargedSizeLocked returns the native image size, shrunk to fit the
// panel.
func (p *Panel) enlargedSizeLocked() (w, h int) {
	w, h = p.imgW, p.imgH
	if w > p.width {
		w = p.width
		h = w * p.imgH / p.imgW
	}
	if h > p.height {
		h = p.height
		w = h * p.imgW / p.imgH
	}
	return w, h
}

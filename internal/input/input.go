package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const DefaultEscapeWindow = 400 * time.Millisecond

// EscapeDetector recognises two presses inside a window as a double tap.
type EscapeDetector struct {
	window time.Duration
	last   time.Time
}

func NewEscapeDetector(window time.Duration) *EscapeDetector {
	return &EscapeDetector{window: window}
}

// Press records a press at now and reports whether it completes a double tap.
func (d *EscapeDetector) Press(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) <= d.window && !now.Before(d.last) {
		d.last = time.Time{}
		return true
	}
	d.last = now
	return false
}

type KeyAction int

const (
	KeyIgnored KeyAction = iota
	KeyQuit
)

// Keys turns key events into actions. Ctrl-C quits at once and Escape quits
// on a double tap.
type Keys struct {
	escape *EscapeDetector
}

func NewKeys(escapeWindow time.Duration) *Keys {
	return &Keys{escape: NewEscapeDetector(escapeWindow)}
}

func (k *Keys) Handle(ev *tcell.EventKey) KeyAction {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyEscape:
		if k.escape.Press(ev.When()) {
			return KeyQuit
		}
	case tcell.KeyRune:
		// Some terminals report Ctrl-C as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return KeyQuit
		}
	}
	return KeyIgnored
}

// Pointer follows the mouse between events. A click is the moment the
// primary button goes down.
type Pointer struct {
	x, y    int
	buttons tcell.ButtonMask
}

// Update records ev and reports whether it is a click.
func (p *Pointer) Update(ev *tcell.EventMouse) bool {
	p.x, p.y = ev.Position()
	buttons := ev.Buttons()
	clicked := buttons&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0
	p.buttons = buttons
	return clicked
}

// Cell is the last known terminal cell under the mouse.
func (p *Pointer) Cell() (x, y int) {
	return p.x, p.y
}

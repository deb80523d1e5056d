package terminal

import (
	"bytes"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"
)

// Terminal puts stdin in raw mode, draws on the alternate screen and
// reports resizes.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
}

// Open switches the controlling terminal into raw mode.
func Open() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Alternate screen, hidden cursor, SGR mouse reporting.
	t.out.WriteString("\x1b[?1049h\x1b[?25l\x1b[?1000h\x1b[?1006h")

	t.width, t.height, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		t.Close()
		return nil, err
	}

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)
	return t, nil
}

// IsTerminal reports whether stdin and stdout are both terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Close leaves the alternate screen and restores the saved terminal modes.
func (t *Terminal) Close() error {
	t.out.WriteString("\x1b[?1006l\x1b[?1000l\x1b[?25h\x1b[?1049l")
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
	if t.oldState != nil {
		return term.Restore(int(t.in.Fd()), t.oldState)
	}
	return nil
}

// Size returns the current width and height in cells.
func (t *Terminal) Size() (int, int) {
	return t.width, t.height
}

// Resize re-queries the dimensions. Returns true if they changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width, t.height = w, h
	return changed
}

// Resized delivers a value on every SIGWINCH.
func (t *Terminal) Resized() <-chan os.Signal {
	return t.sigwinch
}

// Write draws a frame.
func (t *Terminal) Write(frame string) error {
	_, err := t.out.WriteString(frame)
	return err
}

// ReadEvent blocks for the next key or mouse event.
func (t *Terminal) ReadEvent() (Event, error) {
	buf := make([]byte, 32)
	n, err := t.in.Read(buf)
	if err != nil {
		return Event{}, err
	}
	return ParseEvent(buf[:n]), nil
}

// KeyType identifies a decoded key.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyPgUp
	KeyPgDn
	KeyCtrlC
	KeyCtrlL
	KeyCtrlR
	KeyCtrlW
	KeyCtrlY
	KeyCtrlZ
	KeyUnknown
)

// Key is a decoded keypress. Rune is set for KeyRune only.
type Key struct {
	Type KeyType
	Rune rune
}

// MouseButton identifies the button in a mouse event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseUnknown
)

// Mouse is an SGR mouse report. Row and Col are 1-based.
type Mouse struct {
	Button MouseButton
	Row    int
	Col    int
	Press  bool
}

// Event is either a key or a mouse report.
type Event struct {
	IsMouse bool
	Key     Key
	Mouse   Mouse
}

// ParseEvent decodes one read from a raw-mode terminal.
func ParseEvent(buf []byte) Event {
	if m, ok := parseMouse(buf); ok {
		return Event{IsMouse: true, Mouse: m}
	}
	return Event{Key: parseKey(buf)}
}

var controlKeys = map[byte]KeyType{
	3:   KeyCtrlC,
	8:   KeyBackspace,
	9:   KeyTab,
	10:  KeyEnter,
	12:  KeyCtrlL,
	13:  KeyEnter,
	18:  KeyCtrlR,
	23:  KeyCtrlW,
	25:  KeyCtrlY,
	26:  KeyCtrlZ,
	27:  KeyEscape,
	127: KeyBackspace,
}

var csiKeys = map[string]KeyType{
	"A":  KeyUp,
	"B":  KeyDown,
	"C":  KeyRight,
	"D":  KeyLeft,
	"H":  KeyHome,
	"F":  KeyEnd,
	"1~": KeyHome,
	"3~": KeyDelete,
	"4~": KeyEnd,
	"5~": KeyPgUp,
	"6~": KeyPgDn,
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(buf) == 1 {
		b := buf[0]
		if kt, ok := controlKeys[b]; ok {
			return Key{Type: kt}
		}
		if b >= 32 && b < 127 {
			return Key{Type: KeyRune, Rune: rune(b)}
		}
		return Key{Type: KeyUnknown}
	}
	if buf[0] == 27 {
		if len(buf) >= 3 && buf[1] == '[' {
			if kt, ok := csiKeys[string(buf[2:])]; ok {
				return Key{Type: kt}
			}
		}
		return Key{Type: KeyUnknown}
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError || r < 32 {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseMouse decodes ESC [ < button ; col ; row (M|m).
func parseMouse(buf []byte) (Mouse, bool) {
	if len(buf) < 9 || !bytes.HasPrefix(buf, []byte("\x1b[<")) {
		return Mouse{}, false
	}
	last := buf[len(buf)-1]
	if last != 'M' && last != 'm' {
		return Mouse{}, false
	}
	fields := bytes.Split(buf[3:len(buf)-1], []byte(";"))
	if len(fields) != 3 {
		return Mouse{}, false
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return Mouse{}, false
		}
		nums[i] = n
	}

	m := Mouse{Col: nums[1], Row: nums[2], Press: last == 'M'}
	switch code := nums[0]; {
	case code == 64:
		m.Button = MouseWheelUp
	case code == 65:
		m.Button = MouseWheelDown
	case code&0x03 == 0:
		m.Button = MouseLeft
	case code&0x03 == 1:
		m.Button = MouseMiddle
	case code&0x03 == 2:
		m.Button = MouseRight
	default:
		m.Button = MouseUnknown
	}
	return m, true
}

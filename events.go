package lattice

// Key identifies the special keys the scroll container responds to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
)

// KeyEvent is one keyboard input delivered by the host.
type KeyEvent struct {
	Key  Key
	Rune rune // Printable character when Key is KeyNone
}

// MouseButton identifies which button (or wheel direction) a mouse event
// carries.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseWheelUp
	MouseWheelDown
)

// MouseAction distinguishes presses, releases, and drag motion.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is one pointer input delivered by the host, in absolute
// buffer coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's available space
	UnitVW                  // Percentage of the viewport width
	UnitVH                  // Percentage of the viewport height
)

// Value represents a dimension that can be fixed, percentage,
// viewport-relative, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// ViewportWidth returns a Value representing a percentage of the viewport
// width (the root grid width), independent of the parent's size.
func ViewportWidth(p float64) Value {
	return Value{Amount: p, Unit: UnitVW}
}

// ViewportHeight returns a Value representing a percentage of the viewport
// height (the root grid height), independent of the parent's size.
func ViewportHeight(p float64) Value {
	return Value{Amount: p, Unit: UnitVH}
}

// Resolve computes the actual integer value given available space.
// Viewport-relative units resolve against the viewport dimensions.
// For UnitAuto, returns the fallback value. An unbounded available space
// resolves percentages to the fallback as well, since there is nothing to
// take a percentage of.
func (v Value) Resolve(available int, viewport Size, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		if available == Unbounded {
			return fallback
		}
		return int(float64(available) * v.Amount / 100.0)
	case UnitVW:
		return int(float64(viewport.Width) * v.Amount / 100.0)
	case UnitVH:
		return int(float64(viewport.Height) * v.Amount / 100.0)
	case UnitAuto:
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

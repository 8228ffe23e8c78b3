package posmap

import "github.com/katalvlaran/thetanav/pos"

// Map is a dense array of T indexed by pos.PlannerPos, initialised to a
// sentinel value the domain never legitimately holds.
type Map[T comparable] struct {
	width, height uint64
	data          []T
	sentinel      T
}

// New allocates a Map sized to width x height, every cell set to sentinel.
func New[T comparable](width, height uint64, sentinel T) *Map[T] {
	m := &Map[T]{width: width, height: height, sentinel: sentinel}
	m.data = make([]T, width*height)
	m.Clear()
	return m
}

func (m *Map[T]) index(p pos.PlannerPos) (int, bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, false
	}
	x, y := uint64(p.X), uint64(p.Y)
	if x >= m.width || y >= m.height {
		return 0, false
	}
	return int(y*m.width + x), true
}

// Get returns the value at p and whether p was in bounds. Out-of-bounds
// reads return the zero value and ok=false rather than panicking.
func (m *Map[T]) Get(p pos.PlannerPos) (value T, ok bool) {
	i, ok := m.index(p)
	if !ok {
		return value, false
	}
	return m.data[i], true
}

// GetIfSet returns the value at p only if it differs from the sentinel
// (i.e. has been explicitly Set since the last Clear).
func (m *Map[T]) GetIfSet(p pos.PlannerPos) (value T, ok bool) {
	v, inBounds := m.Get(p)
	if !inBounds || v == m.sentinel {
		return value, false
	}
	return v, true
}

// GetOr returns the value at p, or def if p is out of bounds.
func (m *Map[T]) GetOr(p pos.PlannerPos, def T) T {
	v, ok := m.Get(p)
	if !ok {
		return def
	}
	return v
}

// GetUnchecked returns the value at p without a bounds check. The caller
// must guarantee p is in bounds; an out-of-bounds p either panics via an
// index out-of-range on the backing slice or, when X alone exceeds the
// width, silently reads a cell of a later row.
func (m *Map[T]) GetUnchecked(p pos.PlannerPos) T {
	x, y := uint64(p.X), uint64(p.Y)
	return m.data[y*m.width+x]
}

// Set stores value at p. Set on an out-of-bounds p is a no-op.
func (m *Map[T]) Set(p pos.PlannerPos, value T) {
	i, ok := m.index(p)
	if !ok {
		return
	}
	m.data[i] = value
}

// IsSet reports whether p is in bounds and holds a value other than the
// sentinel.
func (m *Map[T]) IsSet(p pos.PlannerPos) bool {
	v, ok := m.Get(p)
	return ok && v != m.sentinel
}

// Clear refills every cell with the sentinel in one linear pass.
func (m *Map[T]) Clear() {
	for i := range m.data {
		m.data[i] = m.sentinel
	}
}

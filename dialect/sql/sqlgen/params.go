package sqlgen

import "strconv"

// Binder is the bind-parameter sink: an ordered, append-only collection
// of values built incrementally during generation. A Binder is created
// fresh per statement-generation call and handed back to the caller
// through Statement.Args; it must never be reused across calls, since
// slot numbering is statement-scoped.
type Binder struct {
	style PlaceholderStyle
	args  []any
}

// NewBinder returns an empty Binder using the given placeholder style.
func NewBinder(style PlaceholderStyle) *Binder {
	return &Binder{style: style}
}

// Add appends v to the sink and returns the placeholder token for its
// slot.
func (b *Binder) Add(v any) string {
	b.args = append(b.args, v)
	if b.style == Dollar {
		return "$" + strconv.Itoa(len(b.args))
	}
	return "?"
}

// Args returns the accumulated values in slot order.
func (b *Binder) Args() []any {
	return b.args
}

// Len returns the number of bound values.
func (b *Binder) Len() int {
	return len(b.args)
}

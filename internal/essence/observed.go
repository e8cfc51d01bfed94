package essence

import (
	"slices"
	"time"
)

// Observed is a byte buffer captured at a point in time. Its content is
// never shared: constructors and accessors copy, and Release wipes it.
type Observed struct {
	data []byte
	at   time.Time
}

// NewObserved copies data into a new Observed recorded at at.
func NewObserved(data []byte, at time.Time) *Observed {
	return &Observed{data: slices.Clone(data), at: at}
}

// HasData reports whether o holds at least one byte. A nil Observed has none.
func (o *Observed) HasData() bool {
	return o != nil && len(o.data) > 0
}

// Bytes returns a copy of the content.
func (o *Observed) Bytes() []byte {
	if o == nil {
		return nil
	}
	return slices.Clone(o.data)
}

// Len returns the content length.
func (o *Observed) Len() int {
	if o == nil {
		return 0
	}
	return len(o.data)
}

// ObservedAt returns the instant the content was recorded.
func (o *Observed) ObservedAt() time.Time {
	if o == nil {
		return time.Time{}
	}
	return o.at
}

// Clone returns an independent copy of o with the same timestamp.
func (o *Observed) Clone() *Observed {
	if o == nil {
		return nil
	}
	return NewObserved(o.data, o.at)
}

// Equal reports whether both hold identical bytes.
func (o *Observed) Equal(other *Observed) bool {
	return slices.Equal(o.raw(), other.raw())
}

// Release overwrites the content with zeros and truncates it. Safe to call
// more than once and on nil.
func (o *Observed) Release() {
	if o == nil {
		return
	}
	clear(o.data)
	o.data = o.data[:0]
}

func (o *Observed) raw() []byte {
	if o == nil {
		return nil
	}
	return o.data
}

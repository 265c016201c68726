// Package collect: Listing, the ordered duplicate-tolerant sequence.
package collect

import "slices"

// Listing is an ordered sequence that tolerates duplicates and
// supports set-flavored trimming (Subset, Deduplicate) on top of the
// usual list mutations.
type Listing[E comparable] struct {
	contents []E
}

// NewListing returns a Listing seeded with items in the given order.
func NewListing[E comparable](items ...E) *Listing[E] {
	return &Listing[E]{contents: slices.Clone(items)}
}

// Len returns the element count.
func (l *Listing[E]) Len() int { return len(l.contents) }

// At indexes like a slice; out-of-range indexes panic.
func (l *Listing[E]) At(i int) E { return l.contents[i] }

// Add appends one item.
func (l *Listing[E]) Add(item E) { l.contents = append(l.contents, item) }

// Append appends items in the given order.
func (l *Listing[E]) Append(items ...E) {
	l.contents = append(l.contents, items...)
}

// Prepend pushes item to the front.
func (l *Listing[E]) Prepend(item E) {
	l.contents = slices.Insert(l.contents, 0, item)
}

// Insert places item at position i; i clamps to the valid range.
func (l *Listing[E]) Insert(i int, item E) {
	if i < 0 {
		i = 0
	}
	if i > len(l.contents) {
		i = len(l.contents)
	}
	l.contents = slices.Insert(l.contents, i, item)
}

// Remove deletes the first occurrence of item and reports whether one
// was present.
func (l *Listing[E]) Remove(item E) bool {
	i := slices.Index(l.contents, item)
	if i < 0 {
		return false
	}
	l.contents = slices.Delete(l.contents, i, i+1)

	return true
}

// Contains reports whether item occurs at least once.
func (l *Listing[E]) Contains(item E) bool {
	return slices.Contains(l.contents, item)
}

// Subset returns a new Listing keeping, in the receiver's order, the
// items that occur in include (nil include keeps everything) and not
// in exclude.
func (l *Listing[E]) Subset(include []E, exclude ...E) *Listing[E] {
	out := &Listing[E]{}
	for _, item := range l.contents {
		if include != nil && !slices.Contains(include, item) {
			continue
		}
		if slices.Contains(exclude, item) {
			continue
		}
		out.contents = append(out.contents, item)
	}

	return out
}

// Deduplicate drops repeated items, keeping first occurrences in
// place.
func (l *Listing[E]) Deduplicate() {
	seen := make(map[E]struct{}, len(l.contents))
	kept := l.contents[:0]
	for _, item := range l.contents {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		kept = append(kept, item)
	}
	l.contents = kept
}

// Items returns a copy of the sequence.
func (l *Listing[E]) Items() []E { return slices.Clone(l.contents) }

// Clear empties the sequence.
func (l *Listing[E]) Clear() { l.contents = nil }

// Clone returns an independent copy.
func (l *Listing[E]) Clone() *Listing[E] {
	return &Listing[E]{contents: slices.Clone(l.contents)}
}

package typesystem

// IDAllocator is a monotonic source of fresh type-variable identifiers,
// scoped to a single compilation unit. It resets naturally whenever a
// new Engine is created (see spec §5 — the counter is process-local to
// one compilation).
type IDAllocator struct {
	next int
}

// Fresh returns the next identifier and advances the counter.
func (a *IDAllocator) Fresh() int {
	id := a.next
	a.next++
	return id
}

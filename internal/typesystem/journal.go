package typesystem

// linkedEntry records a Link whose kind transitioned Unbound -> Linked;
// the target is stored implicitly in the Link itself at transition
// time, so undo only needs to know which Link to reset.
type linkedEntry struct {
	link *Link
}

// leveledEntry records a Link whose level was lowered during an
// occurs-check traversal, along with the level it had before.
type leveledEntry struct {
	link     *Link
	oldLevel int
}

// Journal is a per-attempt mutation log enabling exact undo of a
// speculative Unify call. Journals are not composable across threads
// and are owned by a single attempt (spec §4.3).
type Journal struct {
	linked  []linkedEntry
	leveled []leveledEntry
	undone  bool
}

// NewJournal starts a new, empty unification attempt log.
func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) recordLink(l *Link) {
	j.linked = append(j.linked, linkedEntry{link: l})
}

func (j *Journal) recordLevel(l *Link, oldLevel int) {
	j.leveled = append(j.leveled, leveledEntry{link: l, oldLevel: oldLevel})
}

// Undo reverts every mutation recorded by this journal, in reverse
// order: resetting kind to Unbound and clearing target for linked
// entries, and restoring the old level for leveled entries. The
// post-condition is that the type graph is bit-identical to its
// pre-unification state (spec §4.3, P1). Undoing an already-undone
// journal is an invariant violation, not a recoverable outcome (spec
// §7, §8).
func (j *Journal) Undo() {
	if j.undone {
		panic(&InvariantViolation{Reason: "journal undone twice"})
	}
	for i := len(j.leveled) - 1; i >= 0; i-- {
		e := j.leveled[i]
		e.link.Level = e.oldLevel
	}
	for i := len(j.linked) - 1; i >= 0; i-- {
		e := j.linked[i]
		e.link.kind = linkUnbound
		e.link.target = nil
	}
	j.undone = true
}

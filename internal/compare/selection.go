package compare

import (
	domainplayers "nfl-stats-dashboard/internal/domain/players"
)

// MaxSelected bounds how many players the comparison view holds at once.
const MaxSelected = 5

// Selection is the comparison view's state: an ordered set of at most
// MaxSelected player names, an optional reference player, and a cache of the
// last-seen record per selected name. Values are immutable; every transition
// returns a new Selection, so the UI layer can own the current value and
// tests need no harness.
type Selection struct {
	selected  []string
	reference string
	records   map[string]domainplayers.StatLine
}

// NewSelection returns the empty selection.
func NewSelection() Selection {
	return Selection{}
}

// Toggle adds the record's player if absent and removes it if present.
// Adding past capacity is a silent no-op. The first player added to an empty
// selection becomes the reference automatically. Removing the reference
// clears it.
func (s Selection) Toggle(rec domainplayers.StatLine) Selection {
	name := rec.DisplayName
	if s.Contains(name) {
		return s.Remove(name)
	}
	if len(s.selected) >= MaxSelected {
		return s
	}

	next := s.clone()
	next.selected = append(next.selected, name)
	next.records[name] = rec
	if next.reference == "" && len(s.selected) == 0 {
		next.reference = name
	}
	return next
}

// SetReference makes the record's player the reference, adding it to the
// selection first when absent. When the selection is already full and the
// player is not a member, the call is ignored: capacity wins, and the
// reference must always be a member.
func (s Selection) SetReference(rec domainplayers.StatLine) Selection {
	name := rec.DisplayName
	if !s.Contains(name) {
		if len(s.selected) >= MaxSelected {
			return s
		}
		next := s.clone()
		next.selected = append(next.selected, name)
		next.records[name] = rec
		next.reference = name
		return next
	}

	next := s.clone()
	next.records[name] = rec
	next.reference = name
	return next
}

// Remove drops a player from the selection, clearing the reference if it
// pointed at them. Removing an unselected name is a no-op.
func (s Selection) Remove(name string) Selection {
	if !s.Contains(name) {
		return s
	}

	next := s.clone()
	kept := next.selected[:0]
	for _, n := range next.selected {
		if n != name {
			kept = append(kept, n)
		}
	}
	next.selected = kept
	delete(next.records, name)
	if next.reference == name {
		next.reference = ""
	}
	return next
}

// Names returns the selected names in insertion order.
func (s Selection) Names() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Len returns how many players are selected.
func (s Selection) Len() int {
	return len(s.selected)
}

// Empty reports whether nothing is selected and no reference is set.
func (s Selection) Empty() bool {
	return len(s.selected) == 0 && s.reference == ""
}

// Contains reports whether the name is currently selected.
func (s Selection) Contains(name string) bool {
	for _, n := range s.selected {
		if n == name {
			return true
		}
	}
	return false
}

// ReferenceName returns the reference player's name, or "" when unset.
func (s Selection) ReferenceName() string {
	return s.reference
}

// Reference returns the reference player's cached record.
func (s Selection) Reference() (domainplayers.StatLine, bool) {
	if s.reference == "" {
		return domainplayers.StatLine{}, false
	}
	return s.Record(s.reference)
}

// Record returns the last-seen record cached for a selected name.
func (s Selection) Record(name string) (domainplayers.StatLine, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

func (s Selection) clone() Selection {
	next := Selection{
		selected:  make([]string, len(s.selected)),
		reference: s.reference,
		records:   make(map[string]domainplayers.StatLine, len(s.records)),
	}
	copy(next.selected, s.selected)
	for k, v := range s.records {
		next.records[k] = v
	}
	return next
}

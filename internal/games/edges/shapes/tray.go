package shapes

import (
	"fmt"
	"math/rand"
)

// WeightFunc returns the spawn weight of an entry. Values below 1 count as 1.
type WeightFunc func(e Entry) int

// Slot is one tray position.
type Slot struct {
	Entry Entry
	Used  bool
}

// Tray holds the shapes currently offered to the player. It is refilled only
// once every slot has been used.
type Tray struct {
	catalog *Catalog
	slots   []Slot
	rng     *rand.Rand
	weight  WeightFunc
	deals   int
}

// NewTray creates a tray with n slots and deals the first hand.
func NewTray(cat *Catalog, n int, seed int64) *Tray {
	if n < 1 {
		n = 1
	}
	t := &Tray{
		catalog: cat,
		slots:   make([]Slot, n),
		rng:     rand.New(rand.NewSource(seed)),
	}
	t.Deal()
	return t
}

// SetWeightFunc overrides the catalog weights for future deals.
func (t *Tray) SetWeightFunc(f WeightFunc) {
	t.weight = f
}

// Deal replaces every slot with a fresh random shape.
func (t *Tray) Deal() {
	for i := range t.slots {
		t.slots[i] = Slot{Entry: t.pick()}
	}
	t.deals++
}

func (t *Tray) pick() Entry {
	entries := t.catalog.entries
	weights := make([]int, len(entries))
	total := 0
	for i, e := range entries {
		w := e.Weight
		if t.weight != nil {
			w = t.weight(e)
		}
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	r := t.rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return entries[i]
		}
		r -= w
	}
	return entries[len(entries)-1]
}

// Len returns the number of slots.
func (t *Tray) Len() int {
	return len(t.slots)
}

// Slots returns a copy of the slots.
func (t *Tray) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Deals returns how many hands have been dealt.
func (t *Tray) Deals() int {
	return t.deals
}

// Get returns the entry in slot i if it is still available.
func (t *Tray) Get(i int) (Entry, bool) {
	if i < 0 || i >= len(t.slots) || t.slots[i].Used {
		return Entry{}, false
	}
	return t.slots[i].Entry, true
}

// Use marks slot i as used. When that empties the tray a new hand is dealt
// and refilled is true.
func (t *Tray) Use(i int) (refilled bool, err error) {
	if i < 0 || i >= len(t.slots) {
		return false, fmt.Errorf("shapes: slot %d out of range", i)
	}
	if t.slots[i].Used {
		return false, fmt.Errorf("shapes: slot %d already used", i)
	}
	t.slots[i].Used = true
	if t.Remaining() == 0 {
		t.Deal()
		return true, nil
	}
	return false, nil
}

// Remaining returns how many slots are still available.
func (t *Tray) Remaining() int {
	n := 0
	for _, s := range t.slots {
		if !s.Used {
			n++
		}
	}
	return n
}

// Available returns the indices of unused slots, in order.
func (t *Tray) Available() []int {
	var idx []int
	for i, s := range t.slots {
		if !s.Used {
			idx = append(idx, i)
		}
	}
	return idx
}

// NextAvailable returns the first unused slot after i, wrapping around.
// Returns -1 when the tray is empty.
func (t *Tray) NextAvailable(i, step int) int {
	n := len(t.slots)
	if step == 0 {
		step = 1
	}
	for k := 1; k <= n; k++ {
		j := ((i+step*k)%n + n) % n
		if !t.slots[j].Used {
			return j
		}
	}
	return -1
}

// Snapshot returns slot names and used flags for saving.
func (t *Tray) Snapshot() (names []string, used []bool) {
	names = make([]string, len(t.slots))
	used = make([]bool, len(t.slots))
	for i, s := range t.slots {
		names[i] = s.Entry.Name
		used[i] = s.Used
	}
	return names, used
}

// Restore replaces the slots from a snapshot. Names must exist in the catalog.
func (t *Tray) Restore(names []string, used []bool) error {
	if len(names) != len(used) || len(names) == 0 {
		return fmt.Errorf("shapes: snapshot has %d names and %d flags", len(names), len(used))
	}
	slots := make([]Slot, len(names))
	for i, name := range names {
		e, ok := t.catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("shapes: unknown shape %q", name)
		}
		slots[i] = Slot{Entry: e, Used: used[i]}
	}
	t.slots = slots
	if t.Remaining() == 0 {
		t.Deal()
	}
	return nil
}

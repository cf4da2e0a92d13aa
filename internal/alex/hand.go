package alex

// HandEntry is one reserve slot.
type HandEntry struct {
	Kind  PieceType
	Count int
}

// Hand is a side's reserve. Entries keep insertion order so the UI can index them
// stably; an entry whose count drops to zero is removed.
type Hand []HandEntry

func (h Hand) Count(pt PieceType) int {
	for _, e := range h {
		if e.Kind == pt {
			return e.Count
		}
	}
	return 0
}

func (h Hand) Total() int {
	n := 0
	for _, e := range h {
		n += e.Count
	}
	return n
}

// Add returns h with n more pieces of kind pt. Kinds that cannot be held are ignored.
func (h Hand) Add(pt PieceType, n int) Hand {
	if n <= 0 || !pt.InReserve() {
		return h
	}
	for i := range h {
		if h[i].Kind == pt {
			h[i].Count += n
			return h
		}
	}
	return append(h, HandEntry{Kind: pt, Count: n})
}

// Remove takes one piece of kind pt out of the reserve.
func (h Hand) Remove(pt PieceType) (Hand, bool) {
	for i := range h {
		if h[i].Kind != pt {
			continue
		}
		h[i].Count--
		if h[i].Count <= 0 {
			h = append(h[:i:i], h[i+1:]...)
		}
		return h, true
	}
	return h, false
}

func (h Hand) Clone() Hand {
	if len(h) == 0 {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) Equal(o Hand) bool {
	if len(h) != len(o) {
		return false
	}
	for i := range h {
		if h[i] != o[i] {
			return false
		}
	}
	return true
}

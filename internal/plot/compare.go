package plot

import "encoding/json"

// MaxCompare bounds the side-by-side comparison view.
const MaxCompare = 4

// CompareSet is an ordered set of up to four listing ids, no duplicates.
// The zero value is an empty, usable set.
type CompareSet struct {
	ids []string
}

// NewCompareSet builds a set from stored ids, dropping duplicates and
// anything past the cap.
func NewCompareSet(ids ...string) *CompareSet {
	s := &CompareSet{}
	for _, id := range ids {
		if !s.Add(id) {
			break
		}
	}
	return s
}

// CompareSetFromJSON rehydrates a persisted set. Corrupt or missing data
// yields an empty set rather than an error.
func CompareSetFromJSON(data []byte) *CompareSet {
	if len(data) == 0 {
		return &CompareSet{}
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return &CompareSet{}
	}
	return NewCompareSet(ids...)
}

// Add appends the id. A duplicate add is a no-op that still reports true;
// adding to a full set leaves it unchanged and reports false.
func (s *CompareSet) Add(id string) bool {
	if s.Contains(id) {
		return true
	}
	if len(s.ids) >= MaxCompare {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops the id, preserving relative order of the rest. No-op if absent.
func (s *CompareSet) Remove(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Clear empties the set unconditionally.
func (s *CompareSet) Clear() {
	s.ids = s.ids[:0]
}

// Contains reports membership.
func (s *CompareSet) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len reports the current size, always within [0, MaxCompare].
func (s *CompareSet) Len() int { return len(s.ids) }

// IDs returns the members in insertion order.
func (s *CompareSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// JSON serializes the ordered set for durable storage.
func (s *CompareSet) JSON() []byte {
	if s.ids == nil {
		return []byte("[]")
	}
	data, err := json.Marshal(s.ids)
	if err != nil {
		return []byte("[]")
	}
	return data
}

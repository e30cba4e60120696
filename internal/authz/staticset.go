package authz

// StaticSet is the immutable in-process allow-set, built once at startup and read-only
// thereafter. It keeps the small fixed population of trusted accounts off the network
// path entirely.
type StaticSet struct {
	subjects map[string]struct{}
}

// NewStaticSet builds a StaticSet from subject IDs. Empty IDs are ignored.
func NewStaticSet(subjectIDs ...string) *StaticSet {
	subjects := make(map[string]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		if id != "" {
			subjects[id] = struct{}{}
		}
	}
	return &StaticSet{subjects: subjects}
}

// Contains reports membership. O(1), no I/O.
func (s *StaticSet) Contains(subjectID string) bool {
	_, ok := s.subjects[subjectID]
	return ok
}

// Len returns the number of subjects in the set.
func (s *StaticSet) Len() int {
	return len(s.subjects)
}

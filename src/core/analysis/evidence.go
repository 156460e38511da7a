package analysis

// EvidenceSet is an insertion-order-preserving set of retrieved contexts
// keyed by patent ID. Adding a context whose patent ID is already present
// replaces the stored entry entirely but keeps its original position.
type EvidenceSet struct {
	order []string
	items map[string]RetrievedContext
}

func NewEvidenceSet() *EvidenceSet {
	return &EvidenceSet{
		items: make(map[string]RetrievedContext),
	}
}

// Add inserts or overwrites the entry for ctx's patent ID
func (s *EvidenceSet) Add(ctx RetrievedContext) {
	if _, exists := s.items[ctx.PatentID]; !exists {
		s.order = append(s.order, ctx.PatentID)
	}
	s.items[ctx.PatentID] = ctx
}

// Values returns the contexts in the order their keys were first added
func (s *EvidenceSet) Values() []RetrievedContext {
	values := make([]RetrievedContext, 0, len(s.order))
	for _, id := range s.order {
		values = append(values, s.items[id])
	}
	return values
}

func (s *EvidenceSet) Len() int {
	return len(s.order)
}

package registry

// Selection tracks which of an offered set of module keys are currently
// chosen. The role editor and the tenant forms share this one
// implementation, so select-all/deselect-all cannot drift between screens.
//
// Membership is a true set internally; it serializes to an ordered slice
// only at the API boundary.
type Selection struct {
	offered  []string
	selected map[string]struct{}
}

// NewSelection builds a selection over the offered keys. When restriction is
// non-empty, only registry modules the restriction names are offered;
// otherwise every registry module is.
func NewSelection(restriction []string) *Selection {
	offered := Keys()
	if len(restriction) > 0 {
		allowed := make(map[string]struct{}, len(restriction))
		for _, k := range restriction {
			allowed[k] = struct{}{}
		}
		filtered := offered[:0:0]
		for _, k := range offered {
			if _, ok := allowed[k]; ok {
				filtered = append(filtered, k)
			}
		}
		offered = filtered
	}

	return &Selection{
		offered:  offered,
		selected: make(map[string]struct{}),
	}
}

// Offered returns the keys this selection may draw from, in registry order.
func (s *Selection) Offered() []string {
	out := make([]string, len(s.offered))
	copy(out, s.offered)
	return out
}

// Toggle flips membership of key: add if absent, remove if present. Keys
// outside the offered set are ignored.
func (s *Selection) Toggle(key string) {
	if !s.offers(key) {
		return
	}
	if _, ok := s.selected[key]; ok {
		delete(s.selected, key)
	} else {
		s.selected[key] = struct{}{}
	}
}

// SelectAll selects every offered key.
func (s *Selection) SelectAll() {
	for _, k := range s.offered {
		s.selected[k] = struct{}{}
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	s.selected = make(map[string]struct{})
}

// Set replaces the selection with the given keys, dropping any that are not
// offered.
func (s *Selection) Set(keys []string) {
	s.selected = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if s.offers(k) {
			s.selected[k] = struct{}{}
		}
	}
}

// Has reports membership.
func (s *Selection) Has(key string) bool {
	_, ok := s.selected[key]
	return ok
}

// Selected returns the chosen keys in offered (registry) order.
func (s *Selection) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for _, k := range s.offered {
		if _, ok := s.selected[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

func (s *Selection) offers(key string) bool {
	for _, k := range s.offered {
		if k == key {
			return true
		}
	}
	return false
}

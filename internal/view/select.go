package view

import "strings"

// Option is one selectable entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Select models the shared dropdown control. The committed value and the
// in-progress search text are independent: closing the control resets the
// search, never the value.
type Select struct {
	Options     []Option
	Placeholder string
	Searchable  bool

	value    string
	hasValue bool
	open     bool
	search   string
}

func NewSelect(options []Option, placeholder string, searchable bool) *Select {
	return &Select{Options: options, Placeholder: placeholder, Searchable: searchable}
}

func (s *Select) Open() {
	s.open = true
}

// Close drops any in-progress search text without touching the committed
// value.
func (s *Select) Close() {
	s.open = false
	s.search = ""
}

func (s *Select) IsOpen() bool { return s.open }

// TypeSearch records search input. Ignored unless the control is searchable
// and open.
func (s *Select) TypeSearch(text string) {
	if !s.Searchable || !s.open {
		return
	}
	s.search = text
}

// Visible returns the options currently offered: all of them, or the
// case-insensitive substring match over labels while searching.
func (s *Select) Visible() []Option {
	if !s.Searchable || s.search == "" {
		return s.Options
	}

	needle := strings.ToLower(s.search)
	filtered := make([]Option, 0, len(s.Options))
	for _, opt := range s.Options {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// Commit selects an option by value.
func (s *Select) Commit(value string) {
	s.value = value
	s.hasValue = true
}

func (s *Select) Value() (string, bool) {
	return s.value, s.hasValue
}

// Display returns the committed option's label, or the placeholder.
func (s *Select) Display() string {
	if s.hasValue {
		for _, opt := range s.Options {
			if opt.Value == s.value {
				return opt.Label
			}
		}
	}
	return s.Placeholder
}

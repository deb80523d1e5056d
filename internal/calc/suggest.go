package calc

import "github.com/sajari/fuzzy"

// Suggester proposes the closest known identifier for a misspelt name.
type Suggester struct {
	model *fuzzy.Model
	known map[string]bool
}

// NewSuggester trains a fuzzy model on the given identifiers.
func NewSuggester(names []string) *Suggester {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	known := make(map[string]bool, len(names))
	for _, n := range names {
		// Twice, so each name's count clears the model threshold.
		model.TrainWord(n)
		model.TrainWord(n)
		known[n] = true
	}
	return &Suggester{model: model, known: known}
}

// Suggest returns a correction for name, or "" when name is already known
// or nothing is close enough.
func (s *Suggester) Suggest(name string) string {
	if name == "" || s.known[name] {
		return ""
	}
	c := s.model.SpellCheck(name)
	if c == name {
		return ""
	}
	return c
}

package component

// Score counts points for the current level. Collected coins are tracked by
// their index in Level.Coins so the level itself stays untouched.
type Score struct {
	Value     int
	collected map[int]struct{}
}

var ScoreComponent = NewComponent[Score]()

// Collect credits coin i once and reports whether it was new.
func (s *Score) Collect(i, value int) bool {
	if s.collected == nil {
		s.collected = make(map[int]struct{})
	}
	if _, ok := s.collected[i]; ok {
		return false
	}
	s.collected[i] = struct{}{}
	s.Value += value
	return true
}

func (s *Score) Collected(i int) bool {
	_, ok := s.collected[i]
	return ok
}

func (s *Score) Reset() {
	s.Value = 0
	s.collected = nil
}

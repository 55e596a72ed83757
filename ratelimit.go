package uthread

// allowCreate consults the optional rate limiter for pr, returning false
// when a configured per-priority creation budget has been exceeded. A nil
// limiter always allows.
func (s *Scheduler) allowCreate(pr Priority) bool {
	if s.limiter == nil {
		return true
	}
	_, ok := s.limiter.Allow(pr)
	return ok
}

package service

import "time"

// SetClock replaces the clock used to stamp product creation times.
func (s *ProductService) SetClock(now func() time.Time) {
	s.now = now
}

package metrics

// Series keeps the most recent samples of a scalar, oldest first. The
// frontends use it for their FPS and speed graphs.
type Series struct {
	buf  []float64
	head int
	full bool
}

func NewSeries(capacity int) *Series {
	if capacity < 1 {
		capacity = 1
	}
	return &Series{buf: make([]float64, capacity)}
}

func (s *Series) Push(v float64) {
	s.buf[s.head] = v
	s.head = (s.head + 1) % len(s.buf)
	if s.head == 0 {
		s.full = true
	}
}

func (s *Series) Len() int {
	if s.full {
		return len(s.buf)
	}
	return s.head
}

// Values copies the samples out in order.
func (s *Series) Values() []float64 {
	if !s.full {
		return append([]float64(nil), s.buf[:s.head]...)
	}
	out := make([]float64, 0, len(s.buf))
	out = append(out, s.buf[s.head:]...)
	return append(out, s.buf[:s.head]...)
}

// Last returns the newest sample, or 0 when empty.
func (s *Series) Last() float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.buf[(s.head-1+len(s.buf))%len(s.buf)]
}

// Bounds returns the min and max sample, widened to a unit span when flat so
// callers can normalise without dividing by zero.
func (s *Series) Bounds() (lo, hi float64) {
	v := s.Values()
	if len(v) == 0 {
		return 0, 1
	}
	lo, hi = v[0], v[0]
	for _, x := range v {
		lo, hi = min(lo, x), max(hi, x)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

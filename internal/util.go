package internal

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Work list of pending pieces during decomposition.
type SubPolygonStack []*SubPolygon

func (s *SubPolygonStack) Push(p *SubPolygon) {
	*s = append(*s, p)
}

func (s *SubPolygonStack) Pop() *SubPolygon {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *SubPolygonStack) Empty() bool {
	return len(*s) == 0
}

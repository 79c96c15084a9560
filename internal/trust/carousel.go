package trust

// Carousel tracks the visible slide. Every index wraps modulo Len, so
// negative values and overshoots are valid input.
type Carousel struct {
	Index int
	Len   int
}

// NewCarousel positions a carousel of n slides at index i.
func NewCarousel(i, n int) Carousel {
	return Carousel{Len: n}.At(i)
}

// At returns the carousel positioned at i.
func (c Carousel) At(i int) Carousel {
	if c.Len <= 0 {
		return Carousel{}
	}
	i %= c.Len
	if i < 0 {
		i += c.Len
	}
	c.Index = i
	return c
}

// Next advances one slide.
func (c Carousel) Next() Carousel { return c.At(c.Index + 1) }

// Prev moves back one slide.
func (c Carousel) Prev() Carousel { return c.At(c.Index - 1) }

// Dots returns one entry per slide for the indicator row.
func (c Carousel) Dots() []Dot {
	dots := make([]Dot, c.Len)
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == c.Index}
	}
	return dots
}

// Dot is one indicator in the carousel.
type Dot struct {
	Index  int
	Active bool
}

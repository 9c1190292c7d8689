package generic

//Ints represents a growable primitive int list
type Ints struct {
	items []int
}

//Append adds values to the list
func (s *Ints) Append(values ...int) {
	s.items = append(s.items, values...)
}

//At returns value at supplied index
func (s *Ints) At(index int) int {
	return s.items[index]
}

//Last returns the last value or zero on empty list
func (s *Ints) Last() int {
	if len(s.items) == 0 {
		return 0
	}
	return s.items[len(s.items)-1]
}

//Sum returns sum of all values
func (s *Ints) Sum() int {
	result := 0
	for _, item := range s.items {
		result += item
	}
	return result
}

//Size returns list size
func (s *Ints) Size() int {
	return len(s.items)
}

//Items returns underlying values
func (s *Ints) Items() []int {
	return s.items
}

package ternset

// newLike returns an empty set with the receiver's fold options.
func (s *Set) newLike() *Set {
	return &Set{normalised: s.normalised, foldCase: s.foldCase}
}

// Equals reports whether both sets hold exactly the same members.
func (s *Set) Equals(o *Set) bool {
	return o != nil && s.size == o.size && s.IsSubsetOf(o)
}

// IsSubsetOf reports whether every member of s is a member of o.
func (s *Set) IsSubsetOf(o *Set) bool {
	if o == nil || s.size > o.size {
		return false
	}
	subset := true
	s.ForEach(func(w string) bool {
		subset = o.Has(w)
		return subset
	})
	return subset
}

// IsSupersetOf reports whether every member of o is a member of s.
func (s *Set) IsSupersetOf(o *Set) bool {
	return o != nil && o.IsSubsetOf(s)
}

// Union returns a new set with the members of both sets. The result
// inherits the receiver's fold options.
func (s *Set) Union(o *Set) *Set {
	u := s.newLike()
	_ = u.AddAll(s.ToSlice()...)
	if o != nil {
		_ = u.AddAll(o.ToSlice()...)
	}
	return u
}

// Intersection returns a new set with the members present in both sets.
func (s *Set) Intersection(o *Set) *Set {
	r := s.newLike()
	if o == nil {
		return r
	}
	s.ForEach(func(w string) bool {
		if o.Has(w) {
			_ = r.Add(w)
		}
		return true
	})
	return r
}

// Difference returns a new set with the members of s not present in o.
func (s *Set) Difference(o *Set) *Set {
	r := s.newLike()
	s.ForEach(func(w string) bool {
		if o == nil || !o.Has(w) {
			_ = r.Add(w)
		}
		return true
	})
	return r
}

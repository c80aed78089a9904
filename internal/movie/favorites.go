package movie

import "slices"

// FavoriteSet is a set of movie identifiers with value semantics.
// The zero value is an empty set. Mutating operations return a new set.
type FavoriteSet struct {
	ids map[int64]struct{}
}

// NewFavoriteSet returns a set holding the given ids.
func NewFavoriteSet(ids ...int64) FavoriteSet {
	s := FavoriteSet{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// ToggleFavorite returns a copy of favorites with id's membership flipped.
// The input set is left untouched.
func ToggleFavorite(favorites FavoriteSet, id int64) FavoriteSet {
	next := FavoriteSet{ids: make(map[int64]struct{}, len(favorites.ids)+1)}
	for k := range favorites.ids {
		next.ids[k] = struct{}{}
	}
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// Toggle is shorthand for ToggleFavorite(s, id).
func (s FavoriteSet) Toggle(id int64) FavoriteSet {
	return ToggleFavorite(s, id)
}

// Has reports whether id is in the set.
func (s FavoriteSet) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of ids in the set.
func (s FavoriteSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in ascending order.
func (s FavoriteSet) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both sets hold the same ids.
func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for id := range s.ids {
		if _, ok := other.ids[id]; !ok {
			return false
		}
	}
	return true
}

package entity

import "fmt"

// PlayerID is the list index reserved for the player.
const PlayerID = 0

// List is the ordered set of objects in a world. Entries are never removed or
// reordered, so an index identifies the same object for the life of the world.
type List []*Object

// Player returns the object at PlayerID.
func (l List) Player() *Object {
	return l.At(PlayerID)
}

// At returns the object at id. Panics if id is out of range.
func (l List) At(id int) *Object {
	if id < 0 || id >= len(l) {
		panic(fmt.Sprintf("entity: id %d outside list of %d", id, len(l)))
	}
	return l[id]
}

// Pair returns two distinct objects for an operation that mutates both, such
// as an attack. Panics if i == j or either index is out of range.
func (l List) Pair(i, j int) (*Object, *Object) {
	if i == j {
		panic(fmt.Sprintf("entity: Pair needs distinct ids, got %d twice", i))
	}
	return l.At(i), l.At(j)
}

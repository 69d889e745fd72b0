package gameplayutils

import "math"

// An Entity is anything that can report a world position - game objects, scene nodes,
// spawn points, and so on. The search functions in this package care about nothing
// beyond the position (and a nil check), so any positioned type plugs in.
type Entity interface {
	WorldPosition() Vector
}

// A Named entity additionally carries a name; EntityFilter's ByName uses this.
type Named interface {
	Name() string
}

// FindClosestEntity scans the entities given and returns the one closest to the
// source position, along with its distance. Nil entries are skipped. Ties on
// distance go to the first such entity in input order (the scan is a single stable
// pass, not a sort). Returns ok == false when the collection is empty or holds only
// nil entries.
func FindClosestEntity(source Vector, entities []Entity) (closest Entity, distance float64, ok bool) {

	distance = math.MaxFloat64

	for _, entity := range entities {

		if entity == nil {
			continue
		}

		d := source.Distance(entity.WorldPosition())

		if d < distance {
			distance = d
			closest = entity
		}

	}

	if closest == nil {
		return nil, 0, false
	}

	return closest, distance, true

}

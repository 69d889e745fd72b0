package gameplayutils

import (
	"sort"
)

const (
	efSortModeNone = iota
	efSortModeDistance
)

// EntityFilter represents a chain of entity filters, executed in sequence to collect
// the desired entities out of a collection. The filters run lazily when one of the
// finishing functions (Entities, First, Count, ForEach, Nearest) is called, so only
// one result slice is allocated per execution. Nil entries in the source collection
// never pass any filter.
type EntityFilter struct {
	Filters     []func(Entity) bool // The slice of filters currently active on the EntityFilter.
	source      []Entity
	sortMode    int
	sortTo      Vector
	reverseSort bool
}

// FilterEntities starts a filter chain over the entities given. The source slice is
// not modified by the filter.
func FilterEntities(entities []Entity) *EntityFilter {
	return &EntityFilter{source: entities}
}

// Filter adds the given filter function to the filter chain and returns the
// EntityFilter for further chaining.
func (ef *EntityFilter) Filter(filterFunc func(Entity) bool) *EntityFilter {
	ef.Filters = append(ef.Filters, filterFunc)
	return ef
}

// ByName filters out entities that don't carry the given name (entities that don't
// implement Named never pass).
func (ef *EntityFilter) ByName(name string) *EntityFilter {
	return ef.Filter(func(entity Entity) bool {
		named, ok := entity.(Named)
		return ok && named.Name() == name
	})
}

// InRange filters out entities further than radius away from the given position.
func (ef *EntityFilter) InRange(from Vector, radius float64) *EntityFilter {
	radiusSquared := radius * radius
	return ef.Filter(func(entity Entity) bool {
		return entity.WorldPosition().DistanceSquared(from) <= radiusSquared
	})
}

// SortByDistance sorts the result of the EntityFilter by distance to the given
// position, closest first. The sort is stable, so equidistant entities keep their
// input order.
func (ef *EntityFilter) SortByDistance(to Vector) *EntityFilter {
	ef.sortMode = efSortModeDistance
	ef.sortTo = to
	return ef
}

// SortReverse reverses the sort order of whichever sort is active on the
// EntityFilter.
func (ef *EntityFilter) SortReverse() *EntityFilter {
	ef.reverseSort = true
	return ef
}

func (ef *EntityFilter) execute() []Entity {

	out := make([]Entity, 0, len(ef.source))

	for _, entity := range ef.source {

		if entity == nil {
			continue
		}

		add := true

		for _, filter := range ef.Filters {
			if !filter(entity) {
				add = false
				break
			}
		}

		if add {
			out = append(out, entity)
		}

	}

	if ef.sortMode == efSortModeDistance {
		sort.SliceStable(out, func(i, j int) bool {
			if ef.reverseSort {
				return out[i].WorldPosition().DistanceSquared(ef.sortTo) > out[j].WorldPosition().DistanceSquared(ef.sortTo)
			}
			return out[i].WorldPosition().DistanceSquared(ef.sortTo) < out[j].WorldPosition().DistanceSquared(ef.sortTo)
		})
	}

	return out

}

// Entities executes the filter chain and returns the result as a slice of Entities.
func (ef *EntityFilter) Entities() []Entity {
	return ef.execute()
}

// First executes the filter chain and returns the first entity in the result, or nil
// if the result is empty.
func (ef *EntityFilter) First() Entity {
	out := ef.execute()
	if len(out) == 0 {
		return nil
	}
	return out[0]
}

// Count executes the filter chain and returns how many entities passed.
func (ef *EntityFilter) Count() int {
	return len(ef.execute())
}

// ForEach executes the filter chain and runs the given function on each resulting
// entity. Returning false from the function stops the iteration early.
func (ef *EntityFilter) ForEach(forEach func(entity Entity) bool) {
	for _, entity := range ef.execute() {
		if !forEach(entity) {
			break
		}
	}
}

// Nearest executes the filter chain and returns whichever passing entity lies
// closest to the given position, breaking ties by input order (the same rule as
// FindClosestEntity). Returns nil if no entity passed the filters.
func (ef *EntityFilter) Nearest(from Vector) Entity {
	closest, _, ok := FindClosestEntity(from, ef.execute())
	if !ok {
		return nil
	}
	return closest
}

package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps, the entity creation order and the next entity ID
type World struct {
	nextID EntityID

	// order lists live entities in creation order (draw order)
	order []EntityID
	alive map[EntityID]struct{}

	// Components
	transform map[EntityID]Transform
	visual    map[EntityID]Visual

	// Tags
	suppressRender map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:         1, // 0 is "nil"
		alive:          make(map[EntityID]struct{}),
		transform:      make(map[EntityID]Transform),
		visual:         make(map[EntityID]Visual),
		suppressRender: make(map[EntityID]struct{}),
	}
}

// CreateEntity allocates a new entity and attaches all given components to it.
// Components are stored as given; no combination is rejected.
func (w *World) CreateEntity(components ...Component) EntityID {
	id := w.nextID
	w.nextID++

	w.alive[id] = struct{}{}
	w.order = append(w.order, id)

	for _, c := range components {
		if c == nil {
			continue
		}
		c.attach(w, id)
	}
	return id
}

// RemoveEntity removes all components for an entity. The ID is not reused.
func (w *World) RemoveEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	delete(w.transform, id)
	delete(w.visual, id)
	delete(w.suppressRender, id)

	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i:i], w.order[i+1:]...)
			break
		}
	}
}

// Exists reports whether the entity was created and not removed
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.order)
}

// Entities returns live entities in creation order. The slice is a copy.
func (w *World) Entities() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Each calls fn for every live entity in creation order.
// fn must not create or remove entities.
func (w *World) Each(fn func(id EntityID)) {
	for _, id := range w.order {
		fn(id)
	}
}

// HasSuppressRender reports whether the entity carries the SuppressRender marker
func (w *World) HasSuppressRender(id EntityID) bool {
	_, ok := w.suppressRender[id]
	return ok
}

// SetSuppressRender adds or removes the SuppressRender marker.
// Other components are left untouched; unknown entities are ignored.
func (w *World) SetSuppressRender(id EntityID, present bool) {
	if !w.Exists(id) {
		return
	}
	if present {
		w.suppressRender[id] = struct{}{}
		return
	}
	delete(w.suppressRender, id)
}

// Get returns the component of type C attached to the entity.
func Get[C Component](w *World, id EntityID) (C, bool) {
	var zero C
	var v any
	var ok bool

	switch any(zero).(type) {
	case Transform:
		v, ok = w.transform[id]
	case Visual:
		v, ok = w.visual[id]
	case SuppressRender:
		_, ok = w.suppressRender[id]
		v = SuppressRender{}
	}
	if !ok {
		return zero, false
	}
	return v.(C), true
}

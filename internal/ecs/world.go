package ecs

import "github.com/younwookim/pacmaze/internal/domain/board"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Tag classifies an entity; every entity carries exactly one
type Tag int

const (
	TagPlayer Tag = iota
	TagTile
	TagDot
	TagEnemy
)

// String returns the tag name
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagTile:
		return "tile"
	case TagDot:
		return "dot"
	case TagEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is an identity plus tag. Components live in the World's stores.
// The World owns every Entity; other code holds the pointer as a non-owning reference.
type Entity struct {
	id     EntityID
	tag    Tag
	active bool
}

// ID returns the entity id
func (e *Entity) ID() EntityID { return e.id }

// Tag returns the entity tag
func (e *Entity) Tag() Tag { return e.tag }

// Active reports whether the entity survives the next flush
func (e *Entity) Active() bool { return e.active }

// Deactivate marks the entity for removal on the next flush
func (e *Entity) Deactivate() { e.active = false }

// World holds all component stores, the live entity set and the pending-add list.
//
// Entities created with CreateEntity stay invisible to Entities and EntitiesByTag
// until Flush runs. Flush must not be called while iterating a slice returned by
// either query.
type World struct {
	nextID   EntityID
	entities []*Entity
	byTag    map[Tag][]*Entity
	pending  []*Entity
	stores   []remover

	// Components
	Tiles      *Store[Tile]
	Placements *Store[Placement]
	Boxes      *Store[BoundingBox]
	Movements  *Store[Movement]
	Dots       *Store[Dot]
}

// NewWorld creates a new empty world
func NewWorld() *World {
	w := &World{
		nextID:     1, // 0 is "nil"
		byTag:      make(map[Tag][]*Entity),
		Tiles:      NewStore[Tile]("Tile"),
		Placements: NewStore[Placement]("Placement"),
		Boxes:      NewStore[BoundingBox]("BoundingBox"),
		Movements:  NewStore[Movement]("Movement"),
		Dots:       NewStore[Dot]("Dot"),
	}
	w.stores = []remover{w.Tiles, w.Placements, w.Boxes, w.Movements, w.Dots}
	return w
}

// CreateEntity allocates a new entity and queues it for the next flush
func (w *World) CreateEntity(tag Tag) *Entity {
	e := &Entity{id: w.nextID, tag: tag, active: true}
	w.nextID++
	w.pending = append(w.pending, e)
	return e
}

// Flush moves pending entities into the live set and tag index, then drops every
// inactive entity from both along with all of its components.
func (w *World) Flush() {
	for _, e := range w.pending {
		w.entities = append(w.entities, e)
		w.byTag[e.tag] = append(w.byTag[e.tag], e)
	}
	w.pending = w.pending[:0]

	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.active {
			kept = append(kept, e)
			continue
		}
		for _, s := range w.stores {
			s.Remove(e.id)
		}
	}
	clear(w.entities[len(kept):])
	w.entities = kept

	for tag, list := range w.byTag {
		keptTag := list[:0]
		for _, e := range list {
			if e.active {
				keptTag = append(keptTag, e)
			}
		}
		clear(list[len(keptTag):])
		w.byTag[tag] = keptTag
	}
}

// Entities returns the live set in insertion order
func (w *World) Entities() []*Entity {
	return w.entities
}

// EntitiesByTag returns the live entities carrying tag, in insertion order
func (w *World) EntitiesByTag(tag Tag) []*Entity {
	return w.byTag[tag]
}

// Pending returns the number of entities waiting for a flush
func (w *World) Pending() int {
	return len(w.pending)
}

// SetPosition moves the entity to a local position and refreshes its derived
// world position and bounding box
func (w *World) SetPosition(id EntityID, local board.Vec) {
	p := w.Placements.MustGet(id)
	p.Local = local
	w.refresh(id, p)
}

// AddPosition shifts the entity by delta in local space
func (w *World) AddPosition(id EntityID, delta board.Vec) {
	p := w.Placements.MustGet(id)
	p.Local = p.Local.Add(delta)
	w.refresh(id, p)
}

func (w *World) refresh(id EntityID, p *Placement) {
	p.World = board.ToWorld(p.Local)
	if box, ok := w.Boxes.Get(id); ok {
		box.Rect = p.Bounds()
	}
}

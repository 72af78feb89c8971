package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

var (
	// ErrUnknownObject is returned when an id does not name an object of the requested kind.
	ErrUnknownObject = errors.New("unknown object")
	// ErrNotOwned is returned when ordering a group the player faction does not own.
	ErrNotOwned = errors.New("group not owned by player faction")
)

// ScreenPos is the projected pixel position of a star or group.
// Rewritten every frame by the viewport; never authoritative.
type ScreenPos struct {
	X, Y float64
}

// Projected is implemented by objects that carry a screen position.
type Projected interface {
	Object
	screenEntity() ecs.Entity
}

func (s *Star) screenEntity() ecs.Entity  { return s.entity }
func (g *Group) screenEntity() ecs.Entity { return g.entity }

// FactionSpec describes a faction created at world construction.
type FactionSpec struct {
	Name   string
	Groups int
}

// Params configures world construction.
type Params struct {
	Galaxy   GalaxyParams
	Factions []FactionSpec
}

// World owns the star map, factions, and groups, plus a flat id registry over all of them.
type World struct {
	ECS      *ecs.World
	Stars    []*Star
	Factions []*Faction
	Current  *Faction // the player's faction

	lastID    ID
	objects   map[ID]Object
	screenMap *ecs.Map[ScreenPos]
}

// New creates an empty world.
func New() *World {
	w := ecs.NewWorld(256)
	return &World{
		ECS:       w,
		objects:   make(map[ID]Object),
		screenMap: ecs.NewMap[ScreenPos](w),
	}
}

// Build generates the galaxy and the starting factions.
// The first faction is the player's; faction k's groups start docked at star k.
func Build(p Params, rng *rand.Rand, names NameSource) (*World, error) {
	w := New()
	stars, err := GenerateStars(rng, p.Galaxy, names, w.NextID)
	if err != nil {
		return nil, fmt.Errorf("generate galaxy: %w", err)
	}
	for _, s := range stars {
		w.AddStar(s)
	}
	if len(p.Factions) == 0 {
		return nil, errors.New("world needs at least one faction")
	}
	for k, spec := range p.Factions {
		if spec.Groups > 0 && len(w.Stars) == 0 {
			return nil, fmt.Errorf("faction %q has groups but the galaxy has no stars", spec.Name)
		}
		f := w.NewFaction(spec.Name)
		for i := 0; i < spec.Groups; i++ {
			w.NewGroup(f, w.Stars[k%len(w.Stars)])
		}
	}
	w.Current = w.Factions[0]
	return w, nil
}

// NextID allocates the next world-unique id.
func (w *World) NextID() ID {
	w.lastID++
	return w.lastID
}

// AddStar registers a generated star.
func (w *World) AddStar(s *Star) {
	s.entity = w.screenMap.NewEntity(&ScreenPos{})
	w.Stars = append(w.Stars, s)
	w.register(s)
}

// NewFaction creates and registers a faction.
func (w *World) NewFaction(name string) *Faction {
	f := &Faction{ID: w.NextID(), Name: name}
	w.Factions = append(w.Factions, f)
	w.register(f)
	return f
}

// NewGroup creates a group for f at the given place and registers it.
func (w *World) NewGroup(f *Faction, at Place) *Group {
	g := &Group{ID: w.NextID(), Faction: f}
	g.entity = w.screenMap.NewEntity(&ScreenPos{})
	f.Groups = append(f.Groups, g)
	g.SetLocation(at)
	w.register(g)
	return g
}

func (w *World) register(o Object) {
	if _, dup := w.objects[o.ObjectID()]; dup {
		panic(fmt.Sprintf("duplicate object id %d", o.ObjectID()))
	}
	w.objects[o.ObjectID()] = o
}

// Lookup finds any object by id.
func (w *World) Lookup(id ID) (Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// LookupStar finds a star by id.
func (w *World) LookupStar(id ID) (*Star, error) {
	if s, ok := w.objects[id].(*Star); ok {
		return s, nil
	}
	return nil, fmt.Errorf("star %d: %w", id, ErrUnknownObject)
}

// LookupGroup finds a group by id.
func (w *World) LookupGroup(id ID) (*Group, error) {
	if g, ok := w.objects[id].(*Group); ok {
		return g, nil
	}
	return nil, fmt.Errorf("group %d: %w", id, ErrUnknownObject)
}

// Groups returns every group of every faction, in faction order.
func (w *World) Groups() []*Group {
	var out []*Group
	for _, f := range w.Factions {
		out = append(out, f.Groups...)
	}
	return out
}

// Owns reports whether the player faction owns g.
func (w *World) Owns(g *Group) bool {
	return g != nil && g.Faction == w.Current
}

// SetDestination orders a player-owned group toward a star or a free point.
func (w *World) SetDestination(g *Group, p Place) error {
	if g == nil {
		return errors.New("destination: nil group")
	}
	if !w.Owns(g) {
		return fmt.Errorf("%s: %w", g.DisplayName(), ErrNotOwned)
	}
	switch dest := p.(type) {
	case *Star:
		if dest == nil {
			return errors.New("destination: nil star")
		}
	case Point:
	default:
		return fmt.Errorf("destination must be a star or a point, not %T", p)
	}
	g.dest = p
	return nil
}

// Screen returns the last projected screen position of o.
func (w *World) Screen(o Projected) Point {
	pos := w.screenMap.Get(o.screenEntity())
	return Point{pos.X, pos.Y}
}

// SetScreen stores the projected screen position of o.
func (w *World) SetScreen(o Projected, p Point) {
	pos := w.screenMap.Get(o.screenEntity())
	pos.X = p.X
	pos.Y = p.Y
}

package world

import (
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// ID is a world-unique object identifier. IDs are handed out by World.NextID
// in increasing order and never reused.
type ID int

// Object is anything registered in the world arena.
type Object interface {
	ObjectID() ID
	DisplayName() string
}

// Place is where a group can be or be headed: a *Star or a free Point in map space.
type Place interface {
	Position() Point
	isPlace()
}

// Position returns the point itself.
func (p Point) Position() Point { return p }
func (Point) isPlace()          {}

// DescribePlace renders a place for the sidebar.
func DescribePlace(p Place) string {
	switch loc := p.(type) {
	case *Star:
		return "docked at " + loc.Name
	case Point:
		return "in space at " + loc.Round(3).String()
	case nil:
		return "nowhere"
	default:
		panic(fmt.Sprintf("unknown place type %T", p))
	}
}

// Star is a fixed location on the star map. Stars never move.
type Star struct {
	ID       ID
	Name     string
	Location Point
	Docked   []*Group

	entity ecs.Entity
}

func (s *Star) ObjectID() ID { return s.ID }

func (s *Star) DisplayName() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.ID)
}

// Position returns the star's map location.
func (s *Star) Position() Point { return s.Location }
func (*Star) isPlace()          {}

func (s *Star) dock(g *Group) {
	if slices.Contains(s.Docked, g) {
		return
	}
	s.Docked = append(s.Docked, g)
}

func (s *Star) undock(g *Group) {
	if i := slices.Index(s.Docked, g); i >= 0 {
		s.Docked = slices.Delete(s.Docked, i, i+1)
	}
}

// Faction owns groups. Exactly one faction is the player's.
type Faction struct {
	ID     ID
	Name   string
	Groups []*Group
}

func (f *Faction) ObjectID() ID { return f.ID }

func (f *Faction) DisplayName() string {
	return fmt.Sprintf("%s (%d)", f.Name, f.ID)
}

// Group is a fleet. Its location is either docked at a star or a free point.
type Group struct {
	ID      ID
	Faction *Faction

	loc    Place
	dest   Place
	entity ecs.Entity
}

func (g *Group) ObjectID() ID { return g.ID }

func (g *Group) DisplayName() string {
	return fmt.Sprintf("group %d(%s)", g.ID, g.Faction.Name)
}

// Location returns the group's current place (*Star or Point).
func (g *Group) Location() Place { return g.loc }

// IsDocked reports whether the group sits at a star.
func (g *Group) IsDocked() bool {
	_, ok := g.loc.(*Star)
	return ok
}

// Position returns the group's location in map space.
func (g *Group) Position() Point {
	if g.loc == nil {
		return Point{}
	}
	return g.loc.Position()
}

// SetLocation moves the group, keeping star dock lists in sync.
func (g *Group) SetLocation(p Place) {
	switch loc := p.(type) {
	case Point:
		if old, ok := g.loc.(*Star); ok {
			old.undock(g)
		}
		g.loc = loc
	case *Star:
		if loc == nil {
			panic("group location: nil star")
		}
		if old, ok := g.loc.(*Star); ok && old != loc {
			old.undock(g)
		}
		loc.dock(g)
		g.loc = loc
	default:
		panic(fmt.Sprintf("group location must be a star or a point, not %T", p))
	}
}

// Destination returns the pending destination, if any.
func (g *Group) Destination() (Place, bool) {
	return g.dest, g.dest != nil
}

// ClearDestination drops the pending destination. Called on arrival.
func (g *Group) ClearDestination() { g.dest = nil }

package game

import (
	"slices"

	"github.com/spacehole-rogue/starfield/internal/world"
)

// Vec is a JSON-friendly point.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func vec(p world.Point) Vec { return Vec{p.X, p.Y} }

// StarState is a star as seen in a snapshot.
type StarState struct {
	ID       world.ID   `json:"id"`
	Name     string     `json:"name"`
	Location Vec        `json:"location"`
	Screen   Vec        `json:"screen"`
	Docked   []world.ID `json:"docked,omitempty"`
}

// PlaceState is a location or destination: a star id or a free point.
type PlaceState struct {
	Star  *world.ID `json:"star,omitempty"`
	Point *Vec      `json:"point,omitempty"`
}

type GroupState struct {
	ID          world.ID    `json:"id"`
	Name        string      `json:"name"`
	Faction     world.ID    `json:"faction"`
	Location    PlaceState  `json:"location"`
	Destination *PlaceState `json:"destination,omitempty"`
}

type FactionState struct {
	ID     world.ID   `json:"id"`
	Name   string     `json:"name"`
	Player bool       `json:"player"`
	Groups []world.ID `json:"groups"`
}

// Snapshot is an immutable copy of world, view, and interaction state.
// Safe to hand to other goroutines.
type Snapshot struct {
	Page         string         `json:"page"`
	Mode         string         `json:"mode"`
	Scale        float64        `json:"scale"`
	Pan          Vec            `json:"pan"`
	Hovered      *world.ID      `json:"hovered,omitempty"`
	Selected     *world.ID      `json:"selected,omitempty"`
	Focus        *world.ID      `json:"focus,omitempty"`
	CommandGroup *world.ID      `json:"command_group,omitempty"`
	Sidebar      []string       `json:"sidebar"`
	Stars        []StarState    `json:"stars"`
	Factions     []FactionState `json:"factions"`
	Groups       []GroupState   `json:"groups"`
}

// Capture copies the controller's current state.
func Capture(c *Controller) *Snapshot {
	w := c.World
	s := &Snapshot{
		Page:  c.Page.Name(),
		Mode:  c.Mode.Name(),
		Scale: c.View.Scale,
		Pan:   vec(c.View.Pan),
	}
	if c.Hovered != nil {
		s.Hovered = idOf(c.Hovered)
	}
	if c.Selected != nil {
		s.Selected = idOf(c.Selected)
	}
	if c.Focus != nil {
		s.Focus = idOf(c.Focus)
	}
	if c.CommandGroup != nil {
		s.CommandGroup = idOf(c.CommandGroup)
	}
	for _, r := range c.Sidebar.Rows {
		s.Sidebar = append(s.Sidebar, r.Text)
	}

	for _, st := range w.Stars {
		ss := StarState{
			ID:       st.ID,
			Name:     st.Name,
			Location: vec(st.Location),
			Screen:   vec(w.Screen(st)),
		}
		for _, g := range st.Docked {
			ss.Docked = append(ss.Docked, g.ID)
		}
		s.Stars = append(s.Stars, ss)
	}
	for _, f := range w.Factions {
		fs := FactionState{ID: f.ID, Name: f.Name, Player: f == w.Current}
		for _, g := range f.Groups {
			fs.Groups = append(fs.Groups, g.ID)
			gs := GroupState{
				ID:       g.ID,
				Name:     g.DisplayName(),
				Faction:  f.ID,
				Location: placeState(g.Location()),
			}
			if dest, ok := g.Destination(); ok {
				ps := placeState(dest)
				gs.Destination = &ps
			}
			s.Groups = append(s.Groups, gs)
		}
		s.Factions = append(s.Factions, fs)
	}
	return s
}

// Star finds a star by id.
func (s *Snapshot) Star(id world.ID) (StarState, bool) {
	i := slices.IndexFunc(s.Stars, func(st StarState) bool { return st.ID == id })
	if i < 0 {
		return StarState{}, false
	}
	return s.Stars[i], true
}

func idOf(o world.Object) *world.ID {
	id := o.ObjectID()
	return &id
}

func placeState(p world.Place) PlaceState {
	switch loc := p.(type) {
	case *world.Star:
		return PlaceState{Star: idOf(loc)}
	case world.Point:
		v := vec(loc)
		return PlaceState{Point: &v}
	default:
		return PlaceState{}
	}
}

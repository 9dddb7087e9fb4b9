package unit

// ─── Crew ───────────────────────────────────────────────────────────────────

// CrewDeathHits is the hit count at which a crew member dies.
const CrewDeathHits = 6

type CrewMember struct {
	Name        string
	Gunnery     int
	Piloting    int
	Hits        int
	Unconscious bool
	Dead        bool
	Doomed      bool
	Ejected     bool
}

func (m *CrewMember) Active() bool {
	return !m.Dead && !m.Doomed && !m.Ejected
}

// Crew holds one or more seats; Active indexes the member at the controls.
type Crew struct {
	Members []CrewMember
	Active  int
	Edge    int
}

// NewCrew builds a single-seat crew.
func NewCrew(name string, gunnery, piloting int) *Crew {
	return &Crew{Members: []CrewMember{{Name: name, Gunnery: gunnery, Piloting: piloting}}}
}

// Current returns the member at the controls, or nil when nobody is left.
func (c *Crew) Current() *CrewMember {
	if c == nil || c.Active < 0 || c.Active >= len(c.Members) {
		return nil
	}
	return &c.Members[c.Active]
}

// AnyAlive reports whether at least one member is still in the unit.
func (c *Crew) AnyAlive() bool {
	if c == nil {
		return false
	}
	for i := range c.Members {
		if c.Members[i].Active() {
			return true
		}
	}
	return false
}

// Reassign hands control to the next surviving member.
func (c *Crew) Reassign() bool {
	if c == nil {
		return false
	}
	for i := range c.Members {
		if i != c.Active && c.Members[i].Active() {
			c.Active = i
			return true
		}
	}
	return false
}

// CanAct reports whether the member at the controls is conscious.
func (c *Crew) CanAct() bool {
	m := c.Current()
	return m != nil && m.Active() && !m.Unconscious
}

// SpendEdge consumes one point of edge if any remain.
func (c *Crew) SpendEdge() bool {
	if c == nil || c.Edge <= 0 {
		return false
	}
	c.Edge--
	return true
}

func (c *Crew) Piloting() int {
	if m := c.Current(); m != nil {
		return m.Piloting
	}
	return 5
}

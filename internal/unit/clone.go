package unit

// ─── Clone ──────────────────────────────────────────────────────────────────

// Clone deep-copies the unit. Riders and squadron members are cloned too;
// CarriedBy is left pointing at the original container.
func (u *Unit) Clone() *Unit {
	c := &Unit{}
	*c = *u
	c.Locations = make([]Location, len(u.Locations))
	for i, l := range u.Locations {
		c.Locations[i] = l
		if l.Slots != nil {
			c.Locations[i].Slots = make([]Slot, len(l.Slots))
			copy(c.Locations[i].Slots, l.Slots)
		}
	}
	c.Equipment = make([]*Mounted, len(u.Equipment))
	for i, m := range u.Equipment {
		cp := *m
		c.Equipment[i] = &cp
	}
	if u.Crew != nil {
		crew := *u.Crew
		crew.Members = append([]CrewMember(nil), u.Crew.Members...)
		c.Crew = &crew
	}
	c.Quirks = append([]Quirk(nil), u.Quirks...)
	if u.Mek != nil {
		s := *u.Mek
		c.Mek = &s
	}
	if u.Vehicle != nil {
		s := *u.Vehicle
		c.Vehicle = &s
	}
	if u.Aero != nil {
		s := *u.Aero
		c.Aero = &s
	}
	if u.Proto != nil {
		s := *u.Proto
		c.Proto = &s
	}
	if u.Infantry != nil {
		s := *u.Infantry
		c.Infantry = &s
	}
	c.Riders = make([]Passenger, len(u.Riders))
	for i, p := range u.Riders {
		c.Riders[i] = Passenger{Unit: p.Unit.Clone(), Location: p.Location, Swarming: p.Swarming}
	}
	if u.Members != nil {
		c.Members = make([]*Unit, len(u.Members))
		for i, m := range u.Members {
			c.Members[i] = m.Clone()
			c.Members[i].CarriedBy = c
		}
	}
	return c
}

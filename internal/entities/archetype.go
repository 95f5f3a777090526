package entities

import (
	"sort"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

// Side identifies which roster a character belongs to
type Side int

// Sides
const (
	SideOwn Side = iota
	SideEnemy
)

// String returns the side name
func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "own"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideOwn {
		return SideEnemy
	}
	return SideOwn
}

// ParseSide converts "own" or "enemy" into a Side
func ParseSide(name string) (Side, error) {
	switch name {
	case "own":
		return SideOwn, nil
	case "enemy":
		return SideEnemy, nil
	default:
		return SideOwn, errors.InvalidArgumentf("unknown side %q", name)
	}
}

// Archetype is the unit kind tag
type Archetype string

// Archetypes, three per side
const (
	ArchetypeBowman    Archetype = "bowman"
	ArchetypeSwordsman Archetype = "swordsman"
	ArchetypeMagician  Archetype = "magician"
	ArchetypeVampire   Archetype = "vampire"
	ArchetypeUndead    Archetype = "undead"
	ArchetypeDaemon    Archetype = "daemon"
)

// Profile is the stat table row of an archetype
type Profile struct {
	Archetype   Archetype
	Side        Side
	Attack      float64
	Defence     float64
	HikeRange   int
	AttackRange int
}

// ArchetypeTable maps each archetype to its base stats
type ArchetypeTable map[Archetype]Profile

// DefaultArchetypes returns the standard stat table
func DefaultArchetypes() ArchetypeTable {
	return ArchetypeTable{
		ArchetypeBowman:    {Archetype: ArchetypeBowman, Side: SideOwn, Attack: 25, Defence: 25, HikeRange: 2, AttackRange: 2},
		ArchetypeSwordsman: {Archetype: ArchetypeSwordsman, Side: SideOwn, Attack: 60, Defence: 10, HikeRange: 4, AttackRange: 1},
		ArchetypeMagician:  {Archetype: ArchetypeMagician, Side: SideOwn, Attack: 10, Defence: 40, HikeRange: 1, AttackRange: 4},
		ArchetypeVampire:   {Archetype: ArchetypeVampire, Side: SideEnemy, Attack: 25, Defence: 25, HikeRange: 2, AttackRange: 2},
		ArchetypeUndead:    {Archetype: ArchetypeUndead, Side: SideEnemy, Attack: 60, Defence: 10, HikeRange: 4, AttackRange: 1},
		ArchetypeDaemon:    {Archetype: ArchetypeDaemon, Side: SideEnemy, Attack: 10, Defence: 40, HikeRange: 1, AttackRange: 4},
	}
}

// Lookup returns the profile of an archetype
func (t ArchetypeTable) Lookup(a Archetype) (Profile, error) {
	p, ok := t[a]
	if !ok {
		return Profile{}, errors.NotFoundf("unknown archetype %q", a)
	}
	return p, nil
}

// ForSide lists the archetypes of one side in name order
func (t ArchetypeTable) ForSide(side Side) []Archetype {
	var out []Archetype
	for a, p := range t {
		if p.Side == side {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks that both sides have archetypes and every row is usable
func (t ArchetypeTable) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, side := range []Side{SideOwn, SideEnemy} {
		if len(t.ForSide(side)) == 0 {
			vb.Fieldf("archetypes", "no archetypes for side %s", side)
		}
	}

	for a, p := range t {
		field := string(a)
		if p.Archetype != a {
			vb.Fieldf(field, "profile is tagged %q", p.Archetype)
		}
		if p.Attack <= 0 {
			vb.Field(field, "attack must be positive")
		}
		if p.Defence < 0 {
			vb.Field(field, "defence must not be negative")
		}
		if p.HikeRange < 1 || p.AttackRange < 1 {
			vb.Field(field, "ranges must be at least 1")
		}
	}

	return vb.Build()
}

package roster_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/roster"
)

type RosterTestSuite struct {
	suite.Suite
	table entities.ArchetypeTable
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func (s *RosterTestSuite) SetupTest() {
	s.table = entities.DefaultArchetypes()
}

func (s *RosterTestSuite) character(id int, a entities.Archetype, level int) *entities.Character {
	profile, err := s.table.Lookup(a)
	s.Require().NoError(err)
	c, err := entities.NewCharacter(id, profile, level)
	s.Require().NoError(err)
	return c
}

func (s *RosterTestSuite) ownRoster() *roster.Roster {
	r, err := roster.New(entities.SideOwn, []entities.PositionedCharacter{
		{Character: s.character(1, entities.ArchetypeBowman, 1), Position: 0},
		{Character: s.character(2, entities.ArchetypeSwordsman, 1), Position: 8},
		{Character: s.character(3, entities.ArchetypeMagician, 2), Position: 17},
	})
	s.Require().NoError(err)
	return r
}

func (s *RosterTestSuite) TestNew_RejectsSharedCell() {
	_, err := roster.New(entities.SideOwn, []entities.PositionedCharacter{
		{Character: s.character(1, entities.ArchetypeBowman, 1), Position: 0},
		{Character: s.character(2, entities.ArchetypeBowman, 1), Position: 0},
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RosterTestSuite) TestNew_RejectsWrongSide() {
	_, err := roster.New(entities.SideOwn, []entities.PositionedCharacter{
		{Character: s.character(1, entities.ArchetypeDaemon, 1), Position: 0},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RosterTestSuite) TestPositioned_ReturnsCopiesInOrder() {
	r := s.ownRoster()

	positioned := r.Positioned()
	s.Require().Len(positioned, 3)
	s.Equal([]int{0, 8, 17}, []int{positioned[0].Position, positioned[1].Position, positioned[2].Position})

	positioned[0].Character.Health = 0
	again, err := r.Find(1)
	s.Require().NoError(err)
	s.Equal(entities.BaseHealth, again.Character.Health)
}

func (s *RosterTestSuite) TestSetPosition() {
	r := s.ownRoster()

	s.Require().NoError(r.SetPosition(1, 1))
	found, err := r.Find(1)
	s.Require().NoError(err)
	s.Equal(1, found.Position)

	s.True(r.Occupied(1))
	s.False(r.Occupied(0))
	s.Equal(3, r.MaxID())

	err = r.SetPosition(42, 5)
	s.True(errors.IsNotFound(err), "stale ids fail explicitly")
}

func (s *RosterTestSuite) TestApplyDamage_FloorAgainstHighDefence() {
	target := s.character(9, entities.ArchetypeDaemon, 1)
	target.Defence = 1000
	r, err := roster.New(entities.SideEnemy, []entities.PositionedCharacter{{Character: target, Position: 6}})
	s.Require().NoError(err)

	var resolved roster.Outcome
	out, err := r.ApplyDamage(9, 10, func(o roster.Outcome) { resolved = o })

	s.Require().NoError(err)
	s.Equal(1.0, out.Dealt)
	s.False(out.Killed)
	s.Equal(out, resolved)
}

func (s *RosterTestSuite) TestApplyDamage_RemovesExactlyOnce() {
	r := s.ownRoster()
	calls := 0

	out, err := r.ApplyDamage(1, 500, func(roster.Outcome) { calls++ })
	s.Require().NoError(err)
	s.True(out.Killed)
	s.Equal(entities.BaseHealth, out.Dealt, "dealt damage is capped by remaining health")
	s.Equal(2, r.Len())

	_, err = r.ApplyDamage(1, 500, func(roster.Outcome) { calls++ })
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(2, r.Len())
	s.Equal(1, calls)
}

func (s *RosterTestSuite) TestScore() {
	r := s.ownRoster()
	r.RecordDealt(12.5)
	r.RecordDealt(7.5)
	s.Equal(20.0, r.Score())
}

func (s *RosterTestSuite) TestSelectTarget_LowestHealthThenLowestID() {
	r := s.ownRoster()
	_, err := r.ApplyDamage(2, 45, nil)
	s.Require().NoError(err)

	target, err := r.SelectTarget()
	s.Require().NoError(err)
	s.Equal(2, target.Character.ID)
	s.Equal(15.0, target.Character.Health)

	even := s.ownRoster()
	target, err = even.SelectTarget()
	s.Require().NoError(err)
	s.Equal(1, target.Character.ID, "bowman and swordsman tie at full health, magician has more")
}

func (s *RosterTestSuite) TestSelectActor_HighestAttackThenLowestID() {
	r, err := roster.New(entities.SideEnemy, []entities.PositionedCharacter{
		{Character: s.character(5, entities.ArchetypeVampire, 1), Position: 6},
		{Character: s.character(7, entities.ArchetypeUndead, 1), Position: 7},
		{Character: s.character(4, entities.ArchetypeUndead, 1), Position: 15},
	})
	s.Require().NoError(err)

	actor, err := r.SelectActor()
	s.Require().NoError(err)
	s.Equal(4, actor.Character.ID)
	s.Equal(15, actor.Position)
}

func (s *RosterTestSuite) TestSelect_EmptyRoster() {
	r, err := roster.New(entities.SideEnemy, nil)
	s.Require().NoError(err)

	_, err = r.SelectActor()
	s.True(errors.IsNotFound(err))
	_, err = r.SelectTarget()
	s.True(errors.IsNotFound(err))
}

func (s *RosterTestSuite) TestAdvanceRound_LevelsUpHealsAndRefills() {
	r := s.ownRoster()
	_, err := r.ApplyDamage(2, 30, nil)
	s.Require().NoError(err)
	_, err = r.ApplyDamage(1, 500, nil)
	s.Require().NoError(err)
	r.RecordDealt(40)

	recruiter := &fakeRecruiter{table: s.table, nextID: 100}
	lineup, err := r.AdvanceRound(4, recruiter)

	s.Require().NoError(err)
	s.Require().Len(lineup, 4)
	s.Equal(2, lineup[0].ID)
	s.Equal(2, lineup[0].Level)
	s.Equal(lineup[0].MaxHealth, lineup[0].Health)
	s.Equal(3, lineup[1].Level)
	for _, c := range lineup[2:] {
		s.Equal(entities.MinLevel, c.Level)
		s.Equal(entities.SideOwn, c.Side)
	}
	s.Equal(entities.MinLevel, recruiter.maxLevel)
	s.Zero(r.Score())
}

func (s *RosterTestSuite) TestAdvanceRound_NoRefillNeeded() {
	r := s.ownRoster()

	lineup, err := r.AdvanceRound(2, nil)
	s.Require().NoError(err)
	s.Len(lineup, 3, "survivors are never dropped")
}

func (s *RosterTestSuite) TestRegenerateRound_ScalesLevelCap() {
	recruiter := &fakeRecruiter{table: s.table}

	lineup, err := roster.RegenerateRound(3, 4, recruiter)
	s.Require().NoError(err)
	s.Len(lineup, 4)
	s.Equal(3, recruiter.maxLevel)
	s.Equal(entities.SideEnemy, recruiter.side)

	_, err = roster.RegenerateRound(9, 4, recruiter)
	s.Require().NoError(err)
	s.Equal(entities.MaxLevel, recruiter.maxLevel)
}

type fakeRecruiter struct {
	table    entities.ArchetypeTable
	nextID   int
	side     entities.Side
	maxLevel int
}

func (f *fakeRecruiter) Recruit(side entities.Side, maxLevel, count int) ([]*entities.Character, error) {
	f.side = side
	f.maxLevel = maxLevel
	kind := f.table.ForSide(side)[0]
	profile, _ := f.table.Lookup(kind)

	out := make([]*entities.Character, 0, count)
	for range count {
		f.nextID++
		c, err := entities.NewCharacter(f.nextID, profile, entities.MinLevel)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

package handheld_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2020/handheld"
)

const bootCode = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6
`

// MachineSuite covers parsing, execution and repair.
type MachineSuite struct {
	suite.Suite
	prog handheld.Program
}

func (s *MachineSuite) SetupTest() {
	p, err := handheld.Parse(bootCode)
	s.Require().NoError(err)
	s.prog = p
}

func (s *MachineSuite) TestParts() {
	got, err := handheld.PartOne(bootCode)
	s.Require().NoError(err)
	s.Equal(5, got)

	got, err = handheld.PartTwo(bootCode)
	s.Require().NoError(err)
	s.Equal(8, got)
}

func (s *MachineSuite) TestRunLoops() {
	res, err := s.prog.Run()
	s.Require().NoError(err)
	s.Equal(handheld.Loop, res.Outcome)
	s.Equal(5, res.Acc)
	s.Equal(1, res.PC, "stops on the instruction about to repeat")
	s.Equal(7, res.Steps)
}

func (s *MachineSuite) TestRepair() {
	res, flipped, err := s.prog.Repair()
	s.Require().NoError(err)
	s.Equal(7, flipped)
	s.Equal(handheld.Halt, res.Outcome)
	s.Equal(len(s.prog), res.PC)
	s.Equal(8, res.Acc)

	again, err := s.prog.Run()
	s.Require().NoError(err)
	s.Equal(handheld.Loop, again.Outcome, "repair must not modify the program")
}

func (s *MachineSuite) TestHaltWithoutRepair() {
	p, err := handheld.Parse("acc +2\nnop -5\nacc +3\n")
	s.Require().NoError(err)
	res, err := p.Run()
	s.Require().NoError(err)
	s.Equal(handheld.Halt, res.Outcome)
	s.Equal(5, res.Acc)

	got, err := handheld.PartOne("acc +2\nnop -5\nacc +3\n")
	s.Require().NoError(err)
	s.Equal(5, got)
}

func (s *MachineSuite) TestOutOfRange() {
	for _, src := range []string{"jmp +2\n", "acc +1\njmp -2\n"} {
		p, err := handheld.Parse(src)
		s.Require().NoError(err)
		_, err = p.Run()
		s.ErrorIs(err, handheld.ErrOutOfRange, src)
	}
}

func (s *MachineSuite) TestRepairSkipsOutOfRange() {
	// Flipping the first nop jumps out of range; flipping the jmp halts.
	p, err := handheld.Parse("nop +5\nacc +1\njmp -1\n")
	s.Require().NoError(err)
	res, flipped, err := p.Repair()
	s.Require().NoError(err)
	s.Equal(2, flipped)
	s.Equal(1, res.Acc)
}

func (s *MachineSuite) TestNoRepair() {
	_, err := handheld.PartTwo("acc +1\njmp +0\njmp -1\n")
	s.ErrorIs(err, handheld.ErrNoRepair)
}

func (s *MachineSuite) TestParseErrors() {
	_, err := handheld.Parse("mul +1\n")
	s.ErrorIs(err, handheld.ErrUnknownOp)
	_, err = handheld.Parse("acc\n")
	s.ErrorIs(err, handheld.ErrBadArgument)
	_, err = handheld.Parse("acc x1\n")
	s.ErrorIs(err, handheld.ErrBadArgument)
	_, err = handheld.Parse("\n")
	s.ErrorIs(err, handheld.ErrEmptyProgram)
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineSuite))
}

func TestStringers(t *testing.T) {
	require.Equal(t, "jmp", handheld.Jmp.String())
	require.Equal(t, "op(9)", handheld.Op(9).String())
	require.Equal(t, "halt", handheld.Halt.String())
	require.Equal(t, "loop", handheld.Loop.String())
}

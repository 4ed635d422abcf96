package handheld

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/aoc2020/internal/text"
)

var (
	// ErrUnknownOp reports an opcode other than acc, jmp or nop.
	ErrUnknownOp = errors.New("handheld: unknown operation")
	// ErrBadArgument reports a missing or non-integer argument.
	ErrBadArgument = errors.New("handheld: bad argument")
	// ErrOutOfRange reports a jump that leaves the program anywhere other
	// than exactly one past its end.
	ErrOutOfRange = errors.New("handheld: jump out of range")
	// ErrNoRepair is returned when no single flip makes the program halt.
	ErrNoRepair = errors.New("handheld: no single-instruction repair halts")
	// ErrEmptyProgram is returned for input without instructions.
	ErrEmptyProgram = errors.New("handheld: empty program")
)

// Op is an instruction opcode.
type Op uint8

// Opcodes.
const (
	Nop Op = iota
	Acc
	Jmp
)

var opNames = [...]string{Nop: "nop", Acc: "acc", Jmp: "jmp"}

// String returns the mnemonic.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Instruction is one line of the boot program.
type Instruction struct {
	Op  Op
	Arg int
}

// Program is a parsed boot program.
type Program []Instruction

// Outcome tells how a run ended.
type Outcome uint8

const (
	// Loop means an instruction was about to run a second time.
	Loop Outcome = iota
	// Halt means the counter reached one past the last instruction.
	Halt
)

// String returns "loop" or "halt".
func (o Outcome) String() string {
	if o == Halt {
		return "halt"
	}

	return "loop"
}

// Result is the machine state at the end of a run.
type Result struct {
	Acc     int
	PC      int
	Outcome Outcome
	Steps   int
}

// ParseInstruction reads "op ±N".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadArgument, line)
	}
	var ins Instruction
	switch fields[0] {
	case "nop":
		ins.Op = Nop
	case "acc":
		ins.Op = Acc
	case "jmp":
		ins.Op = Jmp
	default:
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownOp, fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadArgument, fields[1])
	}
	ins.Arg = n

	return ins, nil
}

// Parse reads one instruction per non-blank line.
func Parse(input string) (Program, error) {
	var prog Program
	for i, line := range text.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		prog = append(prog, ins)
	}
	if len(prog) == 0 {
		return nil, ErrEmptyProgram
	}

	return prog, nil
}

// Run executes p from position 0 until it loops or halts.
func (p Program) Run() (Result, error) {
	var (
		res  Result
		seen = bitset.New(uint(len(p)))
	)
	for {
		if res.PC == len(p) {
			res.Outcome = Halt
			return res, nil
		}
		if res.PC < 0 || res.PC > len(p) {
			return res, fmt.Errorf("%w: %d in program of %d", ErrOutOfRange, res.PC, len(p))
		}
		if seen.Test(uint(res.PC)) {
			res.Outcome = Loop
			return res, nil
		}
		seen.Set(uint(res.PC))

		ins := p[res.PC]
		switch ins.Op {
		case Acc:
			res.Acc += ins.Arg
			res.PC++
		case Jmp:
			res.PC += ins.Arg
		default:
			res.PC++
		}
		res.Steps++
	}
}

// Repair flips each jmp/nop in turn and returns the result of the first
// variant that halts. Variants that jump out of range are skipped.
func (p Program) Repair() (Result, int, error) {
	variant := append(Program(nil), p...)
	for i, ins := range p {
		switch ins.Op {
		case Jmp:
			variant[i].Op = Nop
		case Nop:
			variant[i].Op = Jmp
		default:
			continue
		}
		res, err := variant.Run()
		variant[i] = ins
		if err == nil && res.Outcome == Halt {
			return res, i, nil
		}
	}

	return Result{}, -1, ErrNoRepair
}

// PartOne returns the accumulator just before any instruction runs twice.
// A program that halts instead reports its final accumulator.
func PartOne(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	res, err := p.Run()
	if err != nil {
		return 0, err
	}

	return res.Acc, nil
}

// PartTwo returns the accumulator of the repaired program after it halts.
func PartTwo(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	res, _, err := p.Repair()
	if err != nil {
		return 0, err
	}

	return res.Acc, nil
}

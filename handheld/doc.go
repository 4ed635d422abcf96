// Package handheld solves day 8, Handheld Halting: a boot program for a
// tiny machine with one accumulator.
//
// Instructions:
//
//   - acc ±N  add N to the accumulator, advance by one
//   - jmp ±N  move the program counter by N
//   - nop ±N  advance by one; N is ignored
//
// Run stops when an instruction is about to execute a second time (Loop) or
// when the counter lands exactly one past the last instruction (Halt). A jump
// anywhere else outside the program is ErrOutOfRange. Visited positions are a
// bitset over the program.
//
// Repair flips one jmp to nop or nop to jmp at a time, in program order, and
// returns the first variant that halts.
package handheld

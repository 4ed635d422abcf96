// Package passport solves day 4, Passport Processing.
//
// Records are blank-line separated groups of "key:value" fields. Two
// validation strategies are provided as plain functions sharing the
// Validator type:
//
//   - HasRequiredFields: all of byr iyr eyr hgt hcl ecl pid are present
//     (cid is optional).
//   - IsValid: the required fields are present and each value obeys its rule:
//
//     byr  four digits, 1920..2002
//     iyr  four digits, 2010..2020
//     eyr  four digits, 2020..2030
//     hgt  number followed by cm (150..193) or in (59..76)
//     hcl  '#' followed by exactly six of 0-9 a-f
//     ecl  one of amb blu brn gry grn hzl oth
//     pid  nine digits, leading zeroes included
//
// Unknown keys are ignored. A field token without ':' is a parse error.
package passport

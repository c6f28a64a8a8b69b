// Package blueprint - textual descriptor parsing.
//
// The canonical descriptor is line-oriented, one blueprint per line:
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//	Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs
//	2 ore and 7 obsidian.
//
// (shown wrapped; the real descriptor keeps each blueprint on one line).
//
// Parsing is a deliberately simple regexp pass: this is an external,
// non-algorithmic concern, and malformed input fails fast with sentinels
// before any search begins.
package blueprint

import (
	"regexp"
	"strconv"
	"strings"
)

// headRe captures the blueprint ID and the robot clauses.
var headRe = regexp.MustCompile(`^Blueprint (\d+): (.+?)\.?$`)

// robotRe captures one robot kind and its cost list.
var robotRe = regexp.MustCompile(`^Each ([a-z]+) robot costs (.+)$`)

// costRe captures one "<quantity> <material>" cost term.
var costRe = regexp.MustCompile(`^(\d+) ([a-z]+)$`)

// ParseLine parses a single descriptor line into a validated Blueprint.
//
// Errors: ErrBadSyntax, ErrUnknownMaterial, plus validation sentinels
// from New (ErrNegativeCost cannot occur from the grammar; ErrFreeRobot
// surfaces when a robot clause is missing entirely).
//
// Complexity: O(len(line)).
func ParseLine(line string) (Blueprint, error) {
	head := headRe.FindStringSubmatch(strings.TrimSpace(line))
	if head == nil {
		return Blueprint{}, ErrBadSyntax
	}

	// The grammar guarantees a decimal integer here.
	id, err := strconv.Atoi(head[1])
	if err != nil {
		return Blueprint{}, ErrBadSyntax
	}

	var (
		costs  [NumMaterials]Cost
		clause string
		robot  Material
		mat    Material
		qty    int
		parts  []string
		term   string
	)

	// Each robot clause is separated by ". "; the trailing dot was already
	// stripped by headRe.
	for _, clause = range strings.Split(head[2], ". ") {
		sub := robotRe.FindStringSubmatch(clause)
		if sub == nil {
			return Blueprint{}, ErrBadSyntax
		}
		robot, err = MaterialFromString(sub[1])
		if err != nil {
			return Blueprint{}, err
		}

		parts = strings.Split(sub[2], " and ")
		for _, term = range parts {
			c := costRe.FindStringSubmatch(term)
			if c == nil {
				return Blueprint{}, ErrBadSyntax
			}
			qty, err = strconv.Atoi(c[1])
			if err != nil {
				return Blueprint{}, ErrBadSyntax
			}
			mat, err = MaterialFromString(c[2])
			if err != nil {
				return Blueprint{}, err
			}
			costs[robot][mat] = qty
		}
	}

	return New(id, costs)
}

// Parse parses a whole descriptor document: one blueprint per non-blank
// line, in order. Returns the first parse error encountered.
//
// Complexity: O(len(input)).
func Parse(input string) ([]Blueprint, error) {
	var (
		line string
		bp   Blueprint
		err  error
		out  []Blueprint
	)
	for _, line = range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		bp, err = ParseLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}

	return out, nil
}

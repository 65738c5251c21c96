//go:build ignore

// Offline variant of the table [build] computes at init: walks the same
// rank-count vectors and prints them as a literal Go map, for deployments
// that would rather pay the size cost of a committed table than the
// startup cost of computing it. Not wired into the package build; run
// manually with `go run gen.go` and redirect into a new file to adopt it.
package main

import (
	"fmt"
	"os"
)

type profile struct {
	complete, partial int
	hasPair            bool
}

const maxPrecomputed = 9

func main() {
	fmt.Fprintln(os.Stdout, "// Code generated by gen.go. DO NOT EDIT.")
	fmt.Fprintln(os.Stdout, "package suittab")
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "var generatedTable = map[uint32][]Profile{")
	var counts [9]uint8
	var walk func(i, total int)
	walk = func(i, total int) {
		if i == 9 {
			key := keyOf(counts)
			profiles := profilesFor(counts)
			if len(profiles) > 0 {
				fmt.Fprintf(os.Stdout, "\t%d: {", key)
				for _, p := range profiles {
					fmt.Fprintf(os.Stdout, "{Complete: %d, Partial: %d, HasPair: %t}, ", p.complete, p.partial, p.hasPair)
				}
				fmt.Fprintln(os.Stdout, "},")
			}
			return
		}
		for c := uint8(0); c <= 4; c++ {
			if total+int(c) > maxPrecomputed {
				break
			}
			counts[i] = c
			walk(i+1, total+int(c))
		}
		counts[i] = 0
	}
	walk(0, 0)
	fmt.Fprintln(os.Stdout, "}")
}

func keyOf(counts [9]uint8) uint32 {
	var k uint32
	for _, c := range counts {
		k = k*5 + uint32(c)
	}
	return k
}

func profilesFor(counts [9]uint8) []profile {
	seen := make(map[profile]bool)
	var out []profile
	var rec func(c [9]uint8, complete, partial int, hasPair bool)
	rec = func(c [9]uint8, complete, partial int, hasPair bool) {
		i := -1
		for idx, v := range c {
			if v > 0 {
				i = idx
				break
			}
		}
		if i < 0 {
			p := profile{complete, partial, hasPair}
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			return
		}
		if !hasPair && c[i] >= 2 {
			d := c
			d[i] -= 2
			rec(d, complete, partial, true)
		}
		if c[i] >= 3 {
			d := c
			d[i] -= 3
			rec(d, complete+1, partial, hasPair)
		}
		if i+2 < 9 && c[i+1] > 0 && c[i+2] > 0 {
			d := c
			d[i]--
			d[i+1]--
			d[i+2]--
			rec(d, complete+1, partial, hasPair)
		}
		if c[i] >= 2 {
			d := c
			d[i] -= 2
			rec(d, complete, partial+1, hasPair)
		}
		if i+1 < 9 && c[i+1] > 0 {
			d := c
			d[i]--
			d[i+1]--
			rec(d, complete, partial+1, hasPair)
		}
		if i+2 < 9 && c[i+2] > 0 {
			d := c
			d[i]--
			d[i+2]--
			rec(d, complete, partial+1, hasPair)
		}
		d := c
		d[i]--
		rec(d, complete, partial, hasPair)
	}
	rec(counts, 0, 0, false)
	return out
}

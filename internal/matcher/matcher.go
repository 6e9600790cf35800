// Package matcher implements the subsequence fuzzy matcher that ranks
// console names for search and autocomplete.
package matcher

import (
	"sort"
	"unicode"
)

// Scoring weights.
const (
	ScoreMatch        = 1
	ScoreConsecutive  = 10
	ScoreWordBoundary = 5
	ScorePrefix       = 20
)

// Result is a successful match. Indices are rune positions in the candidate,
// in ascending order, one per query rune.
type Result struct {
	Score   int
	Indices []int
}

// Match reports whether every rune of query appears in candidate in order,
// ignoring case, and scores the greedy leftmost placement.
//
// An empty query matches everything with score zero.
func Match(query, candidate string) (Result, bool) {
	if query == "" {
		return Result{}, true
	}
	q := []rune(query)
	c := []rune(candidate)
	if len(q) > len(c) {
		return Result{}, false
	}

	res := Result{Indices: make([]int, 0, len(q))}
	if hasFoldedPrefix(c, q) {
		res.Score += ScorePrefix
	}

	qi, prev := 0, -2
	for i := 0; i < len(c) && qi < len(q); i++ {
		if !foldEqual(c[i], q[qi]) {
			continue
		}
		res.Score += ScoreMatch
		if prev == i-1 {
			res.Score += ScoreConsecutive
		}
		if i == 0 || isSeparator(c[i-1]) {
			res.Score += ScoreWordBoundary
		}
		res.Indices = append(res.Indices, i)
		prev = i
		qi++
	}
	if qi < len(q) {
		return Result{}, false
	}
	return res, true
}

// Ranked is a candidate paired with its match.
type Ranked struct {
	Candidate string
	Result
}

// MatchAndSort matches query against every candidate and returns the matches
// ordered by descending score, ties broken by candidate ascending.
func MatchAndSort(query string, candidates []string) []Ranked {
	out := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if r, ok := Match(query, c); ok {
			out = append(out, Ranked{Candidate: c, Result: r})
		}
	}
	Sort(out)
	return out
}

// Sort orders ranked matches by descending score then candidate.
func Sort(r []Ranked) {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Score != r[j].Score {
			return r[i].Score > r[j].Score
		}
		return r[i].Candidate < r[j].Candidate
	})
}

func foldEqual(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}

func hasFoldedPrefix(c, q []rune) bool {
	for i := range q {
		if !foldEqual(c[i], q[i]) {
			return false
		}
	}
	return true
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

package search

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/coregx/ahocorasick"
	"github.com/creachadair/taskgroup"

	"github.com/coregx/narq/internal/conv"
	"github.com/coregx/narq/internal/sparse"
	"github.com/coregx/narq/rolling"
)

// Multi is a verified multi-pattern Rabin-Karp matcher.
//
// Needles are grouped by length. Each group is matched with a single
// rolling-hash sweep of the haystack: a table maps needle hashes to the
// needles sharing them, and each haystack window whose hash is in the table
// is compared byte by byte against those needles. The haystack is therefore
// scanned once per distinct needle length rather than once per needle, and
// every reported offset is exact (the result for each needle equals what
// Exact reports for it alone).
//
// A Multi is immutable and safe for concurrent use.
type Multi struct {
	params      rolling.Params
	prefilter   bool
	parallelism int
}

// NewMulti returns a Multi matcher.
// Returns a *ConfigError if cfg is invalid.
func NewMulti(cfg Config) (*Multi, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Multi{
		params:      cfg.Hash,
		prefilter:   cfg.Prefilter,
		parallelism: cfg.Parallelism,
	}, nil
}

// Index returns one result per needle, in input order: the first offset at
// which that needle occurs in haystack, or -1.
//
// Example:
//
//	m, _ := search.NewMulti(search.DefaultConfig())
//	got := m.Index([][]byte{[]byte("ab"), []byte("aab"), []byte("aaab")}, []byte("aaaab"))
//	// got == []int{3, 2, 1}
func (mm *Multi) Index(needles [][]byte, haystack []byte) []int {
	p := newPlan(needles, len(haystack))
	results := p.initial

	if len(p.groups) != 0 && (!mm.prefilter || p.anyPresent(needles, haystack)) {
		mm.sweepAll(p.groups, needles, haystack, results)
	}

	for j, c := range p.alias {
		if c >= 0 {
			results[j] = results[c]
		}
	}
	return results
}

// String names the algorithm.
func (mm *Multi) String() string { return "rabin-karp-multi" }

// group is the set of distinct needles of one length.
type group struct {
	width   int
	members []int // needle indices, ascending
}

// plan is the per-call grouping of the needles. It is built fresh on every
// call and dropped when the call returns.
type plan struct {
	initial []int    // result for each needle before any sweep
	alias   []int    // index of the identical needle that gets swept, or -1
	groups  []*group // ascending by width
}

// newPlan classifies needles against a haystack of length n.
//
// Empty needles resolve to 0 and needles longer than the haystack to -1
// immediately. The rest are coalesced by content, so a needle repeated k
// times is hashed and verified once, and grouped by length.
func newPlan(needles [][]byte, n int) *plan {
	p := &plan{
		initial: make([]int, len(needles)),
		alias:   make([]int, len(needles)),
	}
	seen := make(map[uint64][]int)
	byWidth := make(map[int]*group)
	for j, needle := range needles {
		p.alias[j] = -1
		pos, ok := trivial(len(needle), n)
		if ok {
			p.initial[j] = pos
			continue
		}
		p.initial[j] = -1

		fp := xxhash.Sum64(needle)
		if c, dup := findSame(seen[fp], needles, needle); dup {
			p.alias[j] = c
			continue
		}
		seen[fp] = append(seen[fp], j)

		g, ok := byWidth[len(needle)]
		if !ok {
			g = &group{width: len(needle)}
			byWidth[len(needle)] = g
			p.groups = append(p.groups, g)
		}
		g.members = append(g.members, j)
	}
	slices.SortFunc(p.groups, func(a, b *group) int { return cmp.Compare(a.width, b.width) })
	return p
}

// findSame returns the candidate whose needle equals needle.
func findSame(cands []int, needles [][]byte, needle []byte) (int, bool) {
	for _, c := range cands {
		if bytes.Equal(needles[c], needle) {
			return c, true
		}
	}
	return -1, false
}

// anyPresent reports whether at least one swept needle occurs in haystack.
// A failure to build the automaton is treated as "maybe", so the sweeps
// still run.
func (p *plan) anyPresent(needles [][]byte, haystack []byte) bool {
	builder := ahocorasick.NewBuilder()
	for _, g := range p.groups {
		for _, j := range g.members {
			builder.AddPattern(needles[j])
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return true
	}
	return auto.IsMatch(haystack)
}

// sweepAll runs one sweep per group. Groups own disjoint result slots, so
// concurrent sweeps need no synchronization beyond waiting for them.
func (mm *Multi) sweepAll(groups []*group, needles [][]byte, haystack []byte, results []int) {
	if mm.parallelism <= 1 || len(groups) == 1 {
		for _, g := range groups {
			mm.sweep(g, needles, haystack, results)
		}
		return
	}

	tg, run := taskgroup.New(nil).Limit(mm.parallelism)
	for _, g := range groups {
		run(taskgroup.NoError(func() {
			mm.sweep(g, needles, haystack, results)
		}))
	}
	tg.Wait()
}

// sweep rolls a window of g.width across haystack and records, for each
// member of g, the first verified offset.
func (mm *Multi) sweep(g *group, needles [][]byte, haystack []byte, results []int) {
	h := newHasher(mm.params, g.width)

	// Members are identified by their position in g.members.
	buckets := make(map[uint64][]uint32, len(g.members))
	for local, j := range g.members {
		key := h.Init(needles[j])
		buckets[key] = append(buckets[key], conv.IntToUint32(local))
	}
	done := sparse.NewSparseSet(conv.IntToUint32(len(g.members)))

	m, n := h.Width(), len(haystack)
	v := h.Init(haystack)
	for i := 0; ; i++ {
		if cands, ok := buckets[v]; ok {
			window := haystack[i : i+m]
			for _, local := range cands {
				if done.Contains(local) {
					continue
				}
				j := g.members[local]
				if bytes.Equal(window, needles[j]) {
					results[j] = i
					done.Insert(local)
					break // members are distinct, at most one equals window
				}
			}
			if done.Len() == done.Cap() {
				return
			}
		}
		if i+m >= n {
			return
		}
		v = h.Roll(v, haystack[i], haystack[i+m])
	}
}

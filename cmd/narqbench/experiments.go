package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/coregx/narq/cmd/narqbench/config"
	"github.com/coregx/narq/search"
	"github.com/coregx/narq/simd"
)

var experimentNames = []string{"needle", "haystack", "multi-needle", "multi-haystack"}

// memmem adapts simd.Memmem, whose arguments are in the opposite order.
type memmem struct{}

func (memmem) Index(needle, haystack []byte) int { return simd.Memmem(haystack, needle) }
func (memmem) String() string                    { return "memmem" }

type runner struct {
	cfg    *config.Settings
	log    *log.Logger
	single []search.Searcher
	multi  *search.Multi
}

func newRunner(cfg *config.Settings, logger *log.Logger) (*runner, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sc := search.DefaultConfig()
	sc.Epsilon = cfg.Epsilon
	sc.Parallelism = cfg.Parallelism
	sc.Prefilter = cfg.Prefilter

	exact, err := search.NewExact(sc)
	if err != nil {
		return nil, err
	}
	mc, err := search.NewProbabilistic(sc, rand.New(rand.NewPCG(cfg.Seed, 0)))
	if err != nil {
		return nil, err
	}
	multi, err := search.NewMulti(sc)
	if err != nil {
		return nil, err
	}
	return &runner{
		cfg:    cfg,
		log:    logger,
		single: []search.Searcher{search.Brute{}, exact, mc, memmem{}},
		multi:  multi,
	}, nil
}

// run executes the named experiment and writes its CSV file, along with a
// description of the machine it ran on.
func (r *runner) run(name string) error {
	var header []string
	var rows [][]string
	switch name {
	case "needle":
		header, rows = r.needleSizes()
	case "haystack":
		header, rows = r.haystackSizes()
	case "multi-needle":
		header, rows = r.needleCounts()
	case "multi-haystack":
		header, rows = r.multiHaystackSizes()
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}

	if err := os.MkdirAll(r.cfg.OutDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(r.cfg.OutDir, name+".csv")
	if err := writeCSV(path, header, rows); err != nil {
		return err
	}
	r.log.Printf("%s: wrote %d rows to %s", name, len(rows), path)
	return writeCSV(filepath.Join(r.cfg.OutDir, "environment.csv"), []string{"key", "value"}, r.environment())
}

func (r *runner) environment() [][]string {
	return [][]string{
		{"goos", runtime.GOOS},
		{"goarch", runtime.GOARCH},
		{"cpu", strings.Join(simd.Features(), " ")},
		{"seed", strconv.FormatUint(r.cfg.Seed, 10)},
		{"epsilon", strconv.FormatFloat(r.cfg.Epsilon, 'g', -1, 64)},
		{"parallelism", strconv.Itoa(r.cfg.Parallelism)},
		{"prefilter", strconv.FormatBool(r.cfg.Prefilter)},
	}
}

// generate returns n copies of letter.
func generate(n int, letter byte) []byte {
	return bytes.Repeat([]byte{letter}, n)
}

// worstNeedle returns size-1 'a's followed by a 'b'. Against a run of 'a's
// every window agrees with it in all but the last byte.
func worstNeedle(size int) []byte {
	return append(generate(max(size-1, 0), 'a'), 'b')
}

func (r *runner) singleHeader() []string {
	header := []string{"needle size", "haystack size"}
	for _, s := range r.single {
		header = append(header, s.String()+" (ms)", s.String()+" index")
	}
	return header
}

func (r *runner) singleRow(needle, haystack []byte) []string {
	row := []string{strconv.Itoa(len(needle)), strconv.Itoa(len(haystack))}
	for _, s := range r.single {
		start := time.Now()
		pos := s.Index(needle, haystack)
		row = append(row, millis(time.Since(start)), strconv.Itoa(pos))
	}
	return row
}

func (r *runner) needleSizes() ([]string, [][]string) {
	haystack := generate(r.cfg.MaxHaystack, 'a')
	sizes := config.Steps(r.cfg.MinNeedle, r.cfg.MaxNeedle, r.cfg.Increment)
	var rows [][]string
	for i, size := range sizes {
		rows = append(rows, r.singleRow(worstNeedle(size), haystack))
		r.progress("needle", i, len(sizes))
	}
	return r.singleHeader(), rows
}

func (r *runner) haystackSizes() ([]string, [][]string) {
	needle := worstNeedle(r.cfg.MinNeedle)
	sizes := config.Steps(r.cfg.MinHaystack, r.cfg.MaxHaystack, r.cfg.Increment)
	var rows [][]string
	for i, size := range sizes {
		rows = append(rows, r.singleRow(needle, generate(size, 'a')))
		r.progress("haystack", i, len(sizes))
	}
	return r.singleHeader(), rows
}

var multiHeader = []string{"needle count", "haystack size", "multi (ms)", "found", "offset sum"}

func (r *runner) multiRow(needles [][]byte, haystack []byte) []string {
	start := time.Now()
	results := r.multi.Index(needles, haystack)
	elapsed := time.Since(start)

	found, sum := 0, 0
	for _, pos := range results {
		if pos >= 0 {
			found++
			sum += pos
		}
	}
	return []string{
		strconv.Itoa(len(needles)), strconv.Itoa(len(haystack)),
		millis(elapsed), strconv.Itoa(found), strconv.Itoa(sum),
	}
}

// needleCounts searches for "b", "ab", "aab", ... with one more needle per
// step than the count, against the largest haystack.
func (r *runner) needleCounts() ([]string, [][]string) {
	haystack := generate(r.cfg.MaxHaystack, 'a')
	counts := config.Steps(r.cfg.MinNeedles, r.cfg.MaxNeedles, r.cfg.NeedleStep)
	var rows [][]string
	for i, count := range counts {
		needles := make([][]byte, count+1)
		for j := range needles {
			needles[j] = worstNeedle(j)
		}
		rows = append(rows, r.multiRow(needles, haystack))
		r.progress("multi-needle", i, len(counts))
	}
	return multiHeader, rows
}

// multiHaystackSizes searches for count+1 copies of the smallest needle in
// each haystack size.
func (r *runner) multiHaystackSizes() ([]string, [][]string) {
	counts := config.Steps(r.cfg.MinNeedles, r.cfg.MaxNeedles, r.cfg.NeedleStep)
	sizes := config.Steps(r.cfg.MinHaystack, r.cfg.MaxHaystack, r.cfg.Increment)
	needle := worstNeedle(r.cfg.MinNeedle)
	var rows [][]string
	for i, count := range counts {
		needles := make([][]byte, count+1)
		for j := range needles {
			needles[j] = needle
		}
		for _, size := range sizes {
			rows = append(rows, r.multiRow(needles, generate(size, 'a')))
		}
		r.progress("multi-haystack", i, len(counts))
	}
	return multiHeader, rows
}

func (r *runner) progress(name string, i, n int) {
	r.log.Printf("%s: %d%%", name, 100*(i+1)/n)
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 4, 64)
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

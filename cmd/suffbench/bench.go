package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v2"

	suffixstack "github.com/eutro/SuffixStack"
)

// stackOps erases the difference between the two implementations so the
// same drivers run against both.
type stackOps struct {
	name      string
	append    func(vals []int64)
	hasSuffix func(vals []int64) bool
	truncate  func(size uint64) error
	pop       func(count uint64)
	back      func() (int64, error)
	size      func() uint64
	values    func() []int64
}

func naiveOps() *stackOps {
	stk := &suffixstack.NaiveStack[int64]{}
	return &stackOps{
		name:      "naive",
		append:    stk.Append,
		hasSuffix: stk.HasSuffix,
		truncate:  stk.Truncate,
		pop:       stk.Pop,
		back:      stk.Back,
		size:      stk.Size,
		values:    func() []int64 { return append([]int64{}, stk.Values()...) },
	}
}

func treeOps(arena *suffixstack.Arena) *stackOps {
	stk := suffixstack.NewStack[int64](arena)
	return &stackOps{
		name: "tree",
		append: func(vals []int64) {
			stk.Append(suffixstack.NewSeq(arena, vals))
		},
		hasSuffix: func(vals []int64) bool {
			return stk.HasSuffix(suffixstack.NewSeq(arena, vals))
		},
		truncate: stk.Truncate,
		pop:      stk.Pop,
		back:     stk.Back,
		size:     stk.Size,
		values:   stk.Values,
	}
}

func run(cfg *config) error {
	heading := color.New(color.FgHiCyan, color.Bold)

	heading.Println("Scenario suite")
	if err := runScenarios(naiveOps()); err != nil {
		return err
	}
	if err := runScenarios(treeOps(suffixstack.NewArena(nil))); err != nil {
		return err
	}
	color.HiGreen("ok")

	heading.Printf("Randomised comparison (%d ops, seed %d)\n", cfg.randomCount, cfg.randomSeed)
	return runRandomised(cfg)
}

// scenarioRun collects the first failed expectation of a scenario walk.
type scenarioRun struct {
	ops  *stackOps
	step int
	err  error
}

func (s *scenarioRun) expect(ok bool, format string, args ...interface{}) {
	s.step++
	if s.err == nil && !ok {
		prefix := []interface{}{s.ops.name, s.step}
		s.err = errors.Errorf("%s stack, step %d: "+format, append(prefix, args...)...)
	}
}

func equalVals(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runScenarios walks the fixed suite of appends, pops, truncations and
// suffix checks with known answers.
func runScenarios(ops *stackOps) error {
	str := []int64{0, 0, 1, 1, 2}
	ostr1 := []int64{0, 0, 1}
	ostr2 := []int64{1, 2}

	s := &scenarioRun{ops: ops}

	ops.append(str)
	ops.append(str)
	// 0 0 1 1 2 0 0 1 1 2
	s.expect(ops.size() == 10, "size = %d, want 10", ops.size())
	s.expect(ops.hasSuffix(str), "expected suffix %v", str)

	ops.pop(uint64(len(str)))
	// 0 0 1 1 2
	s.expect(ops.size() == 5, "size = %d, want 5", ops.size())
	s.expect(ops.hasSuffix(str), "expected suffix %v", str)
	s.expect(ops.hasSuffix(ostr2), "expected suffix %v", ostr2)

	ops.pop(uint64(len(ostr2)))
	// 0 0 1
	s.expect(ops.size() == 3, "size = %d, want 3", ops.size())
	s.expect(ops.hasSuffix(ostr1), "expected suffix %v", ostr1)

	ops.append(ostr1)
	ops.append(ostr2)
	// 0 0 1 0 0 1 1 2
	s.expect(ops.size() == 8, "size = %d, want 8", ops.size())
	s.expect(ops.hasSuffix(str), "expected suffix %v", str)

	ops.pop(1)
	// 0 0 1 0 0 1 1
	s.expect(ops.size() == 7, "size = %d, want 7", ops.size())
	s.expect(!ops.hasSuffix(str), "unexpected suffix %v", str)
	s.expect(!ops.hasSuffix(ostr1), "unexpected suffix %v", ostr1)
	s.expect(!ops.hasSuffix(ostr2), "unexpected suffix %v", ostr2)

	ops.pop(1)
	// 0 0 1 0 0 1
	s.expect(ops.size() == 6, "size = %d, want 6", ops.size())
	s.expect(ops.hasSuffix(ostr1), "expected suffix %v", ostr1)
	s.expect(!ops.hasSuffix(str), "unexpected suffix %v", str)
	s.expect(!ops.hasSuffix(ostr2), "unexpected suffix %v", ostr2)
	back, err := ops.back()
	s.expect(err == nil && back == 1, "back = %d (%v), want 1", back, err)

	ops.append([]int64{2})
	// 0 0 1 0 0 1 2
	s.expect(ops.size() == 7, "size = %d, want 7", ops.size())
	s.expect(ops.hasSuffix(ostr2), "expected suffix %v", ostr2)
	s.expect(ops.hasSuffix([]int64{2}), "expected suffix [2]")
	s.expect(!ops.hasSuffix(ostr1), "unexpected suffix %v", ostr1)
	s.expect(!ops.hasSuffix(str), "unexpected suffix %v", str)
	back, err = ops.back()
	s.expect(err == nil && back == 2, "back = %d (%v), want 2", back, err)

	contents := ops.values()
	want := []int64{0, 0, 1, 0, 0, 1, 2}
	s.expect(equalVals(contents, want), "contents = %v, want %v", contents, want)

	s.expect(ops.truncate(0) == nil, "truncate(0) failed")
	s.expect(ops.size() == 0, "size = %d, want 0 after truncate", ops.size())

	// rebuild past a power of two and truncate back down
	nineteen := make([]int64, 19)
	for i := range nineteen {
		nineteen[i] = int64(i + 1)
	}
	padding := make([]int64, 176-19)
	for i := range padding {
		padding[i] = 1
	}
	ops.append(nineteen)
	ops.append(padding)
	s.expect(ops.size() == 176, "size = %d, want 176", ops.size())
	s.expect(ops.truncate(19) == nil, "truncate(19) failed")
	s.expect(ops.hasSuffix(nineteen), "expected suffix %v", nineteen)
	s.expect(ops.size() == 19, "size = %d, want 19", ops.size())

	return s.err
}

// runRandomised drives both implementations with the same random operation
// stream, comparing every observable result and timing each side.
func runRandomised(cfg *config) error {
	rng := rand.New(rand.NewSource(int64(cfg.randomSeed)))
	arena := suffixstack.NewArena(nil)
	baseline := &suffixstack.NaiveStack[int64]{}
	stk := suffixstack.NewStack[int64](arena)

	baselineClk := newCumulativeTimer()
	implClk := newCumulativeTimer()

	var bar *progressbar.ProgressBar
	if !cfg.printOps && !cfg.printVecs {
		bar = progressbar.New(int(cfg.randomCount))
	}

	// inclusive draw, like the bound on a suffix of the whole stack
	randInt := func(n uint64) uint64 {
		return uint64(rng.Int63n(int64(n) + 1))
	}

	index := func(vals []int64) *suffixstack.Seq[int64] {
		implClk.start()
		seq := suffixstack.NewSeq(arena, vals)
		implClk.finish("index")
		return seq
	}

	var opErr error

	doAppend := func() {
		count := randInt(cfg.maxPush)
		if cfg.printOps {
			fmt.Printf("Appending p=%d\n", count)
		}
		vals := make([]int64, count)
		for i := range vals {
			vals[i] = rng.Int63n(128)
		}
		seq := index(vals)
		baselineClk.time("append", func() { baseline.Append(vals) })
		implClk.time("append", func() { stk.Append(seq) })
	}

	doCheck := func() {
		if baseline.Size() == 0 {
			doAppend()
			return
		}
		count := randInt(baseline.Size())
		suffix := baseline.Values()[baseline.Size()-count:]
		if cfg.printOps {
			fmt.Printf("Checking suffix p=%d\n", count)
			if cfg.printVecs {
				fmt.Printf(" v = %v\n", suffix)
			}
		}
		seq := index(suffix)
		baseCorrect := baselineClk.timeBool("has_suffix", func() bool { return baseline.HasSuffix(suffix) })
		correct := implClk.timeBool("has_suffix", func() bool { return stk.HasSuffix(seq) })
		if !baseCorrect || !correct {
			opErr = errors.Errorf("incorrect suffix of length %d (baseline %v, tree %v)", count, baseCorrect, correct)
		}
	}

	doPop := func() {
		if baseline.Size() == 0 {
			doCheck()
			return
		}
		count := randInt(baseline.Size()) / cfg.popRatio
		if cfg.printOps {
			fmt.Printf("Popping p=%d\n", count)
		}
		baselineClk.time("truncate", func() { baseline.Pop(count) })
		implClk.time("truncate", func() { stk.Pop(count) })
	}

	var totalHeight float64
	for op := uint64(0); op < cfg.randomCount && opErr == nil; op++ {
		switch rng.Intn(3) {
		case 0:
			doPop()
		case 1:
			doAppend()
		default:
			doCheck()
		}

		if cfg.printOps {
			fmt.Printf("Checking length n=%d\n", baseline.Size())
		}
		if baseline.Size() != stk.Size() {
			opErr = errors.Errorf("op %d: baseline size %d, tree size %d", op, baseline.Size(), stk.Size())
		}
		if cfg.printVecs {
			fmt.Printf(" Expected: %v\n", baseline.Values())
			fmt.Printf("   Actual: %v\n", stk.Values())
		}
		totalHeight += float64(baseline.Size())

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}

	if opErr != nil {
		if cfg.printVecs {
			fmt.Printf(" Expected: %v\n", baseline.Values())
			fmt.Printf("   Actual: %v\n", stk.Values())
		}
		return opErr
	}

	fmt.Printf("Average height: %.1f\n", totalHeight/float64(cfg.randomCount))

	color.New(color.FgHiYellow).Println("Baseline:")
	baselineClk.render(os.Stdout)
	color.New(color.FgHiYellow).Println("Benchmarked:")
	implClk.render(os.Stdout)
	return nil
}

package main

import (
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

type opTotals struct {
	duration time.Duration
	count    uint64
}

// cumulativeTimer accumulates wall clock time per operation tag.
type cumulativeTimer struct {
	totals map[string]*opTotals
	last   time.Time
}

func newCumulativeTimer() *cumulativeTimer {
	return &cumulativeTimer{totals: map[string]*opTotals{}}
}

func (c *cumulativeTimer) start() { c.last = time.Now() }

func (c *cumulativeTimer) finish(tag string) {
	total := c.totals[tag]
	if total == nil {
		total = &opTotals{}
		c.totals[tag] = total
	}
	total.duration += time.Since(c.last)
	total.count++
}

func (c *cumulativeTimer) time(tag string, f func()) {
	c.start()
	f()
	c.finish(tag)
}

func (c *cumulativeTimer) timeBool(tag string, f func() bool) bool {
	c.start()
	ret := f()
	c.finish(tag)
	return ret
}

func (c *cumulativeTimer) render(w io.Writer) {
	tags := make([]string, 0, len(c.totals))
	for tag := range c.totals {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Operation", "Time", "Count"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, tag := range tags {
		total := c.totals[tag]
		table.Append([]string{
			tag,
			total.duration.String(),
			strconv.FormatUint(total.count, 10),
		})
	}
	table.Render()
}

// Package filtergraph builds labeled FFmpeg filter graphs.
//
// A graph is an ordered chain of segments. Each segment consumes the
// previous segment's output label and produces a new one, so the chain
// serializes as [in]expr[out];[out]expr[out2];... suitable for
// -filter_complex.
package filtergraph

import (
	"fmt"
	"strings"
)

// Segment is a single filter in the graph with its input and output
// edge labels.
type Segment struct {
	Input  string
	Expr   string
	Output string
}

// String serializes the segment as [input]expr[output].
func (s Segment) String() string {
	return fmt.Sprintf("[%s]%s[%s]", s.Input, s.Expr, s.Output)
}

// Chain accumulates filter segments for a single video stream.
// Labels are generated as 0:vf:{stream}-{n} with n counting from 1
// across the whole chain; the first segment consumes the raw stream
// label 0:v:{stream}.
type Chain struct {
	streamIndex int
	segments    []Segment
}

// NewChain creates an empty chain for the given video stream index.
func NewChain(streamIndex int) *Chain {
	return &Chain{streamIndex: streamIndex}
}

// InputLabel returns the raw stream label the chain starts from.
func (c *Chain) InputLabel() string {
	return fmt.Sprintf("0:v:%d", c.streamIndex)
}

// Append adds a filter expression to the end of the chain, wiring its
// input to the previous segment's output label.
func (c *Chain) Append(expr string) *Chain {
	in := c.FinalLabel()
	out := fmt.Sprintf("0:vf:%d-%d", c.streamIndex, len(c.segments)+1)
	c.segments = append(c.segments, Segment{Input: in, Expr: expr, Output: out})
	return c
}

// Empty reports whether the chain has no segments.
func (c *Chain) Empty() bool {
	return len(c.segments) == 0
}

// Len returns the number of segments in the chain.
func (c *Chain) Len() int {
	return len(c.segments)
}

// FinalLabel returns the output label of the last segment, or the raw
// stream label when the chain is empty.
func (c *Chain) FinalLabel() string {
	if len(c.segments) == 0 {
		return c.InputLabel()
	}
	return c.segments[len(c.segments)-1].Output
}

// String serializes the chain with segments joined by semicolons.
// An empty chain serializes as the empty string.
func (c *Chain) String() string {
	if len(c.segments) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.segments))
	for _, seg := range c.segments {
		parts = append(parts, seg.String())
	}
	return strings.Join(parts, ";")
}

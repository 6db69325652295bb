// Package sequences provides forward-only, single-pass, pull-based cursors
// and the stages that compose them.
//
// A Sequence is consumed by repeatedly checking HasCurrent, reading Current
// and calling Advance. Stages wrap an upstream Sequence and take exclusive
// ownership of it:
//
//	lines := sequences.NewLineSource(file)
//	requests := sequences.Map(lines, ingestors.ToRequest)
//	recent := sequences.Filter(requests, func(r models.Request) bool {
//		return r.Timestamp >= from
//	})
//
// Nothing is buffered between stages. Each stage holds at most the current
// element, so a chain of any depth uses constant memory regardless of the
// size of the input. Elements are produced only when the consumer asks for
// them: Map applies its function the first time Current is called for a
// position and caches the result until Advance, and Filter probes its
// upstream only as far as the next matching element.
//
// A Filter cursor is always either exhausted or positioned on an element that
// satisfies its predicate. Chained filters rely on this: the outer filter
// never observes an element the inner one rejected.
//
// Sequences are not safe for concurrent use and cannot be rewound. To run a
// second query over the same input, reopen the input and build a new chain.
package sequences

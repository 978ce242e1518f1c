// Package accumulator implements the handler accumulator: a bounded,
// deduplicating FIFO work-queue over handler indices, realized as an
// intrusive singly-linked list of "is this handler queued" embedded in
// an array indexed by handler id.
//
// What:
//
//   - next[i] == notInList means handler i is not queued.
//   - next[i] == tailSentinel means handler i is the last queued
//     entry.
//   - otherwise next[i] is the index of the next queued handler.
//
// Why:
//
//   - A handler may be re-enqueued by another handler mid-drain; dedup
//     keeps it in the queue at most once simultaneously while still
//     letting it run many times across one drain.
//   - O(1) push/pop with zero heap allocation per operation: the
//     array is sized once, at construction, to the handler count.
//
// Complexity:
//
//   - AddForCell / AddAuxForCell / AddForFixedCell / TakeNext: O(1)
//     amortized per handler touched.
package accumulator

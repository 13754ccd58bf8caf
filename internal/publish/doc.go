// Package publish runs the ordered save → render → verify → copy →
// status-commit pipeline with abort-on-first-failure semantics.
//
// Each stage runs only after the previous one succeeded; the first
// failure absorbs the transaction into an aborted outcome and no later
// stage runs. The status commit is deliberately last: it is the only
// stage with hard-to-reverse external effects, and by construction it
// never claims work that was not rendered, verified, and copied.
// Aborts do not roll back completed stages; stale files on disk are an
// accepted failure mode, stale database claims are not.
package publish

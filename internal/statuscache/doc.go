// Package statuscache prefetches pipeline status for many (item, step)
// pairs at once so a chooser UI can populate in a single pass. Lookups
// fan out over a bounded worker pool and the caller blocks until every
// one finishes; individual failures read as "no status" rather than
// aborting the batch.
package statuscache

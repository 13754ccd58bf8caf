// Package journal persists publish outcomes to a local SQLite
// database. The journal is renderpub's own record of what each publish
// produced (or where it aborted); the pipeline database remains an
// external collaborator and is never written by this package.
package journal

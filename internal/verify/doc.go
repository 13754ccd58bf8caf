// Package verify inspects the file system after a render to decide
// whether usable output exists. It is the sole authority the publish
// pipeline trusts for that decision; a render collaborator reporting
// success is never sufficient on its own.
package verify

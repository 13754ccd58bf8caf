// Package hook runs the configured external commands that stand in for
// the host application and the asset database: the render trigger and
// the status-commit call. Each hook is a plain executable invocation
// with a timeout; a non-zero exit is the collaborator reporting
// failure.
package hook

// Package debug provides optional file-based debug logging.
//
// When the BOXFLOW_DEBUG environment variable is set to a file path, trace
// output from reflow passes is appended to that file. Otherwise, logging is
// a no-op.
package debug

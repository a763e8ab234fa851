// Package err provides the error base shared by every megadvc package.
//
// Each package defines its own error types that embed a *err.Error and add
// the fields a caller needs to act on the failure:
//
//	type FileAbsentError struct {
//	    baseError *err.Error
//	    Path      string
//	}
//
// Callers categorise failures by code rather than by concrete type:
//
//	if err.IsCode(e, err.CodeRepositoryAbsent) {
//	    // tell the user to run init
//	}
//
// Codes are UPPER_SNAKE_CASE strings. The shared ones (CodeIO,
// CodeSerialization, CodeRepositoryAbsent, ...) cover the error taxonomy of
// the snapshot, remote and repository layers.
package err

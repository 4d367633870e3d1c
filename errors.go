package ontotag

import (
	"errors"

	"github.com/brunobiangulo/ontotag/ontology"
)

// Stage errors surfaced by an annotation run. The three storage errors
// are aliases of the ontology package's sentinels so callers can
// errors.Is against the facade without importing the inner package.
var (
	// ErrStorageRead means the ontology source could not be read;
	// nothing was mutated.
	ErrStorageRead = ontology.ErrRead

	// ErrMalformedGraph means the document did not parse into the
	// expected relation sequence; nothing was mutated.
	ErrMalformedGraph = ontology.ErrMalformed

	// ErrStorageWrite means the destination could not be written. The
	// destination may be left truncated; the annotated graph in memory
	// is lost.
	ErrStorageWrite = ontology.ErrWrite

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("ontotag: invalid configuration")
)

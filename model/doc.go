// Package model defines the shared result types produced by the
// extraction pipeline: the extraction result itself, coordinate-tagged
// text spans, detected tables, document metadata, and warnings.
//
// Types in this package are plain structs with exported fields. They
// carry no behavior beyond serialization helpers, so every other
// package can depend on them without pulling in extraction logic.
package model

// Package text provides pure-function helpers for normalizing and
// aggregating extracted text: whitespace cleanup, page joining, and
// byte-encoding detection.
package text

// Package model defines the data structures for doctest reconciliation.
package model

// Path represents a file system path.
type Path string

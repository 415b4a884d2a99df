package model

// DocFile describes a scanned source file containing doctest examples.
type DocFile struct {
	Path     Path
	Hash     string
	Examples int
	FileTags TagSet
}

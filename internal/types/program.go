package types

// TopLevelItem pairs a top-level AST node with the canonical path of the
// file it was parsed from. File is "" for nodes belonging to the entry
// file. Included files' top-level nodes are spliced into the surrounding
// item sequence in place of their @include directive but keep their File
// tag, so the code generator can still tell which items came from where
// when deciding how to run a file's non-function top-level code.
type TopLevelItem struct {
	Node Node
	File string
}

// Program is the result of parsing one translation unit: the entry file
// plus the transitive closure of its @include directives, already spliced
// into a single ordered item sequence.
type Program struct {
	Items []TopLevelItem
	// IncludedFiles lists every included file's canonical path, in the
	// order each was first encountered (depth-first, matching @include
	// resolution order).
	IncludedFiles []string
}

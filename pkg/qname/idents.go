package qname

// Special member names used by the resolution core.  Declaration files never
// contain these spellings as ordinary identifiers.
const (
	// DefaultExport is the name under which a module's default export is
	// indexed.
	DefaultExport = "default"

	// NamespacedExport is the name under which an `export =` / namespace
	// export is indexed.
	NamespacedExport = "^"

	// GlobalBlock is the display name of an unnamed `global {}` block.
	GlobalBlock = "<global>"
)

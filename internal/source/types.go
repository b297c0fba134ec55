package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHasBOM indicates the raw content starts with a UTF-8 BOM.
	// The BOM bytes stay in Content: every byte of input must survive
	// into the token stream.
	FileHasBOM
)

// File captures metadata and content for a single source file.
// Content is never normalized or rewritten after Add; all spans,
// tokens and tree nodes are views into this buffer.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

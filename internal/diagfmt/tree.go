package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"vb6cst/internal/cst"
)

// FormatTree writes the deterministic nested-text dump of a tree.
func FormatTree(w io.Writer, tree *cst.Tree) error {
	_, err := io.WriteString(w, tree.DebugDump())
	return err
}

// FormatTreeJSON writes the tree's snapshot projection as indented
// JSON, suitable for machine diffing and snapshot tests.
func FormatTreeJSON(w io.Writer, tree *cst.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree.Snapshot())
}

// FormatProjectJSON is a tiny helper for any JSON-encodable record the
// CLI wants to dump, used by the project subcommand.
func FormatProjectJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	return nil
}

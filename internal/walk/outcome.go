// Package walk applies the sanitize engine to filesystem paths: it renames
// single entries, walks directory subtrees depth first, and aggregates one
// outcome record per visited path.
package walk

import "encoding/json"

// Kind discriminates the four per-path outcome variants.
type Kind int

const (
	// KindUnchanged means the sanitized name equals the original.
	KindUnchanged Kind = iota
	// KindChanged means the rename was applied.
	KindChanged
	// KindErrorRename means a rename was desired but not applied; this
	// covers both real rename failures and dry-run previews.
	KindErrorRename
	// KindError means a non-rename failure occurred while traversing,
	// e.g. an unreadable directory.
	KindError
)

// DryRunReason is the fixed reason recorded on simulated renames so callers
// can tell "would rename" apart from "failed to rename".
const DryRunReason = "dry-run"

// Outcome records the result of sanitizing one path. Outcomes are created
// once per visited path and never mutated afterwards.
type Outcome struct {
	Kind     Kind
	Path     string // original path
	Modified string // candidate or applied new path; empty unless a rename was desired
	Reason   string // failure or preview reason; empty for Unchanged and Changed
}

// Unchanged reports that path needed no rename.
func Unchanged(path string) Outcome {
	return Outcome{Kind: KindUnchanged, Path: path}
}

// Changed reports that path was renamed to modified.
func Changed(path, modified string) Outcome {
	return Outcome{Kind: KindChanged, Path: path, Modified: modified}
}

// RenameError reports that renaming path to modified was desired but not
// applied, for the given reason.
func RenameError(path, modified, reason string) Outcome {
	return Outcome{Kind: KindErrorRename, Path: path, Modified: modified, Reason: reason}
}

// TraversalError reports a non-rename failure at path.
func TraversalError(path, reason string) Outcome {
	return Outcome{Kind: KindError, Path: path, Reason: reason}
}

// IsDryRun reports whether o is a dry-run preview rather than a real error.
func (o Outcome) IsDryRun() bool {
	return o.Kind == KindErrorRename && o.Reason == DryRunReason
}

// IsError reports whether o records a failure or a preview; Unchanged and
// Changed outcomes are not errors.
func (o Outcome) IsError() bool {
	return o.Kind == KindErrorRename || o.Kind == KindError
}

// jsonOutcome is the wire layout: a flat triple where absent fields are
// null. The variant is implied by which fields are present, so the layout
// round-trips without a discriminator.
type jsonOutcome struct {
	Path     string  `json:"path"`
	Modified *string `json:"modified"`
	Error    *string `json:"error"`
}

// MarshalJSON encodes o in the flat {path, modified, error} layout.
func (o Outcome) MarshalJSON() ([]byte, error) {
	j := jsonOutcome{Path: o.Path}
	switch o.Kind {
	case KindChanged:
		j.Modified = &o.Modified
	case KindErrorRename:
		j.Modified = &o.Modified
		j.Error = &o.Reason
	case KindError:
		j.Error = &o.Reason
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes the flat layout, inferring the variant from field
// presence: neither → Unchanged, modified only → Changed, both →
// ErrorRename, error only → Error.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var j jsonOutcome
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	switch {
	case j.Modified == nil && j.Error == nil:
		*o = Unchanged(j.Path)
	case j.Modified != nil && j.Error == nil:
		*o = Changed(j.Path, *j.Modified)
	case j.Modified != nil && j.Error != nil:
		*o = RenameError(j.Path, *j.Modified, *j.Error)
	default:
		*o = TraversalError(j.Path, *j.Error)
	}
	return nil
}

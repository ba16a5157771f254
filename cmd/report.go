package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eykd/notox-go/internal/walk"
)

// reportOptions selects how the outcome list is rendered.
type reportOptions struct {
	JSON       bool // JSON instead of human-readable lines
	Pretty     bool // indent the JSON
	OnlyErrors bool // keep only ErrorRename and Error outcomes
	Quiet      bool // print nothing at all
}

// writeReport renders outcomes to w. The human-readable form prints one
// line per changed or failed path, omits unchanged paths, and ends with a
// count of all checked entries. JSON output is the flat per-outcome
// {path, modified, error} layout.
func writeReport(w io.Writer, outcomes []walk.Outcome, opts reportOptions) error {
	if opts.Quiet {
		return nil
	}
	if opts.JSON {
		return writeJSONReport(w, outcomes, opts)
	}
	for _, o := range outcomes {
		switch o.Kind {
		case walk.KindChanged:
			fmt.Fprintf(w, "%s -> %s\n", displayPath(o.Path), displayPath(o.Modified))
		case walk.KindErrorRename:
			fmt.Fprintf(w, "%s -> %s : %s\n", displayPath(o.Path), displayPath(o.Modified), o.Reason)
		case walk.KindError:
			fmt.Fprintf(w, "%s : %s\n", displayPath(o.Path), o.Reason)
		}
	}
	if len(outcomes) == 1 {
		_, err := fmt.Fprintln(w, "1 file checked")
		return err
	}
	_, err := fmt.Fprintf(w, "%d files checked\n", len(outcomes))
	return err
}

func writeJSONReport(w io.Writer, outcomes []walk.Outcome, opts reportOptions) error {
	list := outcomes
	if opts.OnlyErrors {
		list = make([]walk.Outcome, 0, len(outcomes))
		for _, o := range outcomes {
			if o.IsError() {
				list = append(list, o)
			}
		}
	}
	if list == nil {
		list = []walk.Outcome{}
	}
	var (
		data []byte
		err  error
	)
	if opts.Pretty {
		data, err = json.MarshalIndent(list, "", "  ")
	} else {
		data, err = json.Marshal(list)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// displayPath replaces control characters (runes < 0x20 or == 0x7F) with '?'
// before including path values in human-readable output, preventing ANSI
// injection. The paths being reported are exactly the ones not yet
// sanitized, so control bytes are expected here.
func displayPath(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}

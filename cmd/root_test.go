package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/eykd/notox-go/internal/config"
	"github.com/eykd/notox-go/internal/walk"
)

// mockFS is a test double for walk.FS.
type mockFS struct {
	entries map[string][]fs.DirEntry
	dirs    map[string]bool
	renamed [][2]string
}

func (m *mockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if e, ok := m.entries[name]; ok {
		return e, nil
	}
	return nil, errors.New("no such directory")
}

func (m *mockFS) IsDir(name string) bool { return m.dirs[name] }

func (m *mockFS) Rename(oldpath, newpath string) error {
	m.renamed = append(m.renamed, [2]string{oldpath, newpath})
	return nil
}

// fakeEntry is a minimal fs.DirEntry for command tests.
type fakeEntry struct {
	name string
	dir  bool
}

func (f fakeEntry) Name() string { return f.name }
func (f fakeEntry) IsDir() bool  { return f.dir }
func (f fakeEntry) Type() fs.FileMode {
	if f.dir {
		return fs.ModeDir
	}
	return 0
}
func (f fakeEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }

func statOK(string) (os.FileInfo, error) { return nil, nil }

func statMissing(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

func loadDefaults() (config.Config, error) { return config.Default(), nil }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func execute(t *testing.T, fsys walk.FS, stat func(string) (os.FileInfo, error), args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWithDeps(fsys, stat, loadDefaults)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmdHasRequiredFlags(t *testing.T) {
	c := NewRootCmd()
	required := []string{"do", "json", "json-pretty", "json-error", "quiet", "serial", "workers"}
	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			if c.Flags().Lookup(name) == nil {
				t.Errorf("expected --%s flag on root command", name)
			}
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	c := newRootCmdWithDeps(&mockFS{}, statOK, loadDefaults)
	SetVersionInfo(c, "1.2.3", "abc1234", "2026-08-24")
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{"--version"})
	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "notox version 1.2.3 (commit abc1234, built 2026-08-24)\n"
	if out.String() != want {
		t.Errorf("version output = %q, want %q", out.String(), want)
	}
}

func TestRootCmdDryRunByDefault(t *testing.T) {
	fsys := &mockFS{}
	out, err := execute(t, fsys, statOK, "naïve.txt")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "naïve.txt -> naive.txt : dry-run") {
		t.Errorf("missing dry-run preview in output: %q", out)
	}
	if !strings.Contains(out, "1 file checked") {
		t.Errorf("missing count line in output: %q", out)
	}
	if len(fsys.renamed) != 0 {
		t.Errorf("dry run performed renames: %v", fsys.renamed)
	}
}

func TestRootCmdDoAppliesRenames(t *testing.T) {
	fsys := &mockFS{}
	out, err := execute(t, fsys, statOK, "--do", "naïve.txt")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "naïve.txt -> naive.txt\n") {
		t.Errorf("missing rename line in output: %q", out)
	}
	if len(fsys.renamed) != 1 || fsys.renamed[0] != [2]string{"naïve.txt", "naive.txt"} {
		t.Errorf("rename not applied: %v", fsys.renamed)
	}
}

func TestRootCmdJSONOutput(t *testing.T) {
	out, err := execute(t, &mockFS{}, statOK, "--json", "naïve.txt")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var decoded []walk.Outcome
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%q", err, out)
	}
	want := walk.RenameError("naïve.txt", "naive.txt", walk.DryRunReason)
	if len(decoded) != 1 || decoded[0] != want {
		t.Errorf("decoded = %+v, want [%+v]", decoded, want)
	}
}

func TestRootCmdJSONOnlyErrors(t *testing.T) {
	out, err := execute(t, &mockFS{}, statOK, "--json-error", "clean.txt", "naïve.txt")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var decoded []walk.Outcome
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%q", err, out)
	}
	if len(decoded) != 1 || decoded[0].Path != "naïve.txt" {
		t.Errorf("decoded = %+v, want only the dirty path", decoded)
	}
}

func TestRootCmdQuiet(t *testing.T) {
	out, err := execute(t, &mockFS{}, statOK, "--quiet", "naïve.txt")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "" {
		t.Errorf("quiet run produced output: %q", out)
	}
}

func TestRootCmdWalksDirectories(t *testing.T) {
	fsys := &mockFS{
		dirs: map[string]bool{"docs": true},
		entries: map[string][]fs.DirEntry{
			"docs": {fakeEntry{name: "naïve.txt"}},
		},
	}
	out, err := execute(t, fsys, statOK, "docs")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "docs/naïve.txt -> docs/naive.txt : dry-run") {
		t.Errorf("directory entry not visited: %q", out)
	}
	if !strings.Contains(out, "2 files checked") {
		t.Errorf("missing count line: %q", out)
	}
}

func TestRootCmdNoArgsChecksCurrentDirectory(t *testing.T) {
	fsys := &mockFS{
		entries: map[string][]fs.DirEntry{
			".": {fakeEntry{name: "naïve.txt"}},
		},
	}
	out, err := execute(t, fsys, statOK)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "naïve.txt -> naive.txt : dry-run") {
		t.Errorf("current directory entries not checked: %q", out)
	}
}

func TestRootCmdConfigError(t *testing.T) {
	cmd := newRootCmdWithDeps(&mockFS{}, statOK, func() (config.Config, error) {
		return config.Config{}, errors.New("bad config")
	})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"x.txt"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected config error to propagate")
	}
}

func TestResolvePaths(t *testing.T) {
	fsys := &mockFS{
		entries: map[string][]fs.DirEntry{
			".": {fakeEntry{name: "a.txt"}, fakeEntry{name: "b.txt"}},
		},
	}

	t.Run("deduplicates preserving order", func(t *testing.T) {
		got := resolvePaths([]string{"x", "y", "x"}, fsys, statOK, discardLogger())
		if len(got) != 2 || got[0] != "x" || got[1] != "y" {
			t.Errorf("resolvePaths = %v", got)
		}
	})

	t.Run("skips missing paths", func(t *testing.T) {
		stat := func(name string) (os.FileInfo, error) {
			if name == "gone" {
				return nil, os.ErrNotExist
			}
			return nil, nil
		}
		got := resolvePaths([]string{"gone", "here"}, fsys, stat, discardLogger())
		if len(got) != 1 || got[0] != "here" {
			t.Errorf("resolvePaths = %v", got)
		}
	})

	t.Run("star expands current directory", func(t *testing.T) {
		got := resolvePaths([]string{"*"}, fsys, statMissing, discardLogger())
		if len(got) != 2 || got[0] != "a.txt" || got[1] != "b.txt" {
			t.Errorf("resolvePaths = %v", got)
		}
	})

	t.Run("empty args expand current directory", func(t *testing.T) {
		got := resolvePaths(nil, fsys, statMissing, discardLogger())
		if len(got) != 2 {
			t.Errorf("resolvePaths = %v", got)
		}
	})
}

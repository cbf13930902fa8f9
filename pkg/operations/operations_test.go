package operations

import (
	"io"
	"os"
	"testing"

	"github.com/mattetti/filebuffer"
	"github.com/spf13/afero"

	"github.com/pojntfx/ustar/examples"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
)

const (
	verbose = false
)

type file struct {
	path     string
	contents string
	mode     uint32
}

type dir struct {
	path string
	mode uint32
}

var archiveRestoreTests = []struct {
	name  string
	dirs  []dir
	files []file
	from  string
}{
	{
		"Can archive and restore a flat directory",
		[]dir{{"notes", 0o755}},
		[]file{
			{"notes/todo.txt", "buy tape", 0o644},
			{"notes/done.txt", "", 0o600},
		},
		"notes",
	},
	{
		"Can archive and restore nested directories",
		[]dir{
			{"tree", 0o755},
			{"tree/a", 0o755},
			{"tree/a/b", 0o700},
		},
		[]file{
			{"tree/a/one.txt", "1", 0o644},
			{"tree/a/b/two.txt", "22", 0o644},
		},
		"tree",
	},
	{
		"Can archive and restore a single file",
		nil,
		[]file{
			{"lonely.txt", "all by myself", 0o644},
		},
		"lonely.txt",
	},
}

func TestArchiveRestore(t *testing.T) {
	jsonLogger := &examples.Logger{
		Verbose: verbose,
	}

	for _, tt := range archiveRestoreTests {
		t.Run(tt.name, func(t *testing.T) {
			src := afero.NewMemMapFs()
			for _, d := range tt.dirs {
				if err := src.MkdirAll(d.path, os.FileMode(d.mode)); err != nil {
					t.Fatalf("MkdirAll() error = %v", err)
				}
			}

			for _, f := range tt.files {
				if err := afero.WriteFile(src, f.path, []byte(f.contents), os.FileMode(f.mode)); err != nil {
					t.Fatalf("WriteFile() error = %v", err)
				}
			}

			drive := filebuffer.New(nil)

			headers, err := Archive(
				config.DriveWriterConfig{Drive: drive},
				src,
				tt.from,
				jsonLogger,
			)
			if err != nil {
				t.Fatalf("Archive() error = %v", err)
			}

			want := len(tt.dirs) + len(tt.files)
			if len(headers) != want {
				t.Errorf("Archive() wrote %v headers, want %v", len(headers), want)
			}

			if _, err := drive.Seek(0, io.SeekStart); err != nil {
				t.Fatalf("Seek() error = %v", err)
			}

			dst := afero.NewMemMapFs()
			if err := Restore(
				config.DriveReaderConfig{Drive: drive},
				dst,
				"/restored",
				jsonLogger,
			); err != nil {
				t.Fatalf("Restore() error = %v", err)
			}

			for _, f := range tt.files {
				contents, err := afero.ReadFile(dst, "/restored/"+f.path)
				if err != nil {
					t.Fatalf("ReadFile(%v) error = %v", f.path, err)
				}

				if string(contents) != f.contents {
					t.Errorf("restored %v = %q, want %q", f.path, contents, f.contents)
				}
			}

			for _, d := range tt.dirs {
				info, err := dst.Stat("/restored/" + d.path)
				if err != nil {
					t.Fatalf("Stat(%v) error = %v", d.path, err)
				}

				if !info.IsDir() {
					t.Errorf("restored %v is not a directory", d.path)
				}
			}
		})
	}
}

func TestList(t *testing.T) {
	jsonLogger := &examples.Logger{
		Verbose: verbose,
	}

	src := afero.NewMemMapFs()
	if err := src.MkdirAll("docs", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := afero.WriteFile(src, "docs/a.txt", []byte("aaa"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := afero.WriteFile(src, "docs/b.txt", []byte("bb"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	drive := filebuffer.New(nil)

	if _, err := Archive(
		config.DriveWriterConfig{Drive: drive},
		src,
		"docs",
		jsonLogger,
	); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	if _, err := drive.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	entries, err := List(
		config.DriveReaderConfig{Drive: drive},
		jsonLogger,
	)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("List() returned %v entries, want 3", len(entries))
	}

	if entries[0].Header.TypeFlag != header.TypeDir {
		t.Errorf("List() first entry type flag = %q, want directory", entries[0].Header.TypeFlag)
	}

	if entries[0].Block != 0 {
		t.Errorf("List() first entry block = %v, want 0", entries[0].Block)
	}

	// The directory has no body, so the second header directly follows it
	if entries[1].Block != 1 {
		t.Errorf("List() second entry block = %v, want 1", entries[1].Block)
	}

	// The first file's body takes one padded block, so the third header
	// sits two blocks after the second one
	if entries[2].Block != 3 {
		t.Errorf("List() third entry block = %v, want 3", entries[2].Block)
	}

	names := map[string]bool{}
	for _, entry := range entries {
		names[entry.Header.Name()] = true
	}

	for _, want := range []string{"docs/", "docs/a.txt", "docs/b.txt"} {
		if !names[want] {
			t.Errorf("List() is missing %v", want)
		}
	}
}

package converters

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/pojntfx/ustar/pkg/header"
)

func TestFileInfoToHeaderForRegularFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "data/report.txt", []byte("12345"), 0o640); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := fsys.Stat("data/report.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	hdr, err := FileInfoToHeader("data/report.txt", info, "")
	if err != nil {
		t.Fatalf("FileInfoToHeader() error = %v", err)
	}

	if hdr.TypeFlag != header.TypeRegular {
		t.Errorf("type flag = %q, want regular", hdr.TypeFlag)
	}

	if hdr.Size != 5 {
		t.Errorf("size = %v, want 5", hdr.Size)
	}

	if hdr.Suffix != "data/report.txt" || hdr.Prefix != "" {
		t.Errorf("split = (%q, %q), want (%q, %q)", hdr.Prefix, hdr.Suffix, "", "data/report.txt")
	}

	if hdr.Mode != 0o640 {
		t.Errorf("mode = %#o, want %#o", hdr.Mode, 0o640)
	}
}

func TestFileInfoToHeaderForDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("data/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	info, err := fsys.Stat("data/sub")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	hdr, err := FileInfoToHeader("data/sub", info, "")
	if err != nil {
		t.Fatalf("FileInfoToHeader() error = %v", err)
	}

	if hdr.TypeFlag != header.TypeDir {
		t.Errorf("type flag = %q, want directory", hdr.TypeFlag)
	}

	if hdr.Size != 0 {
		t.Errorf("size = %v, want 0 for directories", hdr.Size)
	}

	if hdr.Suffix != "data/sub/" {
		t.Errorf("suffix = %q, want %q", hdr.Suffix, "data/sub/")
	}
}

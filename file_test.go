package qoi

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.qoi")

	pix := []byte{1, 2, 3, 255, 4, 5, 6, 255, 7, 8, 9, 255, 10, 11, 12, 255}
	d := Descriptor{Width: 2, Height: 2, Channels: 4, Colorspace: SRGB}

	n, err := WriteFile(path, pix, d)
	if err != nil {
		t.Fatal(err)
	}
	if n <= 0 {
		t.Fatalf("WriteFile returned n=%d", n)
	}

	gotPix, gotD, err := ReadFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if gotD != d {
		t.Fatalf("descriptor = %+v, want %+v", gotD, d)
	}
	if !bytes.Equal(gotPix, pix) {
		t.Fatalf("pix = % X, want % X", gotPix, pix)
	}
}

func TestReadFileMissingPath(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.qoi"), 0); err == nil {
		t.Fatal("expected error reading missing file")
	}
}

func TestWriteFileInvalidDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.qoi")
	_, err := WriteFile(path, nil, Descriptor{Width: 0, Height: 1, Channels: 4})
	if err != ErrInvalidArgument {
		t.Fatalf("got err %v, want ErrInvalidArgument", err)
	}
}

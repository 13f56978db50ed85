package qoi

import (
	"bytes"
	"testing"
)

// Scenario E: decoding the encoder's Scenario A output.
func TestDecodeScenarioE(t *testing.T) {
	data := append(header(1, 1, 4, 0), 0xC0)
	data = append(data, terminator[:]...)

	pix, d, err := DecodeBuffer(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Width != 1 || d.Height != 1 || d.Channels != 4 {
		t.Fatalf("descriptor = %+v", d)
	}
	if !bytes.Equal(pix, []byte{0, 0, 0, 255}) {
		t.Fatalf("pix = % X, want 00 00 00 FF", pix)
	}
}

func TestDecodeRGBOpcode(t *testing.T) {
	data := append(header(1, 1, 3, 0), 0xFE, 0x0A, 0x14, 0x1E)
	data = append(data, terminator[:]...)

	pix, d, err := DecodeBuffer(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Channels != 3 {
		t.Fatalf("channels = %d, want 3", d.Channels)
	}
	if !bytes.Equal(pix, []byte{10, 20, 30}) {
		t.Fatalf("pix = % X", pix)
	}
}

func TestDecodeForcedTargetChannels(t *testing.T) {
	data := append(header(1, 1, 3, 0), 0xFE, 0x0A, 0x14, 0x1E)
	data = append(data, terminator[:]...)

	pix, d, err := DecodeBuffer(data, 4)
	if err != nil {
		t.Fatal(err)
	}
	if d.Channels != 3 {
		t.Fatalf("descriptor channels = %d, want 3 (header's own count)", d.Channels)
	}
	if !bytes.Equal(pix, []byte{10, 20, 30, 255}) {
		t.Fatalf("pix = % X, want 0A 14 1E FF", pix)
	}
}

func TestDecodeRunAndLuma(t *testing.T) {
	data := append(header(2, 1, 3, 0), 0xC0, 0xA5, 0x88)
	data = append(data, terminator[:]...)

	pix, _, err := DecodeBuffer(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 0, 5, 5, 5}
	if !bytes.Equal(pix, want) {
		t.Fatalf("pix = % X, want % X", pix, want)
	}
}

func TestDecodeRejectsShortStream(t *testing.T) {
	_, _, err := DecodeBuffer(make([]byte, 10), 0)
	if err != ErrInvalidArgument {
		t.Fatalf("got err %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := append(header(1, 1, 4, 0), 0xC0)
	data = append(data, terminator[:]...)
	data[0] = 'x'
	if _, _, err := DecodeBuffer(data, 0); err != ErrInvalidArgument {
		t.Fatalf("got err %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeRejectsBadTargetChannels(t *testing.T) {
	data := append(header(1, 1, 4, 0), 0xC0)
	data = append(data, terminator[:]...)
	if _, _, err := DecodeBuffer(data, 2); err != ErrInvalidArgument {
		t.Fatalf("got err %v, want ErrInvalidArgument", err)
	}
}

// If the opcode stream runs out before all pixels are produced, the
// decoder replicates the last known pixel for the remaining positions.
func TestDecodeExhaustedStreamReplicatesLastPixel(t *testing.T) {
	data := append(header(2, 1, 4, 0), 0xFF, 7, 8, 9, 255)
	data = append(data, terminator[:]...)

	pix, _, err := DecodeBuffer(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{7, 8, 9, 255, 7, 8, 9, 255}
	if !bytes.Equal(pix, want) {
		t.Fatalf("pix = % X, want % X", pix, want)
	}
}

package qoi

import (
	"io"
	"os"
)

// ReadFile opens path for binary read, reads the entire contents and
// delegates to DecodeBuffer. targetChannels follows DecodeBuffer's
// convention (0 infers the channel count from the header).
func ReadFile(path string, targetChannels int) ([]byte, Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Descriptor{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, Descriptor{}, err
	}

	return DecodeBuffer(data, targetChannels)
}

// WriteFile encodes pix/d with EncodeBuffer and writes the result to path
// in binary mode, returning the number of bytes written.
func WriteFile(path string, pix []byte, d Descriptor) (int, error) {
	data, err := EncodeBuffer(pix, d)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return f.Write(data)
}

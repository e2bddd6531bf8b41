package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Compress wraps w in a zstd stream. Close flushes the final frame but
// does not close w.
func Compress(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return enc, nil
}

// Decompress reads a zstd stream written by Compress.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return dec.IOReadCloser(), nil
}

// Marshal runs encode against a fresh Writer and returns the bytes,
// zstd compressed when compress is set.
func Marshal(compress bool, encode func(*Writer)) ([]byte, error) {
	var buf bytes.Buffer
	var sink io.Writer = &buf
	var zw io.WriteCloser
	if compress {
		var err error
		if zw, err = Compress(&buf); err != nil {
			return nil, err
		}
		sink = zw
	}
	w := NewWriter(sink)
	encode(w)
	if err := w.Err(); err != nil {
		return nil, err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(data []byte, compressed bool, decode func(*Reader) error) error {
	var src io.Reader = bytes.NewReader(data)
	if compressed {
		zr, err := Decompress(src)
		if err != nil {
			return err
		}
		defer zr.Close()
		src = zr
	}
	return decode(NewReader(src))
}

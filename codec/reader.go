package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrCorrupt reports malformed or truncated input.
	ErrCorrupt = errors.New("corrupt encoding")
	// ErrNull is returned when a required value was written as null.
	ErrNull = errors.New("unexpected null value")
)

// maxPrealloc bounds allocations driven by counts read from the input.
const maxPrealloc = 1 << 16

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader decodes what Writer produced.
type Reader struct {
	r byteReader
}

func NewReader(r io.Reader) *Reader {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

func corrupt(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrapf(ErrCorrupt, "%s: truncated", what)
	}
	return errors.Wrapf(err, "read %s", what)
}

// ReadPresent reads a marker. It returns io.EOF unwrapped when the input
// ends cleanly before the marker.
func (r *Reader) ReadPresent() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, io.EOF
		}
		return false, errors.WithStack(err)
	}
	switch b {
	case markerNull:
		return false, nil
	case markerPresent:
		return true, nil
	}
	return false, errors.Wrapf(ErrCorrupt, "marker byte %#x", b)
}

func (r *Reader) require(what string) error {
	ok, err := r.ReadPresent()
	if err != nil {
		return corrupt(err, what)
	}
	if !ok {
		return errors.Wrapf(ErrNull, "%s", what)
	}
	return nil
}

func (r *Reader) byte(what string) (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, corrupt(err, what)
	}
	return b, nil
}

// Varint errors other than a short read are overflows.
func varintErr(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corrupt(err, what)
	}
	return errors.Wrapf(ErrCorrupt, "%s: %v", what, err)
}

func (r *Reader) uvarint(what string) (uint64, error) {
	v, err := binary.ReadUvarint(r.r)
	if err != nil {
		return 0, varintErr(err, what)
	}
	return v, nil
}

func (r *Reader) varint(what string) (int64, error) {
	v, err := binary.ReadVarint(r.r)
	if err != nil {
		return 0, varintErr(err, what)
	}
	return v, nil
}

func (r *Reader) full(p []byte, what string) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return corrupt(err, what)
	}
	return nil
}

func (r *Reader) fixed32(what string) (uint32, error) {
	var buf [4]byte
	if err := r.full(buf[:], what); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (r *Reader) fixed64(what string) (uint64, error) {
	var buf [8]byte
	if err := r.full(buf[:], what); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (r *Reader) length(what string) (int, error) {
	n, err := r.uvarint(what)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 {
		return 0, errors.Wrapf(ErrCorrupt, "%s: length %d", what, n)
	}
	return int(n), nil
}

func (r *Reader) boolValue(what string) (bool, error) {
	b, err := r.byte(what)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.Wrapf(ErrCorrupt, "%s: bool byte %#x", what, b)
}

func (r *Reader) ReadBool() (bool, error) {
	if err := r.require("bool"); err != nil {
		return false, err
	}
	return r.boolValue("bool")
}

func (r *Reader) ReadInt() (int64, error) {
	if err := r.require("int"); err != nil {
		return 0, err
	}
	return r.varint("int")
}

func (r *Reader) ReadUint() (uint64, error) {
	if err := r.require("uint"); err != nil {
		return 0, err
	}
	return r.uvarint("uint")
}

func (r *Reader) ReadFloat32() (float32, error) {
	if err := r.require("float32"); err != nil {
		return 0, err
	}
	bits, err := r.fixed32("float32")
	return math.Float32frombits(bits), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.require("float64"); err != nil {
		return 0, err
	}
	bits, err := r.fixed64("float64")
	return math.Float64frombits(bits), err
}

func (r *Reader) ReadText() (string, error) {
	if err := r.require("string"); err != nil {
		return "", err
	}
	return r.text()
}

func (r *Reader) text() (string, error) {
	n, err := r.length("string length")
	if err != nil {
		return "", err
	}
	buf := make([]byte, min(n, maxPrealloc))
	if n <= maxPrealloc {
		err = r.full(buf, "string")
		return string(buf), err
	}
	var out []byte
	for remaining := n; remaining > 0; {
		chunk := buf[:min(remaining, len(buf))]
		if err := r.full(chunk, "string"); err != nil {
			return "", err
		}
		out = append(out, chunk...)
		remaining -= len(chunk)
	}
	return string(out), nil
}

// ReadBytes returns nil for a null value.
func (r *Reader) ReadBytes() ([]byte, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "bytes")
	}
	if !ok {
		return nil, nil
	}
	s, err := r.text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// ReadTime returns the time in UTC.
func (r *Reader) ReadTime() (time.Time, error) {
	if err := r.require("time"); err != nil {
		return time.Time{}, err
	}
	sec, err := r.varint("time seconds")
	if err != nil {
		return time.Time{}, err
	}
	nsec, err := r.uvarint("time nanoseconds")
	if err != nil {
		return time.Time{}, err
	}
	if nsec >= uint64(time.Second) {
		return time.Time{}, errors.Wrapf(ErrCorrupt, "time nanoseconds %d", nsec)
	}
	return time.Unix(sec, int64(nsec)).UTC(), nil
}

// ReadStrings returns nil for a null value.
func (r *Reader) ReadStrings() ([]string, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "strings")
	}
	if !ok {
		return nil, nil
	}
	n, err := r.length("strings count")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, min(n, maxPrealloc))
	for range n {
		s, err := r.ReadText()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

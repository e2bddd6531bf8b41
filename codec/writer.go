// Package codec is a compact binary encoding for primitives, lists and the
// value types of this module.
//
// Every value starts with a marker byte, 0 for null and 1 for present.
// Integers are varints, floats fixed width little endian, strings and
// collections carry a uvarint length. Fields follow in declaration order.
package codec

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
)

const (
	markerNull    byte = 0
	markerPresent byte = 1
)

// Writer encodes values to an io.Writer. The first write error sticks and
// is reported by Err; later writes are dropped.
type Writer struct {
	w       io.Writer
	scratch [binary.MaxVarintLen64]byte
	n       int64
	err     error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err != nil {
		w.err = errors.WithStack(err)
	}
}

func (w *Writer) byte(b byte) {
	w.scratch[0] = b
	w.write(w.scratch[:1])
}

func (w *Writer) uvarint(v uint64) {
	n := binary.PutUvarint(w.scratch[:], v)
	w.write(w.scratch[:n])
}

func (w *Writer) varint(v int64) {
	n := binary.PutVarint(w.scratch[:], v)
	w.write(w.scratch[:n])
}

func (w *Writer) fixed32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	w.write(w.scratch[:4])
}

func (w *Writer) fixed64(v uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:8], v)
	w.write(w.scratch[:8])
}

func (w *Writer) WriteNull() {
	w.byte(markerNull)
}

func (w *Writer) present() {
	w.byte(markerPresent)
}

func (w *Writer) WriteBool(v bool) {
	w.present()
	if v {
		w.byte(1)
	} else {
		w.byte(0)
	}
}

func (w *Writer) WriteInt(v int64) {
	w.present()
	w.varint(v)
}

func (w *Writer) WriteUint(v uint64) {
	w.present()
	w.uvarint(v)
}

func (w *Writer) WriteFloat32(v float32) {
	w.present()
	w.fixed32(math.Float32bits(v))
}

func (w *Writer) WriteFloat64(v float64) {
	w.present()
	w.fixed64(math.Float64bits(v))
}

func (w *Writer) WriteText(s string) {
	w.present()
	w.uvarint(uint64(len(s)))
	if w.err == nil {
		_, err := io.WriteString(w.w, s)
		w.n += int64(len(s))
		if err != nil {
			w.err = errors.WithStack(err)
		}
	}
}

// WriteBytes writes nil as null.
func (w *Writer) WriteBytes(b []byte) {
	if b == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.uvarint(uint64(len(b)))
	w.write(b)
}

// WriteTime stores seconds and nanoseconds since the Unix epoch. The
// location is not kept.
func (w *Writer) WriteTime(t time.Time) {
	w.present()
	w.varint(t.Unix())
	w.uvarint(uint64(t.Nanosecond()))
}

// WriteStrings writes a nil slice as null.
func (w *Writer) WriteStrings(ss []string) {
	if ss == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.uvarint(uint64(len(ss)))
	for _, s := range ss {
		w.WriteText(s)
	}
}

// Len counts the bytes written so far.
func (w *Writer) Len() int64 {
	return w.n
}

func (w *Writer) Err() error {
	return w.err
}

package codec_test

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primkit/codec"
	"primkit/lists"
)

func TestPrimitives_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123, time.UTC)
	data, err := codec.Marshal(false, func(w *codec.Writer) {
		w.WriteBool(true)
		w.WriteInt(-300)
		w.WriteUint(1 << 40)
		w.WriteFloat32(1.5)
		w.WriteFloat64(math.Inf(-1))
		w.WriteText("héllo")
		w.WriteBytes(nil)
		w.WriteBytes([]byte{})
		w.WriteTime(ts)
		w.WriteStrings([]string{"a", ""})
		w.WriteNull()
	})
	require.NoError(t, err)

	err = codec.Unmarshal(data, false, func(r *codec.Reader) error {
		b, err := r.ReadBool()
		require.NoError(t, err)
		assert.True(t, b)

		i, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, int64(-300), i)

		u, err := r.ReadUint()
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<40), u)

		f32, err := r.ReadFloat32()
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), f32)

		f64, err := r.ReadFloat64()
		require.NoError(t, err)
		assert.True(t, math.IsInf(f64, -1))

		s, err := r.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "héllo", s)

		nilBytes, err := r.ReadBytes()
		require.NoError(t, err)
		assert.Nil(t, nilBytes)

		empty, err := r.ReadBytes()
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		got, err := r.ReadTime()
		require.NoError(t, err)
		assert.True(t, ts.Equal(got))

		ss, err := r.ReadStrings()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", ""}, ss)

		_, err = r.ReadInt()
		assert.ErrorIs(t, err, codec.ErrNull)
		return nil
	})
	require.NoError(t, err)
}

func TestLayout(t *testing.T) {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	w.WriteInt(1)
	w.WriteNull()
	w.WriteText("ab")
	codec.WriteList[int32](w, lists.ArrayListOf[int32](1, -1))
	require.NoError(t, w.Err())

	want := []byte{
		1, 2,           // present, zigzag 1
		0,              // null
		1, 2, 'a', 'b', // present, length, bytes
		1, 2, 2, 1,     // present, count, zigzag 1, zigzag -1
	}
	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, int64(len(want)), w.Len())
}

func TestLists_RoundTrip(t *testing.T) {
	data, err := codec.Marshal(true, func(w *codec.Writer) {
		codec.WriteList[int64](w, lists.ArrayListOf[int64](math.MinInt64, 0, math.MaxInt64))
		codec.WriteList[bool](w, lists.ArrayListOf(true, false, true))
		codec.WriteList[float32](w, lists.ArrayListOf[float32](0.25, float32(math.NaN())))
		codec.WriteList[uint16](w, nil)
		codec.WriteSlice(w, []uint8{0, 255})
	})
	require.NoError(t, err)

	err = codec.Unmarshal(data, true, func(r *codec.Reader) error {
		ints, err := codec.ReadList[int64](r)
		require.NoError(t, err)
		assert.Equal(t, "[-9223372036854775808,0,9223372036854775807]", ints.String())

		bools, err := codec.ReadList[bool](r)
		require.NoError(t, err)
		assert.Equal(t, "[true,false,true]", bools.String())

		floats, err := codec.ReadList[float32](r)
		require.NoError(t, err)
		assert.True(t, floats.Equal(lists.ArrayListOf[float32](0.25, float32(math.NaN()))))

		chars, err := codec.ReadList[uint16](r)
		require.NoError(t, err)
		assert.Nil(t, chars)

		raw, err := codec.ReadSlice[uint8](r)
		require.NoError(t, err)
		assert.Equal(t, []uint8{0, 255}, raw)
		return nil
	})
	require.NoError(t, err)
}

func TestCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(*codec.Reader) error
	}{
		{"bad marker", []byte{7}, func(r *codec.Reader) error { _, err := r.ReadInt(); return err }},
		{"truncated int", []byte{1}, func(r *codec.Reader) error { _, err := r.ReadInt(); return err }},
		{"truncated string", []byte{1, 5, 'a'}, func(r *codec.Reader) error { _, err := r.ReadText(); return err }},
		{"bad bool", []byte{1, 9}, func(r *codec.Reader) error { _, err := r.ReadBool(); return err }},
		{"varint overflow", []byte{1, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, func(r *codec.Reader) error { _, err := r.ReadUint(); return err }},
		{"element overflow", []byte{1, 1, 0x80, 0x02}, func(r *codec.Reader) error { _, err := codec.ReadList[int8](r); return err }},
		{"short list", []byte{1, 3, 2}, func(r *codec.Reader) error { _, err := codec.ReadSlice[int32](r); return err }},
		{"empty input", nil, func(r *codec.Reader) error { _, err := r.ReadFloat64(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(codec.NewReader(bytes.NewReader(tt.data)))
			assert.ErrorIs(t, err, codec.ErrCorrupt)
		})
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, assert.AnError
	}
	f.after--
	return len(p), nil
}

func TestWriter_StickyError(t *testing.T) {
	w := codec.NewWriter(&failingWriter{after: 1})
	w.WriteNull()
	w.WriteInt(5)
	w.WriteText("x")
	assert.ErrorIs(t, w.Err(), assert.AnError)
	assert.Equal(t, int64(1), w.Len())
}

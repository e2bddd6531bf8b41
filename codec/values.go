package codec

import (
	"github.com/pkg/errors"

	"primkit/config"
	"primkit/dates"
	"primkit/version"
)

// WriteVersion writes the fields Major, Minor, Patch and Qualifier.
func WriteVersion(w *Writer, v *version.Version) {
	if v == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.WriteInt(int64(v.Major))
	w.WriteInt(int64(v.Minor))
	w.WriteInt(int64(v.Patch))
	w.WriteText(v.Qualifier)
}

// ReadVersion returns nil for null.
func ReadVersion(r *Reader) (*version.Version, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "version")
	}
	if !ok {
		return nil, nil
	}
	var v version.Version
	for _, field := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := r.ReadInt()
		if err != nil {
			return nil, errors.Wrap(err, "version")
		}
		*field = int(n)
	}
	if v.Qualifier, err = r.ReadText(); err != nil {
		return nil, errors.Wrap(err, "version")
	}
	return &v, nil
}

func WriteDateRange(w *Writer, dr *dates.DateRange) {
	if dr == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.WriteTime(dr.Start)
	w.WriteTime(dr.End)
}

// ReadDateRange returns nil for null. Times come back in UTC.
func ReadDateRange(r *Reader) (*dates.DateRange, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "date range")
	}
	if !ok {
		return nil, nil
	}
	start, err := r.ReadTime()
	if err != nil {
		return nil, errors.Wrap(err, "date range start")
	}
	end, err := r.ReadTime()
	if err != nil {
		return nil, errors.Wrap(err, "date range end")
	}
	dr, err := dates.NewDateRange(start, end)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "%v", err)
	}
	return &dr, nil
}

func WriteDatePattern(w *Writer, p *dates.DatePattern) {
	if p == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.WriteText(p.String())
}

// ReadDatePattern returns nil for null.
func ReadDatePattern(r *Reader) (*dates.DatePattern, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "date pattern")
	}
	if !ok {
		return nil, nil
	}
	s, err := r.ReadText()
	if err != nil {
		return nil, errors.Wrap(err, "date pattern")
	}
	p, err := dates.Compile(s)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "%v", err)
	}
	return &p, nil
}

// WriteStore writes the properties sorted by name, each as name, values,
// final flag and source.
func WriteStore(w *Writer, s *config.Store) {
	if s == nil {
		w.WriteNull()
		return
	}
	names := s.Names()
	w.present()
	w.uvarint(uint64(len(names)))
	for _, name := range names {
		p, _ := s.Lookup(name)
		w.present()
		w.WriteText(p.Name)
		w.WriteStrings(p.Values)
		w.WriteBool(p.Final)
		w.WriteText(p.Source)
	}
}

// ReadStore returns nil for null.
func ReadStore(r *Reader, opts ...config.Option) (*config.Store, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "store")
	}
	if !ok {
		return nil, nil
	}
	n, err := r.length("store count")
	if err != nil {
		return nil, err
	}
	s := config.NewStore(opts...)
	for i := range n {
		if err := r.require("property"); err != nil {
			return nil, errors.Wrapf(err, "property %d", i)
		}
		var p config.Property
		if p.Name, err = r.ReadText(); err != nil {
			return nil, errors.Wrapf(err, "property %d name", i)
		}
		if p.Values, err = r.ReadStrings(); err != nil {
			return nil, errors.Wrapf(err, "property %q values", p.Name)
		}
		if p.Final, err = r.ReadBool(); err != nil {
			return nil, errors.Wrapf(err, "property %q final", p.Name)
		}
		if p.Source, err = r.ReadText(); err != nil {
			return nil, errors.Wrapf(err, "property %q source", p.Name)
		}
		if _, dup := s.Lookup(p.Name); dup {
			return nil, errors.Wrapf(ErrCorrupt, "duplicate property %q", p.Name)
		}
		if err := s.Put(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

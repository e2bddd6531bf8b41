package codec

import (
	"encoding/xml"
	"io"
	"time"

	"github.com/pkg/errors"

	"primkit/config"
	"primkit/dates"
	"primkit/version"
)

// Document is the XML persistence form:
//
//	<primkit>
//	  <version>1.2.0</version>
//	  <pattern>yyyy-MM-dd</pattern>
//	  <range start="..." end="..."/>
//	  <property name="a" final="true"><value>1</value></property>
//	</primkit>
type Document struct {
	XMLName    xml.Name            `xml:"primkit"`
	Version    *version.Version    `xml:"version,omitempty"`
	Patterns   []dates.DatePattern `xml:"pattern"`
	Ranges     []Range             `xml:"range"`
	Properties []Property          `xml:"property"`
}

type Range struct {
	Start time.Time `xml:"start,attr"`
	End   time.Time `xml:"end,attr"`
}

func RangeOf(dr dates.DateRange) Range {
	return Range{Start: dr.Start, End: dr.End}
}

func (r Range) DateRange() (dates.DateRange, error) {
	return dates.NewDateRange(r.Start, r.End)
}

type Property struct {
	Name   string   `xml:"name,attr"`
	Final  bool     `xml:"final,attr,omitempty"`
	Source string   `xml:"source,attr,omitempty"`
	Values []string `xml:"value"`
}

// PropertiesOf lists the store content sorted by name.
func PropertiesOf(s *config.Store) []Property {
	names := s.Names()
	out := make([]Property, 0, len(names))
	for _, name := range names {
		p, _ := s.Lookup(name)
		out = append(out, Property{Name: p.Name, Final: p.Final, Source: p.Source, Values: p.Values})
	}
	return out
}

// Store rebuilds a config store from the document properties.
func (d *Document) Store(opts ...config.Option) (*config.Store, error) {
	s := config.NewStore(opts...)
	for _, p := range d.Properties {
		err := s.Put(config.Property{Name: p.Name, Values: append([]string{}, p.Values...), Final: p.Final, Source: p.Source})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func EncodeXML(w io.Writer, d *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.WithStack(err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encode xml")
	}
	return errors.WithStack(enc.Close())
}

func DecodeXML(r io.Reader) (*Document, error) {
	var d Document
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decode xml")
	}
	return &d, nil
}

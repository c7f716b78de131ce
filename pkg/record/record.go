// Package record converts messages to and from a flat, human-editable
// form that can be written as YAML or bencode.
package record

import (
	"encoding/hex"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/zeebo/bencode"
	"gopkg.in/yaml.v3"

	"github.com/movsb/peerwire/pkg/message"
)

// Supported formats.
const (
	FormatYAML    = `yaml`
	FormatBencode = `bencode`
)

// Record is a message with its fields spelled out. Byte fields are hex.
// Fields that the type does not carry are ignored when building a message.
type Record struct {
	Type   string `yaml:"type" bencode:"type"`
	Index  uint32 `yaml:"index,omitempty" bencode:"index,omitempty"`
	Begin  uint32 `yaml:"begin,omitempty" bencode:"begin,omitempty"`
	Length uint32 `yaml:"length,omitempty" bencode:"length,omitempty"`
	Bits   string `yaml:"bits,omitempty" bencode:"bits,omitempty"`
	Block  string `yaml:"block,omitempty" bencode:"block,omitempty"`
	Size   int    `yaml:"size,omitempty" bencode:"size,omitempty"`
}

// FromMessage fills a Record from m. Size is the encoded size.
func FromMessage(m message.Message) (Record, error) {
	n, err := message.EncodedLength(m)
	if err != nil {
		return Record{}, err
	}
	r := Record{Type: m.Type().String(), Size: n}
	switch typed := m.(type) {
	case message.Have:
		r.Index = typed.Index()
	case message.Bitfield:
		r.Bits = hex.EncodeToString(typed.Bits())
	case message.Request:
		r.Index, r.Begin, r.Length = typed.Index(), typed.Begin(), typed.Length()
	case message.Cancel:
		r.Index, r.Begin, r.Length = typed.Index(), typed.Begin(), typed.Length()
	case message.Piece:
		r.Index, r.Begin = typed.Index(), typed.Begin()
		r.Block = hex.EncodeToString(typed.Block())
	}
	return r, nil
}

// Message builds the message described by r.
func (r Record) Message() (message.Message, error) {
	t, err := message.ParseType(r.Type)
	if err != nil {
		return nil, errors.Wrap(err, "record")
	}
	switch t {
	case message.TypeKeepAlive:
		return message.NewKeepAlive(), nil
	case message.TypeChoke:
		return message.NewChoke(), nil
	case message.TypeUnchoke:
		return message.NewUnchoke(), nil
	case message.TypeInterested:
		return message.NewInterested(), nil
	case message.TypeUninterested:
		return message.NewUninterested(), nil
	case message.TypeHave:
		return message.NewHave(r.Index), nil
	case message.TypeBitfield:
		bits, err := hex.DecodeString(r.Bits)
		if err != nil {
			return nil, errors.Wrap(err, "record: bits")
		}
		return message.NewBitfield(bits), nil
	case message.TypeRequest:
		return message.NewRequest(r.Index, r.Begin, r.Length), nil
	case message.TypeCancel:
		return message.NewCancel(r.Index, r.Begin, r.Length), nil
	case message.TypePiece:
		block, err := hex.DecodeString(r.Block)
		if err != nil {
			return nil, errors.Wrap(err, "record: block")
		}
		return message.NewPiece(r.Index, r.Begin, block), nil
	}
	return nil, errors.Errorf("record: unhandled type %s", t)
}

// Marshal writes v in format.
func Marshal(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatYAML, ``:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "record: yaml")
		}
		return enc.Close()
	case FormatBencode:
		if err := bencode.NewEncoder(w).Encode(v); err != nil {
			return errors.Wrap(err, "record: bencode")
		}
		return nil
	}
	return errors.Errorf("record: unknown format %q", format)
}

// Unmarshal reads a single record in format.
func Unmarshal(r io.Reader, format string) (Record, error) {
	var rec Record
	switch format {
	case FormatYAML, ``:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return rec, errors.Wrap(err, "record: yaml")
		}
	case FormatBencode:
		b, err := ioutil.ReadAll(r)
		if err != nil {
			return rec, errors.Wrap(err, "record")
		}
		if err := bencode.DecodeBytes(b, &rec); err != nil {
			return rec, errors.Wrap(err, "record: bencode")
		}
	default:
		return rec, errors.Errorf("record: unknown format %q", format)
	}
	return rec, nil
}

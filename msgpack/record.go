package eatfoodmsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	KindShopping = "shopping"
	KindMeal     = "meal"
	KindDay      = "day"
)

// Record frames one stored snapshot in an export stream.
type Record struct {
	Kind        string `msgpack:"k"`
	UUID        string `msgpack:"id"`
	CreatedAtMs int64  `msgpack:"t"`
	Payload     []byte `msgpack:"p,omitempty"`
}

func Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func WriteRecord(w io.Writer, rec *Record) error {
	return msgpack.NewEncoder(w).Encode(rec)
}

// RecordBuffer accepts an export stream in arbitrary chunks and hands back
// every record that is complete so far.
type RecordBuffer struct {
	buf bytes.Buffer
}

func (rb *RecordBuffer) Feed(data []byte) ([]*Record, error) {
	rb.buf.Write(data)

	var results []*Record
	for rb.buf.Len() > 0 {
		pending := rb.buf.Bytes()
		r := bytes.NewReader(pending)
		rec := new(Record)
		if err := msgpack.NewDecoder(r).Decode(rec); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet, keep the tail
				break
			}
			return results, err
		}
		rb.buf.Next(len(pending) - r.Len())
		results = append(results, rec)
	}
	return results, nil
}

// Pending reports how many bytes are waiting for the rest of a record.
func (rb *RecordBuffer) Pending() int {
	return rb.buf.Len()
}

// ReadRecords decodes a whole export stream.
func ReadRecords(r io.Reader) ([]*Record, error) {
	var rb RecordBuffer
	var all []*Record
	chunk := make([]byte, 32*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			recs, ferr := rb.Feed(chunk[:n])
			all = append(all, recs...)
			if ferr != nil {
				return all, ferr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return all, err
		}
	}
	if rb.Pending() > 0 {
		return all, io.ErrUnexpectedEOF
	}
	return all, nil
}

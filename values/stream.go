/*
File    : suji/values/stream.go
Author  : The Suji Authors
*/
package values

import (
	"bufio"
	"io"
	"os"
)

// Stream is a handle to a readable and/or writable byte source: one of the
// process's standard streams, an open file, or a pipe endpoint created by
// the pipeline runtime. Reads are buffered so read_line works; Closed
// guards double closes.
type Stream struct {
	Name   string
	Reader io.Reader
	Writer io.Writer
	Closer io.Closer
	Closed bool

	buf *bufio.Reader
}

// GetType returns StreamType.
func (s *Stream) GetType() SujiType { return StreamType }

// ToString renders the stream by name.
func (s *Stream) ToString() string { return "stream(" + s.Name + ")" }

// ToObject returns the inspection form of the stream.
func (s *Stream) ToObject() string { return "<stream[" + s.Name + "]>" }

// NewReaderStream builds a read-only stream.
func NewReaderStream(name string, r io.Reader) *Stream {
	return &Stream{Name: name, Reader: r}
}

// NewWriterStream builds a write-only stream.
func NewWriterStream(name string, w io.Writer) *Stream {
	return &Stream{Name: name, Writer: w}
}

// NewFileStream builds a stream over an open file, readable and writable
// as far as the file's open mode allows.
func NewFileStream(f *os.File) *Stream {
	return &Stream{Name: f.Name(), Reader: f, Writer: f, Closer: f}
}

// Buffered returns the buffered reader over the stream's input side,
// creating it on first use. Nil when the stream is not readable.
func (s *Stream) Buffered() *bufio.Reader {
	if s.Reader == nil {
		return nil
	}
	if s.buf == nil {
		s.buf = bufio.NewReader(s.Reader)
	}
	return s.buf
}

// CanRead reports whether the stream has an input side.
func (s *Stream) CanRead() bool { return s.Reader != nil && !s.Closed }

// CanWrite reports whether the stream has an output side.
func (s *Stream) CanWrite() bool { return s.Writer != nil && !s.Closed }

// Close closes the underlying resource, if any. Closing twice is a no-op.
func (s *Stream) Close() error {
	if s.Closed {
		return nil
	}
	s.Closed = true
	if s.Closer != nil {
		return s.Closer.Close()
	}
	return nil
}

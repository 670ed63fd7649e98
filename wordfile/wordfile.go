// Package wordfile reads and writes plain word lists, one word per line.
//
// Reading is split into a streaming Reader, which only deals with lines, and
// Load, which validates each line and appends the survivors to a list.
package wordfile

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
	"github.com/NarmeenMousa31/Radix-Sort/wordcheck"
)

// tracer writes to trace with key 'radixsort.wordfile'
func tracer() tracing.Trace {
	return tracing.Select("radixsort.wordfile")
}

// Reader streams lines from a word file.
type Reader struct {
	reader  *bufio.Reader
	maxLen  int
	line    int
	skipped int
}

// NewReader creates a reader that skips lines longer than maxLen bytes.
// Lines of any length are skipped without being buffered whole.
func NewReader(reader io.Reader, maxLen int) *Reader {
	return &Reader{
		reader: bufio.NewReaderSize(reader, max(4096, maxLen+2)),
		maxLen: maxLen,
	}
}

// Next returns the next line without its line ending ("\n" or "\r\n").
// Lines longer than maxLen are skipped entirely.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for {
		chunk, err := r.reader.ReadSlice('\n')
		if len(chunk) == 0 && err == io.EOF {
			return "", io.EOF
		}
		r.line++
		if err == bufio.ErrBufferFull {
			// the buffer holds more than maxLen+2 bytes of this line
			if err := r.discardLine(); err != nil {
				return "", errors.Wrapf(err, "reading line %d", r.line)
			}
			r.skip()
			continue
		}
		if err != nil && err != io.EOF {
			return "", errors.Wrapf(err, "reading line %d", r.line)
		}
		line := bytes.TrimSuffix(bytes.TrimSuffix(chunk, []byte{'\n'}), []byte{'\r'})
		if len(line) > r.maxLen {
			r.skip()
			continue
		}
		return string(line), nil
	}
}

func (r *Reader) skip() {
	r.skipped++
	tracer().Infof("line %d longer than %d characters, skipping", r.line, r.maxLen)
}

// discardLine drops input up to and including the next newline.
func (r *Reader) discardLine() error {
	for {
		_, err := r.reader.ReadSlice('\n')
		switch err {
		case nil, io.EOF:
			return nil
		case bufio.ErrBufferFull:
		default:
			return err
		}
	}
}

// Line returns the number of the line last read, starting at 1.
func (r *Reader) Line() int {
	return r.line
}

// Skipped returns the number of overlong lines skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Rejection records a line refused by the checker.
type Rejection struct {
	Line int
	Word string
	Err  error
}

// Report summarizes one Load.
type Report struct {
	Accepted int
	Rejected []Rejection
	Overlong int
}

// Load reads words from reader, validates them with checker and inserts the
// valid ones at the tail of list, in file order. Invalid words are collected in
// the report, they do not stop loading.
func Load(list *radixsort.List, reader io.Reader, checker *wordcheck.Checker) (Report, error) {
	var report Report
	r := NewReader(reader, checker.MaxLen())
	for {
		word, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Overlong = r.Skipped()
			return report, err
		}
		if err := checker.Check(word); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Line: r.Line(), Word: word, Err: err})
			continue
		}
		list.Insert(word)
		report.Accepted++
	}
	report.Overlong = r.Skipped()
	tracer().Infof("loaded %d words, rejected %d, skipped %d overlong lines",
		report.Accepted, len(report.Rejected), report.Overlong)
	return report, nil
}

// LoadFile is Load on the file at path.
func LoadFile(list *radixsort.List, path string, checker *wordcheck.Checker) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, errors.Wrapf(err, "opening word file %s", path)
	}
	defer f.Close()
	report, err := Load(list, f, checker)
	if err != nil {
		return report, errors.Wrapf(err, "loading word file %s", path)
	}
	return report, nil
}

// Save writes the words of list to writer, head to tail, one per line.
func Save(writer io.Writer, list *radixsort.List) error {
	w := bufio.NewWriter(writer)
	for word := range list.All() {
		if _, err := w.WriteString(word); err != nil {
			return errors.Wrap(err, "writing word")
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing word")
		}
	}
	return errors.Wrap(w.Flush(), "flushing word list")
}

// SaveFile writes the words of list to the file at path, replacing it.
func SaveFile(path string, list *radixsort.List) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating word file %s", path)
	}
	if err := Save(f, list); err != nil {
		f.Close()
		return errors.Wrapf(err, "saving word file %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing word file %s", path)
	}
	tracer().Infof("saved %d words to %s", list.Len(), path)
	return nil
}

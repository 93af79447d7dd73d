package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Longer lines are replaced by an empty line.
const MaxLineLength = 64 * 1024

// Reader hands out lines from an input stream, one per prompt.
// Lines are scanned in the background so that a read can give up after a deadline.
type Reader struct {
	in    io.Reader
	out   io.Writer
	lines chan string
	once  sync.Once
	err   error // set before lines is closed
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// ReadLine prompts and blocks until a line or the end of input arrives.
func (r *Reader) ReadLine(prompt string) (string, error) {
	r.prompt(prompt)
	line, ok := <-r.lines
	return r.receive(line, ok)
}

// ReadLineWithin prompts and waits at most d for a line.
// ok is false if the deadline passed first.
func (r *Reader) ReadLineWithin(prompt string, d time.Duration) (string, bool, error) {
	r.prompt(prompt)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case line, ok := <-r.lines:
		line, err := r.receive(line, ok)
		return line, err == nil, err
	case <-timer.C:
		fmt.Fprintln(r.out)
		return "", false, nil
	}
}

func (r *Reader) prompt(p string) {
	r.once.Do(func() { go r.scan() })
	fmt.Fprint(r.out, p)
}

// receive turns a closed channel into the error that ended the scan.
func (r *Reader) receive(line string, ok bool) (string, error) {
	if !ok {
		return "", r.err
	}
	return line, nil
}

func (r *Reader) scan() {
	reader := bufio.NewReader(r.in)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 || err == nil {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if len(line) > MaxLineLength {
				glog.Warningf("Dropping %d byte input line, longer than %d bytes", len(line), MaxLineLength)
				line = ""
			}
			r.lines <- line
		}
		if err != nil {
			r.err = err
			break
		}
	}

	if r.err != io.EOF {
		glog.Errorf("Reading console input: %v", r.err)
	}
	close(r.lines)
}

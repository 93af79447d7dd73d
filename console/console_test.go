package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("1,2,3\r\n4\n"), &out)

	expected := []string{"1,2,3", "4"}
	for _, e := range expected {
		line, err := r.ReadLine("> ")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if line != e {
			t.Errorf("Read %q, expected %q", line, e)
		}
	}

	if out.String() != "> > " {
		t.Errorf("Prompts not written as expected, got %q", out.String())
	}
}

func TestReadLine_EOFIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader(""), io.Discard)

	for range 3 {
		if _, err := r.ReadLine("> "); !errors.Is(err, io.EOF) {
			t.Errorf("Expected io.EOF after end of input, got %v", err)
		}
	}
	if _, ok, err := r.ReadLineWithin("> ", time.Second); ok || !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF from bounded read after end of input, got ok=%v err=%v", ok, err)
	}
}

func TestReadLineWithin_Timeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr, io.Discard)

	line, ok, err := r.ReadLineWithin("> ", 20*time.Millisecond)
	if ok || err != nil || line != "" {
		t.Errorf("Expected timeout, got line=%q ok=%v err=%v", line, ok, err)
	}

	// a line written after the timeout goes to the next prompt
	go pw.Write([]byte("7\n"))

	line, ok, err = r.ReadLineWithin("> ", time.Second)
	if !ok || err != nil || line != "7" {
		t.Errorf("Expected line \"7\", got line=%q ok=%v err=%v", line, ok, err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken console")
}

func TestReadLine_ScanError(t *testing.T) {
	r := NewReader(failingReader{}, io.Discard)

	_, err := r.ReadLine("> ")
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("Expected the underlying read error, got %v", err)
	}
}

func TestReadLine_OverlongLineDropped(t *testing.T) {
	long := strings.Repeat("1,", 40000) + "2"
	r := NewReader(strings.NewReader(long+"\n3\n"), io.Discard)

	line, err := r.ReadLine("> ")
	if err != nil || line != "" {
		t.Errorf("Expected over-long line to read as empty, got %d bytes (err %v)", len(line), err)
	}

	line, err = r.ReadLine("> ")
	if err != nil || line != "3" {
		t.Errorf("Expected \"3\" after the over-long line, got %q (err %v)", line, err)
	}
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	r := NewReader(strings.NewReader("5"), io.Discard)

	if line, err := r.ReadLine("> "); err != nil || line != "5" {
		t.Errorf("Expected \"5\", got %q (err %v)", line, err)
	}
	if _, err := r.ReadLine("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

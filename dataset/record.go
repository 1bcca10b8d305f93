package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedLine is returned when an input line has no tab separator.
var ErrMalformedLine = errors.New("dataset: malformed line")

// Record is one actor appearing in one title.
type Record struct {
	Name  string
	Title string
}

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadTSV parses name<TAB>title lines from r. Both fields are trimmed;
// anything after a second tab is ignored. Blank lines are skipped.
func ReadTSV(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []Record
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: no tab separator", ErrMalformedLine, lineNo)
		}
		out = append(out, Record{
			Name:  strings.TrimSpace(fields[0]),
			Title: strings.TrimSpace(fields[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read line %d: %w", lineNo+1, err)
	}

	return out, nil
}

// ReadFile opens path and parses it with ReadTSV.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadTSV(f)
}

package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is one GEDCOM line with its subordinate lines.
type Line struct {
	Level    int
	Xref     string
	Tag      string
	Value    string
	Children []*Line
}

// Record is a level-0 GEDCOM record.
type Record struct {
	*Line
}

// Type returns the record type, e.g. INDI or OBJE.
func (r Record) Type() RecordType { return RecordType(r.Tag) }

// Find returns the first descendant line at the colon-separated path, e.g.
// "FILE:FORM:TYPE", or nil.
func (l *Line) Find(path string) *Line {
	cur := l
	for _, tag := range strings.Split(path, ":") {
		var next *Line
		for _, c := range cur.Children {
			if c.Tag == tag {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Has reports whether a line exists at path.
func (l *Line) Has(path string) bool { return l.Find(path) != nil }

// ValueAt returns the value at path, or "".
func (l *Line) ValueAt(path string) string {
	if f := l.Find(path); f != nil {
		return f.Value
	}
	return ""
}

// Parse reads a GEDCOM stream and returns its level-0 records. CONC and
// CONT lines are folded into their parent's value.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	var stack []*Line
	n := 0
	for sc.Scan() {
		n++
		raw := strings.TrimRight(sc.Text(), "\r")
		if n == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		raw = strings.TrimLeft(raw, " \t")
		if raw == "" {
			continue
		}

		line, err := parseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}

		if line.Level == 0 {
			stack = append(stack[:0], line)
			records = append(records, Record{line})
			continue
		}
		if line.Level > len(stack) {
			return nil, fmt.Errorf("line %d: level %d has no parent", n, line.Level)
		}
		stack = stack[:line.Level]
		parent := stack[line.Level-1]

		switch line.Tag {
		case "CONC":
			parent.Value += line.Value
			continue
		case "CONT":
			parent.Value += "\n" + line.Value
			continue
		}

		parent.Children = append(parent.Children, line)
		stack = append(stack, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read gedcom: %w", err)
	}
	return records, nil
}

func parseLine(s string) (*Line, error) {
	fields := strings.SplitN(s, " ", 2)
	level, err := strconv.Atoi(fields[0])
	if err != nil || level < 0 {
		return nil, fmt.Errorf("invalid level %q", fields[0])
	}
	if len(fields) < 2 || fields[1] == "" {
		return nil, fmt.Errorf("missing tag")
	}
	rest := fields[1]

	line := &Line{Level: level}
	if strings.HasPrefix(rest, "@") {
		end := strings.Index(rest[1:], "@")
		if end < 0 {
			return nil, fmt.Errorf("unterminated xref %q", rest)
		}
		line.Xref = rest[1 : end+1]
		rest = strings.TrimLeft(rest[end+2:], " ")
	}

	tag, value, _ := strings.Cut(rest, " ")
	if tag == "" {
		return nil, fmt.Errorf("missing tag")
	}
	line.Tag = tag
	line.Value = value
	return line, nil
}

// Contains reports whether tag appears anywhere below l.
func (l *Line) Contains(tag string) bool {
	for _, c := range l.Children {
		if c.Tag == tag || c.Contains(tag) {
			return true
		}
	}
	return false
}

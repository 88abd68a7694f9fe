package mailheader

import (
	"bufio"
	"strings"
)

type keyField struct {
	index int    // field-index
	name  string // original field-name
}

// Headers is a parsed header block that keeps the original field order.
type Headers struct {
	keys   map[string]keyField // lowercased field-name -> first occurrence
	fields []Field
}

// Parse splits a header block into fields. Continuation lines starting
// with SP or HT are appended to the preceding field; lines that are
// neither a field nor a continuation are skipped.
func Parse(block string) Headers {
	keys := map[string]keyField{}
	fields := parseFields(block)

	for i, field := range fields {
		key := strings.ToLower(field.Name)
		if _, exists := keys[key]; !exists {
			keys[key] = keyField{index: i, name: field.Name}
		}
	}

	return Headers{keys: keys, fields: fields}
}

func parseFields(block string) (fields []Field) {
	var current *Field
	scanner := bufio.NewScanner(strings.NewReader(block))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current != nil {
				current.Values = append(current.Values, strings.TrimLeft(line, " \t"))
			}
		} else if i := strings.Index(line, ":"); i > 0 {
			fields = append(fields, Field{
				Name:   strings.TrimSpace(line[:i]),
				Values: []string{strings.TrimSpace(line[i+1:])},
			})
			current = &fields[len(fields)-1]
		} else {
			current = nil
		}
	}

	return
}

// Get returns the unfolded value of the first field with the given name,
// compared case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	key, exists := h.keys[strings.ToLower(name)]
	if !exists || key.index >= len(h.fields) {
		return "", false
	}
	return strings.TrimSpace(h.fields[key.index].Value()), true
}

// Has reports whether a field with the given name is present.
func (h Headers) Has(name string) bool {
	_, exists := h.keys[strings.ToLower(name)]
	return exists
}

// Fields returns all fields in their original order, duplicates included.
func (h Headers) Fields() []Field {
	return h.fields
}

// Len returns the number of fields.
func (h Headers) Len() int {
	return len(h.fields)
}

// String rebuilds the header block, folding multi-line values with a
// leading tab.
func (h Headers) String() string {
	var b strings.Builder

	for _, field := range h.fields {
		if len(field.Values) == 0 {
			continue
		}
		b.WriteString(field.Name + ": " + field.Values[0] + "\n")
		for _, value := range field.Values[1:] {
			b.WriteString("\t" + value + "\n")
		}
	}

	return b.String()
}

// SplitHeadersFromBody splits a message at its first blank line. The
// returned header block keeps its final line terminator. A message with no
// blank line is all headers.
func SplitHeadersFromBody(s string) (string, string) {
	lf := strings.Index(s, "\n\n")
	crlf := strings.Index(s, "\r\n\r\n")

	switch {
	case crlf != -1 && (lf == -1 || crlf < lf):
		return s[:crlf+2], s[crlf+4:]
	case lf != -1:
		return s[:lf+1], s[lf+2:]
	}
	return s, ""
}

// Package message turns uploaded files into the text handed to the
// extractor: charset conversion for plain text and optional MIME
// flattening for .eml files.
package message

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/emurenMRz/emailparser/internal/mailheader"
	"github.com/jhillyerd/enmime"
)

// Headers that describe the raw encoding and stop being true once the
// message is flattened.
var encodingHeaders = map[string]bool{
	"content-type":              true,
	"content-transfer-encoding": true,
	"mime-version":              true,
}

// Decoder flattens MIME messages into plain "headers, blank line, body"
// text.
type Decoder struct {
	// PreferHTML renders the HTML part as Markdown instead of using the
	// plain-text part.
	PreferHTML bool

	conv *converter.Converter
}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Decode decodes header encoded-words, transfer encodings and charsets.
// Text without a header block is returned unchanged.
func (d *Decoder) Decode(raw string) (string, error) {
	block, _ := mailheader.SplitHeadersFromBody(raw)
	h := mailheader.Parse(block)
	if h.Len() == 0 {
		return raw, nil
	}

	env, err := enmime.ReadEnvelope(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode message: %w", err)
	}

	var b strings.Builder
	seen := map[string]int{}
	for _, f := range h.Fields() {
		key := strings.ToLower(f.Name)
		if encodingHeaders[key] {
			continue
		}
		value := f.Value()
		if decoded := env.GetHeaderValues(f.Name); seen[key] < len(decoded) {
			value = decoded[seen[key]]
		}
		seen[key]++
		b.WriteString(f.Name + ": " + value + "\n")
	}
	b.WriteString("\n")

	body := env.Text
	if d.PreferHTML && env.HTML != "" {
		md, err := d.conv.ConvertString(env.HTML)
		if err != nil {
			return "", fmt.Errorf("convert html body: %w", err)
		}
		body = md
	}
	b.WriteString(body)

	return b.String(), nil
}

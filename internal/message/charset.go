package message

import (
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"

	"github.com/emurenMRz/emailparser/internal/extract"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ReadText reads r as text encoded in charset. An empty charset passes the
// bytes through untouched.
func ReadText(r io.Reader, charset string) (string, error) {
	if charset != "" {
		enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
		if err != nil || enc == nil {
			return "", extract.Errorf(extract.EINVALID, "unknown charset %q", charset)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return string(b), nil
}

// CharsetReader converts input in the named charset to UTF-8. Unknown
// charsets are passed through as-is.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

var wordDecoder = &mime.WordDecoder{CharsetReader: CharsetReader}

// DecodeHeader decodes RFC 2047 encoded-words such as
// "=?ISO-2022-JP?B?...?=". Undecodable input is returned unchanged.
func DecodeHeader(s string) string {
	if dec, err := wordDecoder.DecodeHeader(s); err == nil {
		return dec
	}
	return s
}

// DecodeAddressList renders an address header as "Name <addr>, addr".
func DecodeAddressList(header string) string {
	if header == "" {
		return ""
	}
	addrs, err := mail.ParseAddressList(header)
	if err != nil {
		return DecodeHeader(header)
	}
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name != "" {
			parts = append(parts, DecodeHeader(a.Name)+" <"+a.Address+">")
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}

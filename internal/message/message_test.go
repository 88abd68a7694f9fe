package message_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	t.Parallel()

	t.Run("passes bytes through without charset", func(t *testing.T) {
		t.Parallel()

		text, err := message.ReadText(strings.NewReader("Subject: hi\n"), "")

		require.NoError(t, err)
		assert.Equal(t, "Subject: hi\n", text)
	})

	t.Run("transcodes latin-1", func(t *testing.T) {
		t.Parallel()

		text, err := message.ReadText(bytes.NewReader([]byte{'C', 'a', 'f', 0xE9}), "ISO-8859-1")

		require.NoError(t, err)
		assert.Equal(t, "Café", text)
	})

	t.Run("rejects unknown charset", func(t *testing.T) {
		t.Parallel()

		_, err := message.ReadText(strings.NewReader("x"), "no-such-charset")

		assert.Equal(t, extract.EINVALID, extract.ErrorCode(err))
	})
}

func TestDecodeAddressList(t *testing.T) {
	t.Parallel()

	got := message.DecodeAddressList("=?UTF-8?Q?Ren=C3=A9?= <rene@example.com>, bob@example.com")

	assert.Equal(t, "René <rene@example.com>, bob@example.com", got)
	assert.Empty(t, message.DecodeAddressList(""))
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("returns headerless text unchanged", func(t *testing.T) {
		t.Parallel()

		text := "Dear John, your code: AB12"
		got, err := message.NewDecoder().Decode(text)

		require.NoError(t, err)
		assert.Equal(t, text, got)
	})

	t.Run("decodes quoted-printable body and encoded subject", func(t *testing.T) {
		t.Parallel()

		raw := "From: a@example.com\r\n" +
			"Subject: =?UTF-8?Q?Caf=C3=A9_order?=\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=utf-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			"Your caf=C3=A9 order is ready.\r\n"

		got, err := message.NewDecoder().Decode(raw)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, "From: a@example.com\nSubject: Café order\n\n"))
		assert.Contains(t, got, "Your café order is ready.")
		assert.NotContains(t, got, "Content-Transfer-Encoding")

		r, err := extract.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "Café order", r.Subject)
	})

	t.Run("renders html part as markdown", func(t *testing.T) {
		t.Parallel()

		raw := "From: a@example.com\n" +
			"Subject: news\n" +
			"MIME-Version: 1.0\n" +
			"Content-Type: multipart/alternative; boundary=\"XYZ\"\n" +
			"\n" +
			"--XYZ\n" +
			"Content-Type: text/plain; charset=utf-8\n" +
			"\n" +
			"Hello World\n" +
			"--XYZ\n" +
			"Content-Type: text/html; charset=utf-8\n" +
			"\n" +
			"<p>Hello <b>World</b></p>\n" +
			"--XYZ--\n"

		d := message.NewDecoder()
		d.PreferHTML = true
		got, err := d.Decode(raw)

		require.NoError(t, err)
		assert.Contains(t, got, "Hello **World**")
	})
}

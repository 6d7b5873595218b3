package smtp

import (
	"bytes"
	"fmt"
	"mime"
	"net/mail"
	"strings"
	"time"
)

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

var headerSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

func formatAddress(addr string) string {
	parsed, err := mail.ParseAddress(headerSanitizer.Replace(addr))
	if err != nil {
		return headerSanitizer.Replace(addr)
	}
	return parsed.String()
}

// Bytes renders the message as an RFC 5322 plain-text email.
func (m Message) Bytes(now time.Time) []byte {
	var buf bytes.Buffer

	to := make([]string, 0, len(m.To))
	for _, r := range m.To {
		to = append(to, formatAddress(r))
	}

	fmt.Fprintf(&buf, "From: %s\r\n", formatAddress(m.From))
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(to, ", "))
	if m.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", formatAddress(m.ReplyTo))
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerSanitizer.Replace(m.Subject)))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")

	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\r\n")
	}

	return buf.Bytes()
}

package smtp

import (
	"net"
	"os"
	"strconv"
	"strings"
)

const DefaultRecipient = "hr@zencrowtechnologies.com"

// Config is the outbound mail configuration, resolved once at start-up.
type Config struct {
	Host          string
	Port          int
	UseTLS        bool
	Username      string
	Password      string
	DefaultSender string
	Recipients    []string
}

func LoadConfig() Config {
	port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}

	useTLS := true
	if raw := os.Getenv("MAIL_USE_TLS"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			useTLS = parsed
		}
	}

	username := strings.TrimSpace(os.Getenv("MAIL_USERNAME"))

	sender := strings.TrimSpace(os.Getenv("MAIL_DEFAULT_SENDER"))
	if sender == "" {
		sender = username
	}

	rawRecipients, ok := os.LookupEnv("CONTACT_RECIPIENTS")
	if !ok {
		rawRecipients = DefaultRecipient
	}

	return Config{
		Host:          strings.TrimSpace(os.Getenv("MAIL_SERVER")),
		Port:          port,
		UseTLS:        useTLS,
		Username:      username,
		Password:      os.Getenv("MAIL_PASSWORD"),
		DefaultSender: sender,
		Recipients:    ParseRecipients(rawRecipients),
	}
}

// ParseRecipients splits a comma-separated address list, trimming
// whitespace and dropping empty entries.
func ParseRecipients(raw string) []string {
	recipients := make([]string, 0)
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

package config

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ZencrowWebsite/database"
	"ZencrowWebsite/internal/api/blog"
	"ZencrowWebsite/internal/api/contact"
	"ZencrowWebsite/pkg/flash"
	"ZencrowWebsite/pkg/smtp"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []smtp.Message
}

func (m *recordingMailer) Send(_ context.Context, msg smtp.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newTestServer(t *testing.T, mailer smtp.ItfSmtp, cfg smtp.Config) *Server {
	t.Helper()

	logger, _ := test.NewNullLogger()
	srv, err := NewServer(
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithDatabase(database.Config{URL: "sqlite://:memory:"}),
		WithSMTPMailer(mailer, cfg),
		WithMiddleware(),
		WithUtils(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.db.Close() })

	srv.RegisterHandler()
	return srv
}

func seedPost(t *testing.T, srv *Server, title, content string, posted time.Time) {
	t.Helper()
	_, err := srv.db.Exec(
		`INSERT INTO posts (title, content, author, date_posted) VALUES (?, ?, ?, ?)`,
		title, content, "Zencrow Team", posted.UTC(),
	)
	require.NoError(t, err)
}

func TestNewServer_RequiresDatabase(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewServer(WithFiber(NewFiber(logger)), WithLogger(logger))
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, &recordingMailer{}, smtp.Config{})

	resp, err := srv.engine.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "zencrow-website", body["service"])
	_, err = time.Parse("2006-01-02T15:04:05.000000", body["timestamp"])
	assert.NoError(t, err)
}

func TestBlogSearch_EndToEnd(t *testing.T) {
	srv := newTestServer(t, &recordingMailer{}, smtp.Config{})

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	seedPost(t, srv, "Intro to Rust", "Memory safety without a collector.", base)
	seedPost(t, srv, "Cloud Basics", "Why teams move to rust-based tooling.", base.Add(24*time.Hour))
	seedPost(t, srv, "Learning Spanish", "Language tips.", base.Add(48*time.Hour))

	resp, err := srv.engine.Test(httptest.NewRequest(fiber.MethodGet, "/blog/?search=RUST", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body blog.PostListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Posts, 2)
	assert.Equal(t, "Cloud Basics", body.Posts[0].Title)
	assert.Equal(t, "Intro to Rust", body.Posts[1].Title)
	assert.Equal(t, "RUST", body.SearchQuery)
}

func TestContactSubmit_EndToEnd(t *testing.T) {
	mailer := &recordingMailer{}
	srv := newTestServer(t, mailer, smtp.Config{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "bot@zencrow.example",
		Password:   "s3cr3t-pass",
		Recipients: []string{"hr@zencrow.example"},
	})

	form := url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@client.org"},
		"subject":  {"Spanish lessons"},
		"message":  {"Group pricing please."},
		"language": {"Spanish"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := srv.engine.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@client.org", mailer.sent[0].ReplyTo)
	assert.Equal(t, 1, strings.Count(mailer.sent[0].Body, "LANGUAGE LEARNING DETAILS"))
	assert.NotContains(t, mailer.sent[0].Body, "IT SERVICES DETAILS")
}

func TestContactSubmit_MissingConfigSendsNothing(t *testing.T) {
	mailer := &recordingMailer{}
	srv := newTestServer(t, mailer, smtp.Config{Recipients: []string{"hr@zencrow.example"}})

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@client.org"},
		"subject": {"Hello"},
		"message": {"Hi"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := srv.engine.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, mailer.sent)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	srv := newTestServer(t, &recordingMailer{}, smtp.Config{})

	resp, err := srv.engine.Test(httptest.NewRequest(fiber.MethodGet, "/nowhere", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func contactPage(t *testing.T, srv *Server, name, value string) contact.PageResponse {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/contact/", nil)
	req.AddCookie(&http.Cookie{Name: name, Value: value})

	resp, err := srv.engine.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var page contact.PageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}

func TestFlashCookie_IsEncrypted(t *testing.T) {
	srv := newTestServer(t, &recordingMailer{}, smtp.Config{})

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@client.org"},
		"subject": {"Hello"},
		"message": {"Hi"},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := srv.engine.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var flashCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "zencrow_flash" {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie)

	category, text := contact.ConfigMissing().UserMessage()
	plain, err := json.Marshal([]flash.Message{{Category: category, Text: text}})
	require.NoError(t, err)
	assert.NotEqual(t, base64.RawURLEncoding.EncodeToString(plain), flashCookie.Value)

	page := contactPage(t, srv, flashCookie.Name, flashCookie.Value)
	require.Len(t, page.Flashes, 1)
	assert.Equal(t, text, page.Flashes[0].Text)
}

func TestFlashCookie_RejectsForgedValue(t *testing.T) {
	srv := newTestServer(t, &recordingMailer{}, smtp.Config{})

	forged := base64.RawURLEncoding.EncodeToString([]byte(`[{"category":"success","text":"forged"}]`))

	page := contactPage(t, srv, "zencrow_flash", forged)
	assert.Empty(t, page.Flashes)
}

func TestWithCookieKey(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(make([]byte, 32))

	srv := &Server{}
	require.NoError(t, WithCookieKey(key)(srv))
	assert.Equal(t, key, srv.cookieKey)

	assert.Error(t, WithCookieKey("short")(&Server{}))

	require.NoError(t, WithCookieKey("")(srv))
	assert.NotEqual(t, key, srv.cookieKey)
}

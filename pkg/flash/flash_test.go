package flash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ZencrowWebsite/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	lists map[string][]string
}

func (f *fakeRedis) PushFlash(_ context.Context, key string, value string, _ time.Duration) error {
	f.lists[key] = append(f.lists[key], value)
	return nil
}

func (f *fakeRedis) PopFlashes(_ context.Context, key string) ([]string, error) {
	values := f.lists[key]
	delete(f.lists, key)
	return values, nil
}

func newApp(store Store) *fiber.App {
	app := fiber.New()
	app.Post("/add", func(c *fiber.Ctx) error {
		if err := store.Add(c, Message{Category: CategorySuccess, Text: "first"}); err != nil {
			return err
		}
		if err := store.Add(c, Message{Category: CategoryError, Text: "second"}); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/pop", func(c *fiber.Ctx) error {
		messages, err := store.Pop(c)
		if err != nil {
			return err
		}
		return c.JSON(messages)
	})
	return app
}

func roundTrip(t *testing.T, app *fiber.App) ([]Message, []*http.Cookie) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/add", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(fiber.MethodGet, "/pop", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = app.Test(req)
	require.NoError(t, err)

	var messages []Message
	require.NoError(t, decodeJSON(resp, &messages))
	return messages, cookies
}

func TestCookieStore_RoundTrip(t *testing.T) {
	messages, _ := roundTrip(t, newApp(NewCookieStore()))

	assert.Equal(t, []Message{
		{Category: CategorySuccess, Text: "first"},
		{Category: CategoryError, Text: "second"},
	}, messages)
}

func TestCookieStore_PopWithoutCookie(t *testing.T) {
	app := newApp(NewCookieStore())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/pop", nil))
	require.NoError(t, err)

	var messages []Message
	require.NoError(t, decodeJSON(resp, &messages))
	assert.Empty(t, messages)
}

func TestCookieStore_IgnoresGarbage(t *testing.T) {
	assert.Empty(t, decode("%%%not-base64"))
}

func TestRedisStore_RoundTrip(t *testing.T) {
	backend := &fakeRedis{lists: map[string][]string{}}
	messages, cookies := roundTrip(t, newApp(NewRedisStore(backend, utils.New())))

	assert.Len(t, messages, 2)
	assert.Equal(t, "second", messages[1].Text)
	assert.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, backend.lists)
}

func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

// Package flash keeps one-shot status messages between a redirect and the
// page that follows it.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	contextPkg "ZencrowWebsite/pkg/context"
	"ZencrowWebsite/pkg/redis"
	"ZencrowWebsite/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	CategorySuccess = "success"
	CategoryError   = "error"

	cookieName        = "zencrow_flash"
	sessionCookieName = "zencrow_flash_sid"
	pendingKey        = "flash_pending"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type Store interface {
	Add(c *fiber.Ctx, msg Message) error
	Pop(c *fiber.Ctx) ([]Message, error)
}

type cookieStore struct {
	maxAge time.Duration
}

func NewCookieStore() Store {
	return &cookieStore{maxAge: 5 * time.Minute}
}

func (s *cookieStore) Add(c *fiber.Ctx, msg Message) error {
	pending, ok := c.Locals(pendingKey).([]Message)
	if !ok {
		pending = decode(c.Cookies(cookieName))
	}
	pending = append(pending, msg)
	c.Locals(pendingKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		Expires:  time.Now().Add(s.maxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

func (s *cookieStore) Pop(c *fiber.Ctx) ([]Message, error) {
	value := c.Cookies(cookieName)
	if value == "" {
		return []Message{}, nil
	}
	c.ClearCookie(cookieName)
	return decode(value), nil
}

func decode(value string) []Message {
	messages := make([]Message, 0)
	if value == "" {
		return messages
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return messages
	}
	if err := json.Unmarshal(raw, &messages); err != nil {
		return make([]Message, 0)
	}
	return messages
}

type redisStore struct {
	client redis.IRedis
	utils  utils.IUtils
	ttl    time.Duration
}

// NewRedisStore keeps messages server-side; the browser only holds an
// opaque session id.
func NewRedisStore(client redis.IRedis, u utils.IUtils) Store {
	return &redisStore{client: client, utils: u, ttl: 5 * time.Minute}
}

func (s *redisStore) Add(c *fiber.Ctx, msg Message) error {
	sid, _ := c.Locals(sessionCookieName).(string)
	if sid == "" {
		sid = c.Cookies(sessionCookieName)
	}
	if sid == "" {
		var err error
		sid, err = s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		c.Locals(sessionCookieName, sid)
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookieName,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.client.PushFlash(contextPkg.FromFiberCtx(c), "flash:"+sid, string(raw), s.ttl)
}

func (s *redisStore) Pop(c *fiber.Ctx) ([]Message, error) {
	messages := make([]Message, 0)
	sid := c.Cookies(sessionCookieName)
	if sid == "" {
		return messages, nil
	}

	values, err := s.client.PopFlashes(contextPkg.FromFiberCtx(c), "flash:"+sid)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		var msg Message
		if err := json.Unmarshal([]byte(v), &msg); err == nil {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

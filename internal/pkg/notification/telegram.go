package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"turf-booking-service/config"
	"turf-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type TelegramSender struct {
	client Doer
	cfg    *config.TelegramConfig
}

func NewTelegramSender(client Doer, cfg *config.TelegramConfig) *TelegramSender {
	return &TelegramSender{client: client, cfg: cfg}
}

func (t *TelegramSender) Enabled() bool {
	return t.cfg.Token != "" && t.cfg.ChatID != ""
}

func (t *TelegramSender) Send(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", t.cfg.ChatID)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.cfg.BaseURL, "/"), t.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram send: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// Consumer delivers queued notifications; it runs behind a watermill router.
type Consumer struct {
	Sender *TelegramSender
	Log    log.Logger
}

func (c *Consumer) Handle(msg *message.Message) error {
	var m Message
	if err := json.Unmarshal(msg.Payload, &m); err != nil {
		// malformed payloads never succeed on retry
		c.Log.Error(msg.Context(), "error unmarshal notification", err)
		return nil
	}

	if !c.Sender.Enabled() {
		c.Log.Info(msg.Context(), "notification dropped, telegram not configured", string(m.Kind))
		return nil
	}

	return c.Sender.Send(msg.Context(), m.Text())
}

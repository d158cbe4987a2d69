package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Slack posts dependency alerts to an incoming webhook so fleet operators
// hear about report hosts that cannot export PDFs.
type Slack struct {
	Webhook string
	Client  *http.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

// DependencyAlert identifies a report host that failed the PDF-export probe.
type DependencyAlert struct {
	Host     string
	Platform string
}

// SendDependencyAlert posts the fleet-facing version of a failed probe. The
// full remediation lives in the host's own log; the alert just names the host.
func (s *Slack) SendDependencyAlert(ctx context.Context, a DependencyAlert) error {
	text := fmt.Sprintf("host %s (%s) failed the Pango probe; run depcheck there for install steps", a.Host, a.Platform)
	return s.Send(ctx, "PDF export dependency missing", text)
}

func (s *Slack) Send(ctx context.Context, title, text string) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}
	body, _ := json.Marshal(slackPayload{Text: "*" + title + "*\n" + text})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("slack non-2xx")
	}
	return nil
}

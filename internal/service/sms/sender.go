// internal/service/sms/sender.go
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com/2010-04-01"

// Sender delivers outgoing SMS through a Twilio-compatible Messages REST
// endpoint. When no account credentials are configured it reports as
// unconfigured and sends nothing.
type Sender struct {
	accountID string
	token     string
	from      string
	baseURL   string
	client    *http.Client
}

func NewSender(accountID, token, from, baseURL string) *Sender {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Sender{
		accountID: accountID,
		token:     token,
		from:      from,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the channel has credentials to attempt I/O.
func (s *Sender) Configured() bool {
	return s.accountID != "" && s.token != "" && s.from != ""
}

// Send posts one message to the provider.
func (s *Sender) Send(ctx context.Context, to, body string) error {
	if !s.Configured() {
		return fmt.Errorf("sms channel not configured")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.SetBasicAuth(s.accountID, s.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	return nil
}

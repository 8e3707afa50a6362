package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/quotedprintable"
	"strings"
	"sync"
	"testing"
	"time"

	"locust/config"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSMTPClient struct {
	authed  bool
	from    string
	rcpt    []string
	data    bytes.Buffer
	quitErr error
	rcptErr error
	closed  bool
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (c *recordingSMTPClient) Hello(string) error { return nil }

func (c *recordingSMTPClient) Auth(sasl.Client) error {
	c.authed = true

	return nil
}

func (c *recordingSMTPClient) Mail(from string, _ *smtp.MailOptions) error {
	c.from = from

	return nil
}

func (c *recordingSMTPClient) Rcpt(to string, _ *smtp.RcptOptions) error {
	if c.rcptErr != nil {
		return c.rcptErr
	}
	c.rcpt = append(c.rcpt, to)

	return nil
}

func (c *recordingSMTPClient) Data() (io.WriteCloser, error) {
	return nopWriteCloser{Writer: &c.data}, nil
}

func (c *recordingSMTPClient) Quit() error { return c.quitErr }

func (c *recordingSMTPClient) Close() error {
	c.closed = true

	return nil
}

func newTestSMTPService(cfg *config.SMTPConfig, client smtpClient) *smtpEmailService {
	return &smtpEmailService{
		cfg: cfg,
		dial: func(context.Context, string, bool) (smtpClient, error) {
			return client, nil
		},
		now:    func() time.Time { return time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC) },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testSMTPConfig() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     2525,
		Username: "alerts",
		Password: "secret",
		From:     "locust@example.com",
		To:       "ops@example.com",
	}
}

func TestSMTPEmailService_NotConfiguredIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.SMTPConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing host", cfg: &config.SMTPConfig{From: "a@b.c", To: "d@e.f"}},
		{name: "missing recipient", cfg: &config.SMTPConfig{Host: "smtp.example.com", From: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSMTPEmailService(tt.cfg, logger)

			delivered, err := svc.SendAlertEmail(context.Background(), "subject", "body")
			assert.NoError(t, err)
			assert.False(t, delivered)
		})
	}
}

func TestSMTPEmailService_SendAlertEmail(t *testing.T) {
	client := &recordingSMTPClient{}
	svc := newTestSMTPService(testSMTPConfig(), client)

	delivered, err := svc.SendAlertEmail(context.Background(), "Geofence entry: Pixel", "Device: Pixel (dev-1)\nStatus: ENTERED\n")
	require.NoError(t, err)
	assert.True(t, delivered)

	assert.True(t, client.authed)
	assert.True(t, client.closed)
	assert.Equal(t, "locust@example.com", client.from)
	assert.Equal(t, []string{"ops@example.com"}, client.rcpt)

	raw := client.data.String()
	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "Subject: Geofence entry: Pixel")
	assert.Contains(t, headers, "To: ops@example.com")
	assert.Contains(t, headers, "Date: Wed, 01 May 2024 08:30:00 +0000")

	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Device: Pixel (dev-1)")
	assert.Contains(t, string(decoded), "Status: ENTERED")
}

func TestSMTPEmailService_QuitWith250IsSuccess(t *testing.T) {
	client := &recordingSMTPClient{quitErr: &smtp.SMTPError{Code: 250, Message: "OK"}}
	svc := newTestSMTPService(testSMTPConfig(), client)

	delivered, err := svc.SendAlertEmail(context.Background(), "s", "b")
	require.NoError(t, err)
	assert.True(t, delivered)
}

func TestSMTPEmailService_RecipientRejected(t *testing.T) {
	client := &recordingSMTPClient{rcptErr: errors.New("550 mailbox unavailable")}
	svc := newTestSMTPService(testSMTPConfig(), client)

	delivered, err := svc.SendAlertEmail(context.Background(), "s", "b")
	require.Error(t, err)
	assert.False(t, delivered)
	assert.Contains(t, err.Error(), "ops@example.com")
}

func TestSMTPEmailService_DialFailure(t *testing.T) {
	svc := newTestSMTPService(testSMTPConfig(), nil)
	svc.dial = func(context.Context, string, bool) (smtpClient, error) {
		return nil, errors.New("connection refused")
	}

	delivered, err := svc.SendAlertEmail(context.Background(), "s", "b")
	require.Error(t, err)
	assert.False(t, delivered)
}

func TestSMTPEmailService_TimeoutIsDeliveryFailure(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	svc := newTestSMTPService(testSMTPConfig(), nil)
	svc.dial = func(context.Context, string, bool) (smtpClient, error) {
		<-release

		return nil, errors.New("released")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	delivered, err := svc.SendAlertEmail(ctx, "s", "b")
	require.Error(t, err)
	assert.False(t, delivered)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// stalledSMTPClient accepts the connection but never answers until closed.
type stalledSMTPClient struct {
	recordingSMTPClient
	once   sync.Once
	closed chan struct{}
}

func (c *stalledSMTPClient) Hello(string) error {
	<-c.closed

	return errors.New("use of closed network connection")
}

func (c *stalledSMTPClient) Close() error {
	c.once.Do(func() { close(c.closed) })

	return nil
}

func TestSMTPEmailService_ExpiredContextClosesConnection(t *testing.T) {
	client := &stalledSMTPClient{closed: make(chan struct{})}
	svc := newTestSMTPService(testSMTPConfig(), client)

	dialed := make(chan context.Context, 1)
	svc.dial = func(ctx context.Context, _ string, _ bool) (smtpClient, error) {
		dialed <- ctx

		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	delivered, err := svc.SendAlertEmail(ctx, "s", "b")
	require.Error(t, err)
	assert.False(t, delivered)

	select {
	case <-client.closed:
	case <-time.After(time.Second):
		t.Fatal("stalled SMTP connection was left open")
	}

	_, hasDeadline := (<-dialed).Deadline()
	assert.True(t, hasDeadline)
}

func TestClientTimeouts(t *testing.T) {
	command, submission := clientTimeouts(context.Background())
	assert.Equal(t, smtpCommandTimeout, command)
	assert.Equal(t, smtpSubmissionTimeout, submission)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	command, submission = clientTimeouts(ctx)
	assert.LessOrEqual(t, command, 5*time.Second)
	assert.Greater(t, command, 4*time.Second)
	assert.Equal(t, command, submission)

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	command, _ = clientTimeouts(expired)
	assert.Equal(t, time.Millisecond, command)
}

func TestSMTPEmailService_DefaultPort(t *testing.T) {
	svc := newTestSMTPService(&config.SMTPConfig{Host: "h"}, nil)
	assert.Equal(t, 587, svc.port())

	svc.cfg.UseTLS = true
	assert.Equal(t, 465, svc.port())

	svc.cfg.Port = 2525
	assert.Equal(t, 2525, svc.port())
}

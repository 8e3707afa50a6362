package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/quotedprintable"
	"net"
	"strconv"
	"strings"
	"time"

	"locust/config"
	"locust/internal/domain/service"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
)

// Upper bounds for exchanges whose context carries no deadline.
const (
	smtpDialTimeout       = 30 * time.Second
	smtpCommandTimeout    = time.Minute
	smtpSubmissionTimeout = 2 * time.Minute
)

// smtpDialer opens an authenticated-ready SMTP client. Tests replace it.
type smtpDialer func(ctx context.Context, addr string, useTLS bool) (smtpClient, error)

// smtpClient is the subset of *smtp.Client used to submit one message.
type smtpClient interface {
	Hello(localName string) error
	Auth(a sasl.Client) error
	Mail(from string, opts *smtp.MailOptions) error
	Rcpt(to string, opts *smtp.RcptOptions) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

type smtpEmailService struct {
	cfg    *config.SMTPConfig
	dial   smtpDialer
	now    func() time.Time
	logger *slog.Logger
}

// NewSMTPEmailService creates the alert email channel.
// A nil or incomplete config yields a sender that reports delivered=false.
func NewSMTPEmailService(cfg *config.SMTPConfig, logger *slog.Logger) service.EmailSender {
	return &smtpEmailService{
		cfg:    cfg,
		dial:   dialSMTP,
		now:    time.Now,
		logger: logger,
	}
}

func (s *smtpEmailService) configured() bool {
	return s.cfg != nil &&
		strings.TrimSpace(s.cfg.Host) != "" &&
		strings.TrimSpace(s.cfg.From) != "" &&
		strings.TrimSpace(s.cfg.To) != ""
}

// SendAlertEmail submits a plain-text message to the configured recipient.
func (s *smtpEmailService) SendAlertEmail(ctx context.Context, subject, text string) (bool, error) {
	if !s.configured() {
		s.logger.Debug("SMTP not configured, skipping alert email")

		return false, nil
	}

	msg, err := s.buildMessage(subject, text)
	if err != nil {
		return false, err
	}

	// go-smtp has no context support; submit closes the connection when ctx expires.
	done := make(chan error, 1)
	go func() {
		done <- s.submit(ctx, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return false, err
		}

		return true, nil
	case <-ctx.Done():
		return false, errors.Wrap(ctx.Err(), "smtp delivery timed out")
	}
}

func (s *smtpEmailService) submit(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.port()))

	client, err := s.dial(ctx, addr, s.cfg.UseTLS)
	if err != nil {
		return errors.Wrap(err, "could not connect to smtp server")
	}
	defer client.Close()

	stop := context.AfterFunc(ctx, func() {
		if err := client.Close(); err != nil {
			s.logger.Debug("Closing abandoned SMTP connection", slog.Any("error", err))
		}
	})
	defer stop()

	if err := client.Hello("localhost"); err != nil {
		return errors.Wrap(err, "could not greet smtp server")
	}

	if s.cfg.Username != "" || s.cfg.Password != "" {
		if err := client.Auth(sasl.NewPlainClient("", s.cfg.Username, s.cfg.Password)); err != nil {
			return errors.Wrap(err, "smtp AUTH failed")
		}
	}

	if err := client.Mail(s.cfg.From, nil); err != nil {
		return errors.Wrapf(err, "smtp server rejected mail from %q", s.cfg.From)
	}

	if err := client.Rcpt(s.cfg.To, nil); err != nil {
		return errors.Wrapf(err, "smtp server rejected mail to %q", s.cfg.To)
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp server rejected message data")
	}

	if _, err := writer.Write(msg); err != nil {
		writer.Close()

		return errors.Wrap(err, "failed to write message data")
	}

	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "smtp server did not accept message")
	}

	if err := client.Quit(); err != nil {
		// Some servers answer QUIT with 250 instead of 221
		var smtpErr *smtp.SMTPError
		if errors.As(err, &smtpErr) && smtpErr.Code == 250 {
			return nil
		}

		return errors.Wrap(err, "smtp QUIT failed")
	}

	return nil
}

func (s *smtpEmailService) port() int {
	if s.cfg.Port > 0 {
		return s.cfg.Port
	}
	if s.cfg.UseTLS {
		return 465
	}

	return 587
}

func (s *smtpEmailService) buildMessage(subject, text string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", s.cfg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", s.now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(strings.ReplaceAll(text, "\n", "\r\n"))); err != nil {
		return nil, errors.Wrap(err, "failed to encode message body")
	}
	if err := qp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode message body")
	}

	return buf.Bytes(), nil
}

// goSMTPClient adapts *smtp.Client, whose Data returns a concrete command type.
type goSMTPClient struct {
	*smtp.Client
}

func (c goSMTPClient) Data() (io.WriteCloser, error) {
	return c.Client.Data()
}

func dialSMTP(ctx context.Context, addr string, useTLS bool) (smtpClient, error) {
	dialer := &net.Dialer{Timeout: smtpDialTimeout}

	var (
		conn net.Conn
		err  error
	)

	if useTLS {
		host, _, _ := net.SplitHostPort(addr)
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12},
		}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	client := smtp.NewClient(conn)
	client.CommandTimeout, client.SubmissionTimeout = clientTimeouts(ctx)

	return goSMTPClient{Client: client}, nil
}

// clientTimeouts caps the per-command and DATA timeouts by the time left on ctx.
func clientTimeouts(ctx context.Context) (command, submission time.Duration) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return smtpCommandTimeout, smtpSubmissionTimeout
	}

	remaining := max(time.Until(deadline), time.Millisecond)

	return min(remaining, smtpCommandTimeout), min(remaining, smtpSubmissionTimeout)
}

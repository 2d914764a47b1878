// Package mailer sends the two contact-form notification emails over SMTP.
// Transport failures are absorbed: both notify operations log the error and
// report false, so a broken mail server can never fail a contact request.
package mailer

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/jordan-wright/email"
)

// Config is the outbound SMTP configuration, supplied from the environment.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// NotifyTo is the operator mailbox receiving admin notifications.
	NotifyTo string
	// Timeout bounds the dial and every subsequent read/write on the session.
	Timeout time.Duration
}

// Mailer sends contact-form notifications. Both operations report
// transport-level success and never return an error.
type Mailer interface {
	NotifyAdmin(sub *model.ContactSubmission) bool
	NotifyApplicant(sub *model.ContactSubmission) bool
}

type smtpMailer struct {
	cfg Config
}

// New creates an SMTP-backed Mailer. A zero Timeout defaults to 10 seconds.
func New(cfg Config) Mailer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &smtpMailer{cfg: cfg}
}

// configured reports whether outbound credentials are present. When they are
// not, notifications fail fast without touching the network.
func (m *smtpMailer) configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// NotifyAdmin mails the operator mailbox about a new submission.
func (m *smtpMailer) NotifyAdmin(sub *model.ContactSubmission) bool {
	if !m.configured() {
		slog.Error("smtp credentials not configured, skipping admin notification")
		return false
	}

	company := "Not provided"
	if sub.Company != nil && *sub.Company != "" {
		company = *sub.Company
	}

	e := email.NewEmail()
	e.From = m.cfg.Username
	e.To = []string{m.cfg.NotifyTo}
	e.ReplyTo = []string{fmt.Sprintf("%s <%s>", sub.Name, sub.Email)}
	e.Subject = fmt.Sprintf("New Contact Form Submission from %s", sub.Name)
	e.Text = []byte(fmt.Sprintf(
		`New contact form submission received:

Contact Information:
- Name: %s
- Email: %s
- Company: %s
- Submission ID: %s

Message:
%s

---
This is an automated notification from the Alaama Creative Studio website.
Please reply directly to %s to respond to this inquiry.
`, sub.Name, sub.Email, company, sub.ID, sub.Message, sub.Email))

	if err := m.send(e); err != nil {
		slog.Error("failed to send admin notification", "submission_id", sub.ID, "error", err)
		return false
	}
	slog.Info("contact notification sent", "submission_id", sub.ID)
	return true
}

// NotifyApplicant mails an acknowledgment to the submitter.
func (m *smtpMailer) NotifyApplicant(sub *model.ContactSubmission) bool {
	if !m.configured() {
		return false
	}

	e := email.NewEmail()
	e.From = m.cfg.Username
	e.To = []string{sub.Email}
	e.Subject = "Thank you for contacting Alaama Creative Studio"
	e.Text = []byte(fmt.Sprintf(
		`Dear %s,

Thank you for reaching out to Alaama Creative Studio! We've received your
message and appreciate your interest in our services.

Our team will review your inquiry and get back to you within 24 hours. In the
meantime, feel free to explore our portfolio at www.alaama.co or follow us on
Instagram @alaama.bh.

If you have any urgent questions, you can also reach us directly at
info@alaama.co.

Best regards,
The Alaama Creative Studio Team

---
Alaama Creative Studio
Strategy-led brand and digital studio
Website: www.alaama.co
Instagram: @alaama.bh
Email: info@alaama.co
`, sub.Name))

	if err := m.send(e); err != nil {
		slog.Error("failed to send acknowledgment email", "submission_id", sub.ID, "error", err)
		return false
	}
	return true
}

// send delivers one message over an authenticated STARTTLS session. The
// connection deadline covers the whole exchange, not just the dial.
func (m *smtpMailer) send(e *email.Email) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, m.cfg.Timeout)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(time.Now().Add(m.cfg.Timeout)); err != nil {
		conn.Close()
		return err
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return err
		}
	}
	if err := c.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
		return err
	}

	if err := c.Mail(e.From); err != nil {
		return err
	}
	for _, rcpt := range e.To {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	raw, err := e.Bytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

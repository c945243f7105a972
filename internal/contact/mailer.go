package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
	"golang.org/x/sync/errgroup"

	"github.com/aravindvh/portfolio-api/internal/profile"
)

// ErrUnavailable reports that the SMTP relay could not be reached during
// the pre-send verification step.
var ErrUnavailable = errors.New("email service unavailable")

// Email is a rendered message ready for the transport.
type Email struct {
	FromName  string
	To        string
	ReplyTo   string
	Subject   string
	HTML      string
	MessageID string
}

// Transport delivers emails. The SMTP implementation is swapped for a
// recording fake in tests.
type Transport interface {
	// Verify checks connectivity to the relay without sending.
	Verify(ctx context.Context) error
	Send(ctx context.Context, e Email) error
}

// SMTPConfig holds the relay settings. The password comes from the
// SMTP_PASSWORD environment variable, not the config file.
type SMTPConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	AdminEmail string
}

// SMTPTransport implements Transport over go-mail. Each send dials its
// own connection; the two per-submission emails go out concurrently.
type SMTPTransport struct {
	cfg SMTPConfig
}

// NewSMTPTransport creates a transport for the given relay.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.User),
		mail.WithPassword(t.cfg.Password),
		mail.WithTimeout(15 * time.Second),
	}
	// Port 465 uses implicit TLS; everything else negotiates STARTTLS.
	if t.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	c, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return c, nil
}

func (t *SMTPTransport) Verify(ctx context.Context) error {
	c, err := t.client()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("verifying smtp connection: %w", err)
	}
	return c.Close()
}

func (t *SMTPTransport) Send(ctx context.Context, e Email) error {
	m := mail.NewMsg()
	if err := m.FromFormat(e.FromName, t.cfg.User); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(e.To); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	if e.ReplyTo != "" {
		if err := m.ReplyTo(e.ReplyTo); err != nil {
			return fmt.Errorf("setting reply-to: %w", err)
		}
	}
	m.Subject(e.Subject)
	m.SetMessageIDWithValue(e.MessageID)
	m.SetBodyString(mail.TypeTextHTML, e.HTML)

	c, err := t.client()
	if err != nil {
		return err
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending to %s: %w", e.To, err)
	}
	return nil
}

// Dispatcher validates submissions and sends the admin notification and
// user confirmation emails.
type Dispatcher struct {
	transport  Transport
	adminEmail string
	ownerName  string
	ownerRole  string
	ownerEmail string
	ownerPhone string
	linkedIn   string
}

// NewDispatcher creates a Dispatcher sending through the given transport,
// with owner details taken from the portfolio profile.
func NewDispatcher(transport Transport, adminEmail string, prof *profile.Profile) *Dispatcher {
	return &Dispatcher{
		transport:  transport,
		adminEmail: adminEmail,
		ownerName:  prof.Name,
		ownerRole:  prof.Title,
		ownerEmail: prof.Contact.Email,
		ownerPhone: prof.Contact.Phone,
		linkedIn:   prof.Contact.LinkedIn,
	}
}

// Dispatch verifies the relay, then sends both emails concurrently.
// Either send failing fails the whole dispatch; there is no retry and no
// partial-success state.
func (d *Dispatcher) Dispatch(ctx context.Context, sub Submission) (MessageIDs, error) {
	if err := d.transport.Verify(ctx); err != nil {
		log.Printf("mailer: smtp verification failed: %v", err)
		return MessageIDs{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	data := newTemplateData(sub, d, time.Now())

	adminHTML, err := renderAdminEmail(data)
	if err != nil {
		return MessageIDs{}, err
	}
	userHTML, err := renderUserEmail(data)
	if err != nil {
		return MessageIDs{}, err
	}

	ids := MessageIDs{
		Admin: uuid.NewString(),
		User:  uuid.NewString(),
	}

	adminMsg := Email{
		FromName:  "Portfolio Contact Form",
		To:        d.adminEmail,
		ReplyTo:   sub.Email,
		Subject:   fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		HTML:      adminHTML,
		MessageID: ids.Admin,
	}
	userMsg := Email{
		FromName:  d.ownerName,
		To:        sub.Email,
		Subject:   fmt.Sprintf("Thank you for reaching out, %s!", sub.Name),
		HTML:      userHTML,
		MessageID: ids.User,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.transport.Send(gctx, adminMsg) })
	g.Go(func() error { return d.transport.Send(gctx, userMsg) })
	if err := g.Wait(); err != nil {
		return MessageIDs{}, fmt.Errorf("sending contact emails: %w", err)
	}

	log.Printf("mailer: sent admin %s and user %s", ids.Admin, ids.User)
	return ids, nil
}

package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrEmailServiceNotConfigured is returned when sending is attempted while
// email delivery is disabled in configuration.
var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// Sender delivers outbound mail. Actor onboarding uses it fire-and-forget;
// delivery failure never fails the write that triggered it.
type Sender interface {
	SendWelcomeEmail(to, name, role string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendWelcomeEmail notifies a newly created agent or hotel account that its
// login has been provisioned. The password is never included; the creating
// superadmin hands it over out of band.
func (s *SMTPEmailService) SendWelcomeEmail(to, name, role string) error {
	if !s.config.Enabled {
		return ErrEmailServiceNotConfigured
	}

	subject := "Your StayOps account is ready"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to StayOps, %s!</h2>
			<p>A %s account has been created for this email address.</p>
			<p>You can sign in to the admin dashboard with this email and the
			password provided by your administrator.</p>
			<p>If you were not expecting this account, please contact your administrator.</p>
		</body>
		</html>
	`, name, role)

	plainBody := fmt.Sprintf(`
Welcome to StayOps, %s!

A %s account has been created for this email address.
You can sign in to the admin dashboard with this email and the password
provided by your administrator.

If you were not expecting this account, please contact your administrator.
	`, name, role)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

package mailer

import (
	"fmt"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// ContactForm is a public contact-page submission.
type ContactForm struct {
	FullName    string `json:"fullName" binding:"required"`
	CompanyName string `json:"companyName"`
	WorkEmail   string `json:"workEmail" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// PartnerForm is a public partnership-inquiry submission.
type PartnerForm struct {
	FullName         string `json:"fullName" binding:"required"`
	OrganisationName string `json:"organisationName"`
	WorkEmail        string `json:"workEmail" binding:"required,email"`
	PhoneNumber      string `json:"phoneNumber"`
	WebsiteURL       string `json:"websiteUrl"`
	Field            string `json:"field"`
	Location         string `json:"location"`
	Message          string `json:"message"`
}

// Mailer sends transactional mail through the external relay. The
// application alert is best-effort: callers fire it from a goroutine and
// only log failures.
type Mailer interface {
	SendApplicationAlert(applicationID, applicantEmail string) error
	SendContactForm(form ContactForm) error
	SendPartnerForm(form PartnerForm) error
}

// SMTP implements Mailer over a plain SMTP relay.
type SMTP struct {
	cfg     config.MailConfig
	baseURL string
}

// NewSMTP builds the mailer from config. baseURL is the public site root
// used to build review links in alert mails.
func NewSMTP(cfg config.MailConfig, baseURL string) *SMTP {
	return &SMTP{cfg: cfg, baseURL: baseURL}
}

func (m *SMTP) send(subject, contentType, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.AdminTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// SendApplicationAlert notifies the reviewer that a new application arrived.
func (m *SMTP) SendApplicationAlert(applicationID, applicantEmail string) error {
	appURL := fmt.Sprintf("%s/admin/applications/%s", m.baseURL, applicationID)
	body := fmt.Sprintf(
		`<p>A new job application has been submitted by %s.</p>
<p><strong>View Application:</strong> <a href=%q>%s</a></p>
<p>Submitted at: %s</p>`,
		applicantEmail, appURL, appURL, time.Now().Format(time.RFC1123),
	)
	return m.send("New Job Application Submitted", "text/html", body)
}

func (m *SMTP) SendContactForm(form ContactForm) error {
	body := fmt.Sprintf(
		"Full Name: %s\nCompany Name: %s\nWork Email: %s\nPhone Number: %s\nMessage: %s\n",
		form.FullName, form.CompanyName, form.WorkEmail, form.PhoneNumber, form.Message,
	)
	return m.send("New Contact Form Submission", "text/plain", body)
}

func (m *SMTP) SendPartnerForm(form PartnerForm) error {
	body := fmt.Sprintf(
		"Full Name: %s\nOrganisation Name: %s\nWork Email: %s\nPhone Number: %s\nWebsite: %s\nField: %s\nLocation: %s\nMessage: %s\n",
		form.FullName, form.OrganisationName, form.WorkEmail, form.PhoneNumber,
		form.WebsiteURL, form.Field, form.Location, form.Message,
	)
	return m.send("New Partner Form Submission", "text/plain", body)
}

// Package mailer renders and dispatches the tracker's notification emails.
// When disabled by configuration every send degrades to a console log, so
// development setups work without an SMTP server.
package mailer

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	"github.com/Brundha-2004/smartspend/pkg/monthsum"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config is injected at construction; there is no ambient enabled flag.
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string // public base URL used in verification links
}

// Mailer sends the four notification kinds. Safe for concurrent use.
type Mailer struct {
	cfg  Config
	tmpl *template.Template
}

func New(cfg Config) (*Mailer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	return &Mailer{cfg: cfg, tmpl: tmpl}, nil
}

// Enabled reports whether real emails are being sent.
func (m *Mailer) Enabled() bool { return m.cfg.Enabled }

// SendVerification mails the single-use account verification link.
func (m *Mailer) SendVerification(to, token string) error {
	verificationURL := fmt.Sprintf("%s/auth/verify?token=%s", m.cfg.BaseURL, token)
	if !m.cfg.Enabled {
		log.Printf("[email disabled] verification email for %s", to)
		log.Printf("[email disabled] verification URL: %s", verificationURL)
		return nil
	}
	return m.send(to, "Verify your SmartSpend account", "verification.html", map[string]any{
		"VerificationURL": verificationURL,
	})
}

// SendBudgetWarning notifies that a category sits in the 80-100% band.
func (m *Mailer) SendBudgetWarning(to, category string, amount decimal.Decimal, utilization float64) error {
	if !m.cfg.Enabled {
		log.Printf("[email disabled] budget warning for %s: category=%s utilization=%.2f%%", to, category, utilization)
		return nil
	}
	return m.send(to, "Budget Warning - "+category, "budget_warning.html", map[string]any{
		"Category":    category,
		"Amount":      amount,
		"Utilization": utilization,
	})
}

// SendBudgetExceeded notifies that a category is at or over its cap.
func (m *Mailer) SendBudgetExceeded(to, category string, amount decimal.Decimal, utilization float64) error {
	if !m.cfg.Enabled {
		log.Printf("[email disabled] budget exceeded for %s: category=%s utilization=%.2f%%", to, category, utilization)
		return nil
	}
	return m.send(to, "Budget Exceeded - "+category, "budget_exceeded.html", map[string]any{
		"Category":    category,
		"Amount":      amount,
		"Utilization": utilization,
	})
}

// SendMonthlySummary mails the assembled report.
func (m *Mailer) SendMonthlySummary(to string, report *monthsum.Report) error {
	if !m.cfg.Enabled {
		log.Printf("[email disabled] monthly summary for %s: %d/%d income=%s expenses=%s",
			to, report.Month, report.Year, report.TotalIncome, report.TotalExpenses)
		return nil
	}
	subject := fmt.Sprintf("Your Monthly Financial Summary - %d/%d", report.Month, report.Year)
	return m.send(to, subject, "monthly_summary.html", map[string]any{
		"Report":          report,
		"ExceededBudgets": report.ExceededCount(),
	})
}

func (m *Mailer) send(to, subject, templateName string, data any) error {
	var body strings.Builder
	if err := m.tmpl.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body.String())

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send %q to %s: %w", subject, to, err)
	}
	return nil
}

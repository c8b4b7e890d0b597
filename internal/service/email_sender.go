package service

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"github.com/go-mail/mail/v2"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

// MailSender es el transporte de correo consumido por el motor de recordatorios.
// Se inyecta como dependencia para poder sustituirlo por un doble en los tests.
type MailSender interface {
	SendDebtReminder(email, userName string, debt *model.Debt, msg *DebtReminderMessage) error
}

type EmailSender struct {
	dialer               *mail.Dialer
	logger               *logrus.Logger
	enabled              bool
	isInsecureSkipVerify bool
}

func NewEmailSender(logger *logrus.Logger) *EmailSender {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	enabledStr := os.Getenv("EMAIL_SENDER_ENABLED")
	isInsecureSkipVerifyStr := os.Getenv("INSECURE_SKIP_VERIFY")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		logger.Fatalf("Error al convertir SMTP_PORT: %v", err)
	}

	enabled := enabledStr == "true"
	isInsecureSkipVerify := isInsecureSkipVerifyStr == "true"
	d := mail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	d.TLSConfig = &tls.Config{
		ServerName:         smtpHost,
		InsecureSkipVerify: isInsecureSkipVerify,
	}
	return &EmailSender{
		dialer:  d,
		logger:  logger,
		enabled: enabled,
	}
}

// SendDebtReminder envía el correo de recordatorio de una deuda
func (es *EmailSender) SendDebtReminder(email, userName string, debt *model.Debt, msg *DebtReminderMessage) error {
	if !es.enabled {
		es.logger.Warn("El envío de correos está deshabilitado")
		return nil
	}

	var detail, intro string
	if debt.IsIndefinite {
		intro = "Te recordamos sobre tu deuda recurrente:"
		detail = fmt.Sprintf(
			"<li><strong>Frecuencia de recordatorio:</strong> %s</li>",
			FrequencyLabel(debt.ReminderFrequency),
		)
	} else {
		intro = "Te recordamos que tienes una deuda próxima a vencer:"
		detail = fmt.Sprintf(
			"<li><strong>Fecha de vencimiento:</strong> %s</li>",
			debt.DueDate.Format("02-01-2006"),
		)
	}

	content := fmt.Sprintf(`
		<h2>%s</h2>
		<p>Hola %s,</p>
		<p>%s</p>
		<ul>
			<li><strong>Descripción:</strong> %s</li>
			<li><strong>Monto:</strong> $%.2f</li>
			<li><strong>Categoría:</strong> %s</li>
			%s
		</ul>
		<p>Ingresa a SpendShield para ver más detalles.</p>
		<p>Saludos,<br>El equipo de SpendShield</p>
	`, msg.Title, userName, intro, debt.Description, debt.Amount, debt.Category, detail)

	return es.sendEmail(email, msg.EmailSubject, content)
}

func (es *EmailSender) sendEmail(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		es.logger.WithError(err).Error("Error al enviar email")
		return fmt.Errorf("no se pudo enviar el email: %w", err)
	}

	es.logger.Infof("Email enviado exitosamente a %s", to)
	return nil
}

// FrequencyLabel traduce la frecuencia de recordatorio a su etiqueta visible
func FrequencyLabel(frequency model.ReminderFrequency) string {
	switch frequency {
	case model.ReminderDaily:
		return "Diario"
	case model.ReminderWeekly:
		return "Semanal"
	case model.ReminderMonthly:
		return "Mensual"
	default:
		return "Semanal"
	}
}

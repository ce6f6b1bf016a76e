package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/AgtechDS/menuserve/models"
)

// MessageSender delivers the public form payloads. Split out as an
// interface so handlers can be tested without an SMTP server.
type MessageSender interface {
	SendContactMessage(msg models.ContactMessage) error
	SendSubscriptionRequest(req models.SubscriptionRequest) error
}

// Mailer delivers form submissions by email to the operator address
// and echoes a copy to the submitter.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	operator string
}

func NewMailer(host string, port int, user, password, from, operator string) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(host, port, user, password),
		from:     from,
		operator: operator,
	}
}

func (m *Mailer) SendContactMessage(msg models.ContactMessage) error {
	subject := "Richiesta di contatto: " + msg.Subject
	if msg.Subject == "" {
		subject = "Richiesta di contatto dal sito"
	}

	body := fmt.Sprintf(
		"Nome: %s\nEmail: %s\nTelefono: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Message,
	)

	return m.deliver(msg.Email, subject, body)
}

func (m *Mailer) SendSubscriptionRequest(req models.SubscriptionRequest) error {
	subject := fmt.Sprintf("Richiesta di abbonamento: %s", req.BusinessName)

	body := fmt.Sprintf(
		"Nome completo: %s\nPartita IVA: %s\nEmail: %s\nTelefono: %s\n\n"+
			"Locale: %s\nIndirizzo: %s\nCittà/CAP: %s\nSito web: %s\n\n"+
			"Piano scelto: %s\nSupporto prioritario: %t\nBackup giornalieri: %t\nDominio personalizzato: %t\n"+
			"Metodo di pagamento: %s\n\nNote:\n%s\n",
		req.FullName, req.VATNumber, req.Email, req.Phone,
		req.BusinessName, req.Address, req.CityZip, req.Website,
		req.Plan, req.PrioritySupport, req.DailyBackups, req.CustomDomain,
		req.PaymentMethod, req.Notes,
	)

	return m.deliver(req.Email, subject, body)
}

// deliver sends the message to the operator and a copy to the
// submitter in one SMTP session.
func (m *Mailer) deliver(submitter, subject, body string) error {
	operatorMsg := gomail.NewMessage()
	operatorMsg.SetHeader("From", m.from)
	operatorMsg.SetHeader("To", m.operator)
	operatorMsg.SetHeader("Reply-To", submitter)
	operatorMsg.SetHeader("Subject", subject)
	operatorMsg.SetBody("text/plain", body)

	submitterMsg := gomail.NewMessage()
	submitterMsg.SetHeader("From", m.from)
	submitterMsg.SetHeader("To", submitter)
	submitterMsg.SetHeader("Subject", "Abbiamo ricevuto la tua richiesta")
	submitterMsg.SetBody("text/plain",
		"Grazie per averci contattato. Ti risponderemo al più presto.\n\n"+
			"Riepilogo della tua richiesta:\n\n"+body)

	if err := m.dialer.DialAndSend(operatorMsg, submitterMsg); err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}
	return nil
}

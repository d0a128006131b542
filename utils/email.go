package utils

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/smtp"
	"strconv"

	"catering_manager/config"
	"catering_manager/model"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// EmailNotifier wysyła maile cyklu życia zamówienia. Wysyłka jest asynchroniczna
// i best-effort: błąd SMTP jest logowany i nigdy nie wpływa na wynik żądania.
type EmailNotifier struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
	appURL     string
}

func NewEmailNotifier() *EmailNotifier {
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return &EmailNotifier{
		host:       config.Config("SMTP_HOST"),
		port:       port,
		username:   config.Config("SMTP_USERNAME"),
		password:   config.Config("SMTP_PASSWORD"),
		from:       config.Config("SMTP_FROM"),
		adminEmail: config.Config("ADMIN_EMAIL"),
		appURL:     config.Config("APP_URL"),
	}
}

// OrderCreated wysyła potwierdzenie do klienta (z kodem QR do śledzenia
// zamówienia) oraz krótkie powiadomienie do obsługi.
func (n *EmailNotifier) OrderCreated(order *model.Order) {
	subject := "Potwierdzenie zamówienia #" + order.PublicCode
	body := fmt.Sprintf(
		"Dziękujemy za złożenie zamówienia na %s.\nŁączna kwota: %.2f zł.\nStatus zamówienia możesz śledzić pod adresem: %s",
		order.DateTime.Format("02.01.2006 15:04"),
		float64(order.SubtotalCents)/100,
		n.trackingLink(order),
	)
	go n.sendWithQR(order.UserEmail, subject, body, order)
	go n.notifyAdmin(order)
}

// StatusChanged wysyła dokładnie jedno powiadomienie na faktyczną zmianę statusu.
func (n *EmailNotifier) StatusChanged(order *model.Order) {
	var subject, body string
	switch order.Status {
	case model.StatusAccepted:
		subject = "Zamówienie zostało zaakceptowane"
		body = fmt.Sprintf("Twoje zamówienie #%s zostało zaakceptowane. Zaczniemy przygotowywać potrawy zgodnie z ustalonym terminem.", order.PublicCode)
	case model.StatusRejected:
		reason := ""
		if order.StatusReason != nil {
			reason = *order.StatusReason
		}
		subject = "Zamówienie zostało odrzucone"
		body = fmt.Sprintf("Niestety, Twoje zamówienie #%s zostało odrzucone. Powód: %s", order.PublicCode, reason)
	case model.StatusInDelivery:
		subject = "Zamówienie w drodze"
		body = fmt.Sprintf("Twoje zamówienie #%s jest już w drodze. Spodziewaj się dostawy zgodnie z ustalonym terminem.", order.PublicCode)
	case model.StatusDelivered:
		subject = "Zamówienie dostarczone"
		body = fmt.Sprintf("Twoje zamówienie #%s zostało dostarczone. Dziękujemy za skorzystanie z naszych usług! Możesz teraz ocenić nasze usługi.", order.PublicCode)
	default:
		return
	}
	go n.send(order.UserEmail, subject, body)
}

// DeliveryReminder przypomina klientowi o jutrzejszej dostawie.
func (n *EmailNotifier) DeliveryReminder(order *model.Order) {
	subject := "Przypomnienie o dostawie #" + order.PublicCode
	body := fmt.Sprintf(
		"Przypominamy o zaplanowanej dostawie zamówienia #%s w dniu %s.\nAdres dostawy: %s",
		order.PublicCode,
		order.DateTime.Format("02.01.2006 15:04"),
		order.Address,
	)
	go n.send(order.UserEmail, subject, body)
}

func (n *EmailNotifier) trackingLink(order *model.Order) string {
	return fmt.Sprintf("%s/zamowienie/%s", n.appURL, order.PublicCode)
}

func (n *EmailNotifier) send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.host, n.port, n.username, n.password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Błąd wysyłki maila do %s: %v", to, err)
	}
}

func (n *EmailNotifier) sendWithQR(to, subject, body string, order *model.Order) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	qrBytes, err := GenerateQRCode(n.trackingLink(order), 256)
	if err != nil {
		log.Printf("Błąd generowania QR dla zamówienia %s: %v", order.PublicCode, err)
	} else {
		filename := fmt.Sprintf("Zamowienie_%s.png", order.PublicCode)
		m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(qrBytes))
			return err
		}))
	}

	d := gomail.NewDialer(n.host, n.port, n.username, n.password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Błąd wysyłki potwierdzenia do %s: %v", to, err)
	}
}

// notifyAdmin wysyła obsłudze notkę o nowym zamówieniu.
func (n *EmailNotifier) notifyAdmin(order *model.Order) {
	if n.adminEmail == "" {
		return
	}
	e := email.NewEmail()
	e.From = n.from
	e.To = []string{n.adminEmail}
	e.Subject = "Nowe zamówienie #" + order.PublicCode
	e.Text = []byte(fmt.Sprintf(
		"Otrzymano nowe zamówienie od %s na %s.\nLiczba osób: %d, kwota: %.2f zł.",
		order.UserName,
		order.DateTime.Format("02.01.2006"),
		order.PeopleCount,
		float64(order.SubtotalCents)/100,
	))
	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := e.Send(addr, smtp.PlainAuth("", n.username, n.password, n.host)); err != nil {
		log.Printf("Błąd powiadomienia administratora: %v", err)
	}
}

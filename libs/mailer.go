package libs

import (
	"errors"
	"fmt"
	"html"

	"lokalin/config"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP configuration missing")

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, ErrMailerNotConfigured
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

// SendApplicationDecision tells an applicant whether their seller
// application was approved or rejected.
func (m *Mailer) SendApplicationDecision(toEmail, name, storeName, status string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)

	var subject, headline, body string
	if status == "approved" {
		subject = "Pengajuan Seller Disetujui - Lokal.in"
		headline = "Selamat, pengajuan Anda disetujui!"
		body = fmt.Sprintf("Toko <strong>%s</strong> kini dapat didaftarkan di Lokal.in. Silakan login dan tambahkan UMKM Anda.",
			html.EscapeString(storeName))
	} else {
		subject = "Pengajuan Seller Ditolak - Lokal.in"
		headline = "Pengajuan Anda belum dapat disetujui"
		body = fmt.Sprintf("Mohon maaf, pengajuan untuk toko <strong>%s</strong> ditolak oleh admin. Anda dapat mengajukan kembali dengan data yang lebih lengkap.",
			html.EscapeString(storeName))
	}
	msg.SetHeader("Subject", subject)

	msg.SetBody("text/html", fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <div style="font-size: 24px; font-weight: bold; color: #E31B23; text-align: center;">Lokal.in</div>
        <h2 style="color: #1A1A1A;">%s</h2>
        <p>Halo %s,</p>
        <p>%s</p>
        <p style="color: #666; font-size: 14px; margin-top: 30px;">Salam hangat,<br>Tim Lokal.in</p>
    </div>
</body>
</html>
	`, headline, html.EscapeString(name), body))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

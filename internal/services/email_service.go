package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"nsuemschool/internal/models"
)

type EmailService interface {
	SendWelcomeEmail(email, fullName string) error
	SendLeadNotification(to string, req *models.ConsultationRequest) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, fullName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Добро пожаловать в школу программирования НГУЭУ!")

	body := fmt.Sprintf(`
		<h2>Здравствуйте, %s!</h2>
		<p>Спасибо за регистрацию на сайте школы программирования НГУЭУ.</p>
		<p>Ваш аккаунт успешно создан — теперь вам доступен личный кабинет.</p>
		<p>С уважением,<br>Команда школы программирования НГУЭУ</p>
	`, fullName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

func (s *emailService) SendLeadNotification(to string, req *models.ConsultationRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Новая заявка на консультацию")

	body := fmt.Sprintf(`
		<h3>Поступила новая заявка на консультацию</h3>
		<p><strong>Имя:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Телефон:</strong> %s</p>
		<p><strong>Дата:</strong> %s</p>
	`, req.FullName, req.Email, req.Phone, req.Date.Format("02.01.2006 15:04"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	return nil
}

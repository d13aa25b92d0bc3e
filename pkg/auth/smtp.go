package auth

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

func SendResetEmail(cfg SMTPConfig, to string, resetLink string) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return fmt.Errorf("неверный порт SMTP: %v", err)
	}

	message := fmt.Sprintf("<html><body><p>Для сброса пароля перейдите по <a href='%s'>ссылке</a>.</p></body></html>", resetLink)

	dialer := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password)

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Восстановление пароля")
	msg.SetBody("text/html", message)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("ошибка отправки письма: %v", err)
	}
	return nil
}

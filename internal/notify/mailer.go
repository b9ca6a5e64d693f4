package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"ss-collections-api/internal/core/config"
)

// Mailer 密码重置邮件投递方，对上层是黑盒
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token, name string) error
}

// SMTPMailer 普通 SMTP 投递
type SMTPMailer struct {
	cfg config.Mail
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer { return &SMTPMailer{cfg: cfg} }

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, token, name string) error {
	if name == "" {
		name = "there"
	}
	resetURL := fmt.Sprintf("%s?token=%s", m.cfg.ResetBaseURL, token)
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset your password\r\n\r\n"+
			"Hi %s,\r\n\r\n"+
			"We received a request to reset your password. The link below is valid for 1 hour:\r\n\r\n%s\r\n\r\n"+
			"If you did not request this, you can safely ignore this email.\r\n",
		m.cfg.From, to, name, resetURL,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var a smtp.Auth
	if m.cfg.Username != "" {
		a = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, a, m.cfg.From, []string{to}, []byte(body))
}

// LogMailer 开发环境兜底：只打日志不真发
type LogMailer struct{ Log *zap.Logger }

func (m *LogMailer) SendPasswordReset(_ context.Context, to, token, _ string) error {
	m.Log.Info("password reset mail (dev mode, not delivered)",
		zap.String("to", to), zap.String("token", token))
	return nil
}

// New 没配 SMTP host 就退回日志投递
func New(cfg config.Mail, l *zap.Logger) Mailer {
	if cfg.Host == "" {
		return &LogMailer{Log: l}
	}
	return NewSMTPMailer(cfg)
}

package service

import (
	"errors"
	"fmt"
	"html"
	"io"

	"ledger/config"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = errors.New("email delivery is not enabled")

// sender 邮件发送抽象，测试中可替换
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService 邮件服务，用于投递导出文件
type EmailService struct {
	cfg    *config.EmailConfig
	sender sender
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Enabled 是否启用
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendExport 将导出文件作为附件发送
func (s *EmailService) SendExport(to, projectName string, file *ExportFile) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	m := s.buildExportMessage(to, projectName, file)
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildExportMessage(to, projectName string, file *ExportFile) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, projectName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("[%s] %s", projectName, file.Name))
	m.SetBody("text/html", s.generateExportEmailBody(projectName, file.Name))

	data := file.Data
	m.Attach(file.Name,
		gomail.SetHeader(map[string][]string{"Content-Type": {file.ContentType}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
	return m
}

// generateExportEmailBody 生成导出邮件内容
func (s *EmailService) generateExportEmailBody(projectName, filename string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
    <h2>%s</h2>
    <p>The export you requested is attached: <strong>%s</strong>.</p>
    <p style="color: #6c757d; font-size: 12px;">This message was sent automatically, please do not reply.</p>
</body>
</html>
`, html.EscapeString(projectName), html.EscapeString(filename))
}

package service

import (
	"bytes"
	"errors"
	"testing"

	"ledger/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestEmailService(enabled bool) (*EmailService, *fakeSender) {
	fs := &fakeSender{}
	s := NewEmailService(&config.EmailConfig{Enabled: enabled, From: "ledger@example.com"})
	s.sender = fs
	return s, fs
}

func TestGenerateExportEmailBody(t *testing.T) {
	s, _ := newTestEmailService(true)
	body := s.generateExportEmailBody("<wedding>", "wedding_income_2026-01-02.csv")
	assert.Contains(t, body, "&lt;wedding&gt;")
	assert.Contains(t, body, "wedding_income_2026-01-02.csv")
}

func TestSendExport_Disabled(t *testing.T) {
	s, fs := newTestEmailService(false)
	err := s.SendExport("a@example.com", "wedding", &ExportFile{Name: "x.csv"})
	assert.ErrorIs(t, err, ErrEmailDisabled)
	assert.Empty(t, fs.sent)
}

func TestSendExport(t *testing.T) {
	s, fs := newTestEmailService(true)
	file := &ExportFile{Name: "wedding_income_2026-01-02.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("Name\nA\n")}

	require.NoError(t, s.SendExport("a@example.com", "wedding", file))
	require.Len(t, fs.sent, 1)

	m := fs.sent[0]
	assert.Equal(t, []string{"a@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[wedding] wedding_income_2026-01-02.csv"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "wedding_income_2026-01-02.csv")
}

func TestSendExport_DialError(t *testing.T) {
	s, fs := newTestEmailService(true)
	fs.err = errors.New("connection refused")

	err := s.SendExport("a@example.com", "wedding", &ExportFile{Name: "x.csv"})
	assert.ErrorContains(t, err, "connection refused")
}

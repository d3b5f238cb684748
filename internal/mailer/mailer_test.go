package mailer

import (
	"testing"

	"staff-scheduler/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutHostOnlyLogs(t *testing.T) {
	m := New(Options{}, logging.Discard())
	_, ok := m.(*logMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send([]string{"a@example.com"}, "subject", "body"))
}

func TestNewWithHostUsesSMTP(t *testing.T) {
	m := New(Options{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"}, logging.Discard())
	sm, ok := m.(*smtpMailer)
	assert.True(t, ok)
	assert.Equal(t, "noreply@example.com", sm.from)
	assert.NoError(t, sm.Send(nil, "nothing", "to send"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	assert.NoError(t, r.Send([]string{"a@example.com"}, "Hello", "World"))
	assert.Len(t, r.Sent(), 1)
	assert.Equal(t, "Hello", r.Sent()[0].Subject)
}

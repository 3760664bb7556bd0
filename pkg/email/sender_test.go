package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inkwell/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendEmailParams{
		From:     "sender@example.com",
		SendTo:   "reader@example.com",
		Subject:  "Test Subject",
		BodyHTML: "<p>Test body</p>",
	}

	tests := []struct {
		name    string
		mutate  func(*email.SendEmailParams)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid params",
			mutate: func(*email.SendEmailParams) {},
		},
		{
			name:    "empty From",
			mutate:  func(p *email.SendEmailParams) { p.From = "" },
			wantErr: true,
			errMsg:  "From is required",
		},
		{
			name:    "invalid From format",
			mutate:  func(p *email.SendEmailParams) { p.From = "not-an-address" },
			wantErr: true,
			errMsg:  "From must be a valid email address",
		},
		{
			name:    "empty SendTo",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "" },
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name:    "whitespace only SendTo",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "   " },
			wantErr: true,
			errMsg:  "SendTo is required",
		},
		{
			name:    "invalid SendTo format",
			mutate:  func(p *email.SendEmailParams) { p.SendTo = "reader@" },
			wantErr: true,
			errMsg:  "SendTo must be a valid email address",
		},
		{
			name:    "empty Subject",
			mutate:  func(p *email.SendEmailParams) { p.Subject = "" },
			wantErr: true,
			errMsg:  "Subject is required",
		},
		{
			name:    "empty BodyHTML",
			mutate:  func(p *email.SendEmailParams) { p.BodyHTML = "" },
			wantErr: true,
			errMsg:  "BodyHTML is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	t.Parallel()

	assert.True(t, email.IsValidAddress("user@example.com"))
	assert.True(t, email.IsValidAddress("  user@example.com  "))
	assert.False(t, email.IsValidAddress(""))
	assert.False(t, email.IsValidAddress("user"))
	assert.False(t, email.IsValidAddress("user@host"))
	assert.False(t, email.IsValidAddress("user @example.com"))
}

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()

	t.Run("requires host", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewSMTPSender(email.TransportConfig{
			Username: "u",
			Password: "p",
		})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewSMTPSender(email.TransportConfig{Host: "smtp.example.com"})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("builds sender from complete descriptor", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewSMTPSender(email.TransportConfig{
			Host:     "smtp.example.com",
			Port:     465,
			Secure:   true,
			Username: "mailer",
			Password: "secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html and metadata files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		err := sender.SendEmail(context.Background(), email.SendEmailParams{
			From:     "sender@example.com",
			SendTo:   "reader@example.com",
			Subject:  "Hello World",
			BodyHTML: "<p>Hi</p>",
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = filepath.Join(dir, e.Name())
			case ".json":
				jsonFile = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)

		body, err := os.ReadFile(htmlFile)
		require.NoError(t, err)
		assert.Equal(t, "<p>Hi</p>", string(body))

		raw, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		var meta map[string]string
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "reader@example.com", meta["send_to"])
		assert.Equal(t, "sender@example.com", meta["from"])
		assert.Equal(t, "Hello World", meta["subject"])

		assert.True(t, strings.Contains(filepath.Base(htmlFile), "hello_world"))
	})

	t.Run("rejects invalid params", func(t *testing.T) {
		t.Parallel()

		sender := email.NewDevSender(t.TempDir())
		err := sender.SendEmail(context.Background(), email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
	})
}

package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-cart/pkg/mailer"
)

type sent struct {
	to, subject, text, html string
}

type fakeSender struct {
	out []sent
	err error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.out = append(f.out, sent{to, subject, text, html})
	return nil
}

func TestDeliver_Template(t *testing.T) {
	s := &fakeSender{}
	job := mailer.EmailJob{To: "jane@example.com", Template: "welcome", Data: map[string]any{"Name": "Jane", "AppName": "Shop"}}

	require.NoError(t, mailer.Deliver(context.Background(), s, job))
	require.Len(t, s.out, 1)
	assert.Equal(t, "Welcome to Shop, Jane", s.out[0].subject)
	assert.Contains(t, s.out[0].text, "jane@example.com")
	assert.NotEmpty(t, s.out[0].html)
}

func TestDeliver_Raw(t *testing.T) {
	s := &fakeSender{}
	require.NoError(t, mailer.Deliver(context.Background(), s, mailer.EmailJob{To: "a@b.c", Subject: "hi", Text: "body"}))
	assert.Equal(t, "hi", s.out[0].subject)
}

func TestDeliver_BadJobs(t *testing.T) {
	s := &fakeSender{}
	for name, job := range map[string]mailer.EmailJob{
		"no recipient":     {Subject: "x", Text: "y"},
		"unknown template": {To: "a@b.c", Template: "nope"},
		"empty":            {To: "a@b.c"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, mailer.Deliver(context.Background(), s, job), mailer.ErrBadJob)
		})
	}
	assert.Empty(t, s.out)
}

func TestDeliver_SendFailureIsRetryable(t *testing.T) {
	boom := errors.New("mailgun down")
	err := mailer.Deliver(context.Background(), &fakeSender{err: boom}, mailer.EmailJob{To: "a@b.c", Subject: "x", Text: "y"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, mailer.ErrBadJob)
}

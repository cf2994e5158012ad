package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-cart/pkg/mailer"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeRetry
	outcomeDrop
)

const sendTimeout = 15 * time.Second

type worker struct {
	sender mailer.Sender
	logger *logrus.Logger
}

// handle decodes and delivers one queued EmailJob.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		return outcomeDrop
	}

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	err := mailer.Deliver(c, w.sender, job)
	switch {
	case err == nil:
		w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
		return outcomeAck
	case errors.Is(err, mailer.ErrBadJob):
		w.logger.WithError(err).WithField("to", job.To).Warn("dropping email job")
		return outcomeDrop
	default:
		w.logger.WithError(err).WithField("to", job.To).Error("send failed")
		return outcomeRetry
	}
}

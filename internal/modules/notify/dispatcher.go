package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"metagrow/internal/domain"
	"metagrow/internal/metrics"
	"metagrow/internal/modules/mailer"
)

// Dispatcher sends the business notification and the requester auto-reply for
// each stored submission. Every dispatch is best-effort: failures are logged
// and counted, never returned. Sends run detached from the request path; the
// dispatcher tracks them so they can be joined on shutdown instead of leaking.
type Dispatcher struct {
	mailer      mailer.Mailer
	operatorTo  string
	from        string
	sendTimeout time.Duration
	log         *zap.Logger
	wg          sync.WaitGroup
}

// NewDispatcher builds a dispatcher. A nil mailer means the mail capability
// is unconfigured: Dispatch becomes a no-op that reports the fact without
// attempting any network call.
func NewDispatcher(m mailer.Mailer, operatorTo, from string, sendTimeout time.Duration, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:      m,
		operatorTo:  operatorTo,
		from:        from,
		sendTimeout: sendTimeout,
		log:         log,
	}
}

// Dispatch queues both notification emails for the submission and returns
// immediately. The HTTP response never waits on mail delivery.
func (d *Dispatcher) Dispatch(c domain.Contact) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("notification dispatch panicked",
					zap.Int64("contact_id", c.ID),
					zap.Any("panic", r),
				)
			}
		}()
		d.send(c)
	}()
}

func (d *Dispatcher) send(c domain.Contact) {
	if d.mailer == nil {
		d.log.Info("mailer not configured, skipping notifications",
			zap.Int64("contact_id", c.ID),
		)
		metrics.MailSendsTotal.WithLabelValues("business", "skipped").Inc()
		metrics.MailSendsTotal.WithLabelValues("auto_reply", "skipped").Inc()
		return
	}

	messages := []struct {
		kind string
		msg  mailer.Message
	}{
		{"business", mailer.BusinessNotification(c, d.operatorTo, d.from)},
		{"auto_reply", mailer.AutoReply(c, d.from)},
	}

	// Each message is attempted independently; a failed business notification
	// must not stop the auto-reply, and vice versa.
	for _, m := range messages {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		err := d.mailer.Send(ctx, m.msg)
		cancel()

		if err != nil {
			metrics.MailSendsTotal.WithLabelValues(m.kind, "failed").Inc()
			d.log.Warn("notification send failed",
				zap.Int64("contact_id", c.ID),
				zap.String("message", m.kind),
				zap.Error(err),
			)
			continue
		}

		metrics.MailSendsTotal.WithLabelValues(m.kind, "sent").Inc()
		d.log.Info("notification sent",
			zap.Int64("contact_id", c.ID),
			zap.String("message", m.kind),
		)
	}
}

// Shutdown waits for in-flight sends to finish or the context to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

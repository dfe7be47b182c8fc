package worker

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/infra"
)

// EmailWorker sends password-reset mail off the request path.
type EmailWorker struct {
	mailer *infra.Mailer
	pool   *Pool
	log    zerolog.Logger
}

func NewEmailWorker(mailer *infra.Mailer, pool *Pool, log zerolog.Logger) *EmailWorker {
	return &EmailWorker{
		mailer: mailer,
		pool:   pool,
		log:    log.With().Str("component", "email_worker").Logger(),
	}
}

// EnqueueReset queues a password-reset message. When SMTP is not configured
// the reset URL is logged instead, which keeps local setups usable.
func (w *EmailWorker) EnqueueReset(to, resetURL string) {
	if !w.mailer.Configured() {
		w.log.Info().Str("to", to).Str("url", resetURL).Msg("smtp not configured, reset link logged")
		return
	}
	w.pool.Submit(func(ctx context.Context) {
		if err := w.mailer.SendPasswordReset(to, resetURL); err != nil {
			w.log.Error().Err(err).Str("to", to).Msg("failed to send reset email")
			return
		}
		w.log.Info().Str("to", to).Msg("reset email sent")
	})
}

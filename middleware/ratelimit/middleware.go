package ratelimit

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	appdomain "employee-backend/domain"
	"employee-backend/middleware/ratelimit/application"
	"employee-backend/middleware/ratelimit/domain"
)

type Options struct {
	Admitter            domain.Admitter
	KeyFn               KeyFunc
	KeyHeader           string
	TrustXForwardedFor  bool
	RejectStatus        int
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
	Log                 *logrus.Logger
}

type bucketInfo interface {
	RPS() float64
	Burst() int
}

type windowInfo interface {
	Max() int64
	Window() time.Duration
}

// Middleware aplica o gate de admissão a todo o tráfego antes da lógica de
// negócio. Rejeição (429) encerra a requisição sem nenhum outro efeito
// colateral; falha do substrato vira 500, distinta da rejeição por política.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = 1 * time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}

	svc := application.Service{
		Admitter:   opts.Admitter,
		RetryAfter: opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if wi, ok := opts.Admitter.(windowInfo); ok {
					w.Header().Set("X-RateLimit-Limit", formatInt(int(wi.Max())))
					w.Header().Set("X-RateLimit-Window", formatInt(int(wi.Window().Seconds())))
				} else if bi, ok := opts.Admitter.(bucketInfo); ok {
					w.Header().Set("X-RateLimit-RPS", formatFloat(bi.RPS()))
					w.Header().Set("X-RateLimit-Burst", formatInt(bi.Burst()))
				}
			}

			dec, err := svc.Decide(r.Context(), domain.Key(key))
			if err != nil {
				opts.Log.WithError(err).WithField("key", key).Error("throttle check failed")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if !dec.Allowed {
				opts.Log.WithError(appdomain.ErrRateLimited).WithField("key", key).Debug("request rejected")
				w.Header().Set("Retry-After", formatInt(int(dec.RetryAfter.Seconds())))
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

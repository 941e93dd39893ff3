// Package notify delivers user-facing sync notifications and throttles
// repeats of the same class.
package notify

import (
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// Sink displays a notification to the user.
type Sink interface {
	Notify(n models.Notification)
}

// SinkFunc adapts a plain function to [Sink].
type SinkFunc func(n models.Notification)

func (f SinkFunc) Notify(n models.Notification) { f(n) }

// ChanSink forwards notifications to a buffered channel. When the buffer is
// full the notification is dropped rather than blocking the sender.
type ChanSink struct {
	ch chan models.Notification
}

// NewChanSink creates a ChanSink with the given buffer size.
func NewChanSink(size int) *ChanSink {
	return &ChanSink{ch: make(chan models.Notification, size)}
}

func (s *ChanSink) Notify(n models.Notification) {
	select {
	case s.ch <- n:
	default:
	}
}

// C returns the receive side of the sink.
func (s *ChanSink) C() <-chan models.Notification {
	return s.ch
}

// LogSink writes notifications to the log. Used when no UI is attached.
type LogSink struct {
	logger *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Notify(n models.Notification) {
	s.logger.Info().
		Str("func", "LogSink.Notify").
		Str("class", n.Class).
		Str("title", n.Title).
		Msg(n.Description)
}

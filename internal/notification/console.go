package notification

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/wb-go/wbf/logger"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// With a nil writer notices only go to the log.
type ConsoleNotifier struct {
	mu     sync.Mutex
	w      io.Writer
	logger logger.Logger
}

func NewConsoleNotifier(w io.Writer, logger logger.Logger) *ConsoleNotifier {
	if w == nil {
		logger.Warn("notifier has no output, notices are logged only")
	}
	return &ConsoleNotifier{w: w, logger: logger}
}

func (n *ConsoleNotifier) Success(ctx context.Context, msg string) {
	n.send(ctx, KindSuccess, msg)
}

func (n *ConsoleNotifier) Failure(ctx context.Context, msg string) {
	n.send(ctx, KindError, msg)
}

func (n *ConsoleNotifier) send(ctx context.Context, kind Kind, msg string) {
	n.logger.Debug("notice", logger.String("kind", string(kind)), logger.String("text", msg))

	if n.w == nil {
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notice skipped (context cancelled)", logger.String("text", msg))
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintf(n.w, "[%s] %s\n", kind, msg); err != nil {
		n.logger.Error("failed to show notice",
			logger.String("kind", string(kind)),
			logger.String("error", err.Error()),
		)
	}
}

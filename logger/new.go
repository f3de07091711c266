package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"btree/btree"
)

// New builds a development logger for the named backend: "zap" or "logrus".
// The returned func flushes buffered output and should be deferred by the caller.
func New(backend string) (btree.Logger, func(), error) {
	switch backend {
	case "zap":
		z, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("build zap logger: %w", err)
		}
		return NewZap(z), func() { _ = z.Sync() }, nil
	case "logrus":
		l := logrus.New()
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return NewLogrus(l), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown logger %q, want zap or logrus", backend)
	}
}

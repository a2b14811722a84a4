package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/RavenCompanion_Go/internal/logger"
)

// WriteTextfile dumps the default registry in the text exposition format
// so a node exporter textfile collector can pick it up. An empty path is a
// no-op.
func WriteTextfile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgTextfileWritten, "path", path)
	return nil
}

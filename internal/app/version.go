package app

import "log/slog"

// Build metadata for the phrasegen binary, stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/phrasegen-backend/internal/app.Version=1.4.0 \
//		-X github.com/heartmarshall/phrasegen-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildInfo logs the build metadata as one group.
type buildInfo struct{}

func (buildInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}

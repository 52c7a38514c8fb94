package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/daliboussaidi/rshdmr/pkg/errors"
)

// InstallZerologWarnSink routes library warnings through a zerolog logger
// writing to w. Warning types that implement zerolog.LogObjectMarshaler
// (e.g. ConvergenceWarning) are emitted as structured objects.
func InstallZerologWarnSink(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", marshaler)
		} else {
			event.Err(warning)
		}
		event.Msg("rshdmr warning")
	})
}

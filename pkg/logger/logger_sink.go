package logger

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edmundcwm/nerbcrmwp/pkg/utilities/timeutil"
)

// AddSinkToLoggerInstance attaches a fan-out function invoked for every
// message the instance logs, in addition to the zerolog output.
func AddSinkToLoggerInstance(loggerInstance *Logger, sinkFunction func(string, zerolog.Level, timeutil.TimeUTC)) {
	loggerInstance.sink = sinkFunction
}

func (l *Logger) activateSinkFormatted(level zerolog.Level, format string, v ...interface{}) {
	if l.sink == nil {
		return
	}
	l.activateSink(fmt.Sprintf(format, v...), level)
}

func (l *Logger) activateSink(msg string, level zerolog.Level) {
	if l.sink != nil {
		l.sink(msg, level, timeutil.NowUTC())
	}
}

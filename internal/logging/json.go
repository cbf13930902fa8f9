package logging

import (
	"encoding/json"
	"log"

	golog "github.com/fclairamb/go-log"
)

type JSONLogger struct {
	Verbose bool
}

func NewJSONLogger(verbose bool) *JSONLogger {
	return &JSONLogger{Verbose: verbose}
}

func (l JSONLogger) log(level, event string, keyvals ...interface{}) {
	k, _ := json.Marshal(keyvals)

	log.Println(level, event, string(k))
}

func (l JSONLogger) Trace(event string, keyvals ...interface{}) {
	if l.Verbose {
		l.log("TRACE", event, keyvals...)
	}
}

func (l JSONLogger) Debug(event string, keyvals ...interface{}) {
	if l.Verbose {
		l.log("DEBUG", event, keyvals...)
	}
}

func (l JSONLogger) Info(event string, keyvals ...interface{}) {
	l.log("INFO", event, keyvals...)
}

func (l JSONLogger) Warn(event string, keyvals ...interface{}) {
	l.log("WARN", event, keyvals...)
}

func (l JSONLogger) Error(event string, keyvals ...interface{}) {
	l.log("ERROR", event, keyvals...)
}

func (l JSONLogger) With(keyvals ...interface{}) golog.Logger {
	return l
}

package logger_adapter

import (
	"errors"
	"fmt"
	"os"

	"catalog-service/internal/core/port"
)

var errNoLoggers = errors.New("multilogger: at least one logger is required")

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// entry - одна запись журнала до отправки в конкретный приемник
type entry struct {
	level  level
	msg    string
	err    error
	fields port.Fields
}

// MultiLoggerAdapter рассылает каждую запись всем приемникам (stdout, Fluent Bit).
// Сбой одного приемника не мешает остальным.
type MultiLoggerAdapter struct {
	sinks []port.LoggerPort
}

// NewMultiloggerAdapter пропускает nil-логгеры. Если остался один, он возвращается как есть.
func NewMultiloggerAdapter(loggers ...port.LoggerPort) (port.LoggerPort, error) {
	sinks := make([]port.LoggerPort, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			sinks = append(sinks, l)
		}
	}

	switch len(sinks) {
	case 0:
		return nil, errNoLoggers
	case 1:
		return sinks[0], nil
	}
	return &MultiLoggerAdapter{sinks: sinks}, nil
}

func (m *MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	m.write(entry{level: levelDebug, msg: msg, fields: fields})
}

func (m *MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	m.write(entry{level: levelInfo, msg: msg, fields: fields})
}

func (m *MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	m.write(entry{level: levelWarn, msg: msg, fields: fields})
}

func (m *MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	m.write(entry{level: levelError, msg: msg, err: err, fields: fields})
}

func (m *MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	children := make([]port.LoggerPort, len(m.sinks))
	for i, sink := range m.sinks {
		children[i] = sink.WithFields(copyFields(fields))
	}
	return &MultiLoggerAdapter{sinks: children}
}

func (m *MultiLoggerAdapter) write(e entry) {
	for i, sink := range m.sinks {
		// Каждый приемник получает свою копию полей
		e := e
		e.fields = copyFields(e.fields)
		deliver(i, sink, e)
	}
}

// deliver передает запись одному приемнику. Паника приемника сообщается в stderr
// и не прерывает рассылку.
func deliver(idx int, sink port.LoggerPort, e entry) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "multilogger: sink %d panicked on %q: %v\n", idx, e.msg, r)
		}
	}()

	switch e.level {
	case levelDebug:
		sink.Debug(e.msg, e.fields)
	case levelInfo:
		sink.Info(e.msg, e.fields)
	case levelWarn:
		sink.Warn(e.msg, e.fields)
	case levelError:
		sink.Error(e.msg, e.err, e.fields)
	}
}

func copyFields(fields port.Fields) port.Fields {
	if fields == nil {
		return nil
	}
	out := make(port.Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

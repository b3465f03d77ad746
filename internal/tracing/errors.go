package tracing

import "errors"

var ErrUnknownExporter = errors.New("unknown trace exporter")

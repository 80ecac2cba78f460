/*
DESCRIPTION
  tracer.go defines the optional tracing observer threaded through every
  syntax-element read. The reference decoder glues a tracestring onto
  every read unconditionally; here it's an interface so the hot path
  stays free of string formatting when nobody is watching.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import (
	"fmt"
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Tracer observes completed syntax-element reads. Implementations must
// not block; Trace is called on every successful façade read.
type Tracer interface {
	Trace(tag string, length, info, value int)
}

// NopTracer discards every trace; it is the Reader default.
type NopTracer struct{}

func (NopTracer) Trace(tag string, length, info, value int) {}

// FileTracer writes one line per traced read to a rotated log file.
type FileTracer struct {
	w io.Writer
}

// NewFileTracer returns a FileTracer backed by a rotating log at path.
func NewFileTracer(path string) *FileTracer {
	return &FileTracer{
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		},
	}
}

func (f *FileTracer) Trace(tag string, length, info, value int) {
	fmt.Fprintf(f.w, "%s len=%d info=%d value=%d\n", tag, length, info, value)
}

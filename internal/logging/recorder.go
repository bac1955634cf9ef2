package logging

import "fmt"

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Recorder is a Logger that captures every call in memory. Tests use it to
// assert on the number and content of warnings without scraping output.
type Recorder struct {
	Entries []*Entry
	fields  map[string]interface{}
	sink    *[]*Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	entries := []*Entry{}
	return &Recorder{Entries: entries, fields: map[string]interface{}{}, sink: nil}
}

func (r *Recorder) record(level, msg string, fields []Field) {
	merged := make(map[string]interface{}, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	e := &Entry{Level: level, Message: msg, Fields: merged}
	if r.sink != nil {
		*r.sink = append(*r.sink, e)
		return
	}
	r.Entries = append(r.Entries, e)
}

func (r *Recorder) Debug(msg string, fields ...Field) { r.record("debug", msg, fields) }
func (r *Recorder) Info(msg string, fields ...Field)  { r.record("info", msg, fields) }
func (r *Recorder) Warn(msg string, fields ...Field)  { r.record("warn", msg, fields) }
func (r *Recorder) Error(msg string, fields ...Field) { r.record("error", msg, fields) }

// Fatal records the call but does not exit, so failure paths stay testable.
func (r *Recorder) Fatal(msg string, fields ...Field) { r.record("fatal", msg, fields) }

func (r *Recorder) WithError(err error) Logger {
	return r.WithField("error", fmt.Sprintf("%v", err))
}

func (r *Recorder) WithField(key string, value interface{}) Logger {
	fields := make(map[string]interface{}, len(r.fields)+1)
	for k, v := range r.fields {
		fields[k] = v
	}
	fields[key] = value
	child := &Recorder{fields: fields}
	if r.sink != nil {
		child.sink = r.sink
	} else {
		child.sink = &r.Entries
	}
	return child
}

// Warnings returns the recorded warn-level entries.
func (r *Recorder) Warnings() []*Entry {
	var out []*Entry
	for _, e := range r.Entries {
		if e.Level == "warn" {
			out = append(out, e)
		}
	}
	return out
}

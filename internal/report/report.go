// Package report holds the structured outcome events emitted by combat
// resolution. Reports are data only: text and fog-of-war filtering happen
// outside this module.
package report

import (
	"encoding/json"
	"strconv"
)

// Visibility controls who may see a report.
type Visibility int

const (
	Public Visibility = iota
	PlayerOnly
	Perspective
)

func (v Visibility) String() string {
	switch v {
	case PlayerOnly:
		return "player"
	case Perspective:
		return "perspective"
	default:
		return "public"
	}
}

// FieldKind tags a data field.
type FieldKind int

const (
	FieldNumber FieldKind = iota
	FieldString
	FieldOutcome
)

// Field is one typed datum of a report.
type Field struct {
	Kind FieldKind `json:"kind"`
	Num  int       `json:"num,omitempty"`
	Str  string    `json:"str,omitempty"`
	Flag bool      `json:"flag,omitempty"`
}

func (f Field) String() string {
	switch f.Kind {
	case FieldString:
		return f.Str
	case FieldOutcome:
		if f.Flag {
			return "success"
		}
		return "failure"
	default:
		return strconv.Itoa(f.Num)
	}
}

// Report is one ordered outcome event.
type Report struct {
	MessageID  int        `json:"id"`
	Subject    string     `json:"subject,omitempty"`
	Fields     []Field    `json:"fields,omitempty"`
	Indent     int        `json:"indent,omitempty"`
	Newline    bool       `json:"newline,omitempty"`
	Visibility Visibility `json:"visibility"`
}

// New starts a public report.
func New(id int) *Report {
	return &Report{MessageID: id}
}

// About sets the subject unit.
func (r *Report) About(subject string) *Report {
	r.Subject = subject
	return r
}

// Add appends numbers.
func (r *Report) Add(nums ...int) *Report {
	for _, n := range nums {
		r.Fields = append(r.Fields, Field{Kind: FieldNumber, Num: n})
	}
	return r
}

// AddString appends strings.
func (r *Report) AddString(strs ...string) *Report {
	for _, s := range strs {
		r.Fields = append(r.Fields, Field{Kind: FieldString, Str: s})
	}
	return r
}

// Outcome appends a success/failure flag.
func (r *Report) Outcome(ok bool) *Report {
	r.Fields = append(r.Fields, Field{Kind: FieldOutcome, Flag: ok})
	return r
}

// Indented sets the layout indent.
func (r *Report) Indented(n int) *Report {
	r.Indent = n
	return r
}

// Line marks a line break after the report.
func (r *Report) Line() *Report {
	r.Newline = true
	return r
}

// Private restricts the report to the owning player.
func (r *Report) Private() *Report {
	r.Visibility = PlayerOnly
	return r
}

// ─── Sinks ──────────────────────────────────────────────────────────────────

// Sink is an append-only consumer of reports.
type Sink interface {
	Append(reports ...Report)
}

// Log is an in-memory Sink.
type Log struct {
	Reports []Report
}

func (l *Log) Append(reports ...Report) {
	l.Reports = append(l.Reports, reports...)
}

// Count returns how many reports carry the message id.
func (l *Log) Count(id int) int {
	return Count(l.Reports, id)
}

// JSON encodes the log for archiving.
func (l *Log) JSON() ([]byte, error) {
	return json.Marshal(l.Reports)
}

// Count returns how many reports in rs carry the message id.
func Count(rs []Report, id int) int {
	n := 0
	for _, r := range rs {
		if r.MessageID == id {
			n++
		}
	}
	return n
}

// Find returns the first report with the id.
func Find(rs []Report, id int) (Report, bool) {
	for _, r := range rs {
		if r.MessageID == id {
			return r, true
		}
	}
	return Report{}, false
}

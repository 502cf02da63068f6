// internal/output/printer.go - API response printing
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Printer writes JSON values and raw API replies with a uniform indent.
type Printer struct {
	w      io.Writer
	indent string
}

// NewPrinter creates a printer writing to w with the given indent width.
func NewPrinter(w io.Writer, indent int) *Printer {
	return &Printer{w: w, indent: strings.Repeat(" ", indent)}
}

// JSON pretty-prints a JSON-serializable value.
func (p *Printer) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", p.indent)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}

// Raw re-indents a raw JSON document received from the service. Replies that
// are not JSON are printed verbatim.
func (p *Printer) Raw(data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", p.indent); err != nil {
		_, werr := fmt.Fprintln(p.w, string(data))
		return werr
	}
	_, err := fmt.Fprintln(p.w, buf.String())
	return err
}

// Line prints a plain message.
func (p *Printer) Line(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

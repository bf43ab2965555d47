package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// bytesPerLine is the number of hex literals per data line.
const bytesPerLine = 16

// Asset is a named packed bitmap.
type Asset struct {
	Name string
	Data []byte
}

// Define is a #define line. Comment is appended as a trailing // comment.
type Define struct {
	Name, Value, Comment string
}

// Case is one arm of a dispatch switch. Key is emitted verbatim, so
// character keys carry their own quotes.
type Case struct {
	Key   string
	Ident string
}

// Dispatch describes a lookup function that switches over a key and returns
// the matching array.
type Dispatch struct {
	Comment    string
	Signature  string // e.g. "static inline const unsigned char* getDigitBitmap(char digit)"
	Key        string // switch operand
	Cases      []Case
	Default    string
	WarnSwitch bool // wrap the switch in a -Wswitch suppression pragma
}

// Header is a generated C header listing packed bitmaps.
type Header struct {
	Guard     string
	Includes  []string
	Comments  []string
	Defines   []Define
	ArrayDecl string // format with one %s verb for the asset name
	Indent    string
	Assets    []Asset
	Dispatch  *Dispatch
}

// Bytes renders the header.
func (h *Header) Bytes() []byte {
	var buf bytes.Buffer
	h.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo renders the header into w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)

	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", h.Guard, h.Guard)
	for _, inc := range h.Includes {
		fmt.Fprintf(bw, "#include %s\n", inc)
	}
	if len(h.Includes) > 0 {
		bw.WriteString("\n")
	}
	for _, c := range h.Comments {
		fmt.Fprintf(bw, "// %s\n", c)
	}
	if len(h.Comments) > 0 {
		bw.WriteString("\n")
	}
	for _, d := range h.Defines {
		fmt.Fprintf(bw, "#define %s %s", d.Name, d.Value)
		if d.Comment != "" {
			fmt.Fprintf(bw, "  // %s", d.Comment)
		}
		bw.WriteString("\n")
	}
	if len(h.Defines) > 0 {
		bw.WriteString("\n")
	}

	for _, a := range h.Assets {
		fmt.Fprintf(bw, h.ArrayDecl+"\n", a.Name)
		writeHexLines(bw, h.Indent, a.Data)
		bw.WriteString("};\n\n")
	}

	if h.Dispatch != nil {
		writeDispatch(bw, h.Dispatch)
	}

	fmt.Fprintf(bw, "#endif // %s\n", h.Guard)

	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// writeHexLines writes data as 0x.. literals, bytesPerLine per line, with
// no comma after the final value.
func writeHexLines(w *bufio.Writer, indent string, data []byte) {
	for i := 0; i < len(data); i += bytesPerLine {
		end := min(i+bytesPerLine, len(data))
		vals := make([]string, 0, end-i)
		for _, b := range data[i:end] {
			vals = append(vals, fmt.Sprintf("0x%02x", b))
		}
		line := strings.Join(vals, ", ")
		if end < len(data) {
			line += ","
		}
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
}

func writeDispatch(w *bufio.Writer, d *Dispatch) {
	if d.Comment != "" {
		fmt.Fprintf(w, "// %s\n", d.Comment)
	}
	fmt.Fprintf(w, "%s {\n", d.Signature)
	if d.WarnSwitch {
		w.WriteString("    #pragma GCC diagnostic push\n")
		w.WriteString("    #pragma GCC diagnostic ignored \"-Wswitch\"\n")
	}
	fmt.Fprintf(w, "    switch (%s) {\n", d.Key)
	for _, c := range d.Cases {
		fmt.Fprintf(w, "        case %s: return %s;\n", c.Key, c.Ident)
	}
	fmt.Fprintf(w, "        default: return %s;\n", d.Default)
	w.WriteString("    }\n")
	if d.WarnSwitch {
		w.WriteString("    #pragma GCC diagnostic pop\n")
	}
	w.WriteString("}\n\n")
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

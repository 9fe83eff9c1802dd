// Package input reads complete relation expressions for the fstc shell,
// from either a plain stream or an interactive readline session.
//
// Unlike a line reader that hands back whatever text it finds, both
// readers here understand enough of miniexpr's token stream to tell
// when a line is actually finished: a line with unbalanced parentheses
// is a continuation, not a parse error, and is stitched to the
// following line(s) until the parens close. A line whose only content
// is a "#" comment is skipped outright rather than handed to the
// parser.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dekarrin/fstrel/internal/miniexpr"
)

// DirectExprReader reads expressions from any generic input stream
// directly. It can be used generically with any io.Reader but does not
// sanitize the input of control and escape sequences.
//
// DirectExprReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectExprReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveExprReader reads expressions from stdin using a go
// implementation of the GNU Readline library. This keeps input clear of
// all typing and editing escape sequences and enables the use of
// expression history. This should in general probably only be used when
// directly connecting to a TTY for input.
//
// InteractiveExprReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveExprReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a new DirectExprReader and initializes a
// buffered reader on the provided reader. The returned reader must have
// Close() called on it before disposal to properly teardown resources.
func NewDirectReader(r io.Reader) *DirectExprReader {
	return &DirectExprReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveExprReader and
// initializes readline. The returned reader must have Close() called on
// it before disposal to properly teardown readline resources.
func NewInteractiveReader() (*InteractiveExprReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "fstrel> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveExprReader{
		rl:     rl,
		prompt: "fstrel> ",
	}, nil
}

// Close cleans up resources associated with the DirectExprReader.
func (der *DirectExprReader) Close() error {
	// this function is here so DirectExprReader implements the same
	// interface as InteractiveExprReader. For now it doesn't really do
	// anything as the DirectExprReader does not create resources but
	// callers should treat it as though it must have Close called on it.
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveExprReader.
func (ier *InteractiveExprReader) Close() error {
	return ier.rl.Close()
}

// ReadExpr reads the next complete expression from the underlying
// stream, stitching together lines until every '(' opened has a
// matching ')', and skipping comment-only lines ("#..."). The returned
// string will only be empty if there is an error reading input,
// otherwise this function blocks until a complete expression or a
// blank line (if blanks are allowed) is read.
//
// If at end of input, the returned string will be empty and error will
// be io.EOF. If any other error occurs, the returned string will be
// empty and error will be that error.
func (der *DirectExprReader) ReadExpr() (string, error) {
	return readExpr(der.blanksAllowed, func() (string, error) {
		return der.r.ReadString('\n')
	})
}

// ReadExpr reads the next complete expression from stdin, stitching
// together lines until every '(' opened has a matching ')', and
// skipping comment-only lines ("#..."). The returned string will only
// be empty if there is an error, otherwise this function blocks until a
// complete expression or a blank line (if blanks are allowed) is read.
//
// If at end of input, the returned string will be empty and error will
// be io.EOF. If any other error occurs, the returned string will be
// empty and error will be that error.
func (ier *InteractiveExprReader) ReadExpr() (string, error) {
	prompt := ier.prompt
	return readExpr(ier.blanksAllowed, func() (string, error) {
		ier.rl.SetPrompt(prompt)
		prompt = "....... " // continuation prompt, same width as "fstrel> "
		return ier.rl.Readline()
	})
}

// readExpr holds the line-stitching and comment-skipping logic shared
// by both reader types; nextLine is called once per physical line
// read, with io.EOF returned exactly as the underlying source reports
// it.
func readExpr(blanksAllowed bool, nextLine func() (string, error)) (string, error) {
	var pending strings.Builder
	depth := 0

	for {
		line, err := nextLine()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if pending.Len() == 0 {
			if line == "" {
				if blanksAllowed {
					return "", nil
				}
				if err == io.EOF {
					return "", io.EOF
				}
				continue
			}
			if strings.HasPrefix(line, "#") {
				if err == io.EOF {
					return "", io.EOF
				}
				continue
			}
		} else if line != "" {
			pending.WriteByte('\n')
		}

		pending.WriteString(line)
		depth += miniexpr.ParenDepth(miniexpr.Lex(line))

		if depth <= 0 || err == io.EOF {
			return pending.String(), nil
		}
	}
}

// AllowBlank sets whether blank input is allowed. By default it is not.
func (der *DirectExprReader) AllowBlank(allow bool) {
	der.blanksAllowed = allow
}

// AllowBlank sets whether blank input is allowed. By default it is not.
func (ier *InteractiveExprReader) AllowBlank(allow bool) {
	ier.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (ier *InteractiveExprReader) SetPrompt(p string) {
	ier.prompt = p
	ier.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (ier *InteractiveExprReader) GetPrompt() string {
	return ier.prompt
}

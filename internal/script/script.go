// Package script reads move scripts: plain text files with one move per line.
//
//	# opening
//	position reha1aehr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/REHA1AEHR b
//	a7 a6
//	b3-d3
//	pass
//
// A "position" line may appear once, before the first move. "pass" (or 한수쉼)
// passes the turn. Files may be UTF-8, with or without a byte order mark, or
// EUC-KR.
package script

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"janggi/internal/janggi"
)

type Encoding string

const (
	UTF8  Encoding = "utf-8"
	EUCKR Encoding = "euc-kr"
	// Auto reads UTF-8 when the input is valid UTF-8 and EUC-KR otherwise.
	Auto Encoding = "auto"
)

// ParseEncoding accepts the names used on the command line and in config files.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "euc-kr", "euckr", "cp949":
		return EUCKR, nil
	case "auto":
		return Auto, nil
	}
	return "", fmt.Errorf("unknown encoding %q", s)
}

var ErrSyntax = errors.New("script syntax error")

var passWords = []string{"pass", "한수쉼"}

// Step is one move line. Line is 1-based.
type Step struct {
	Line int
	Pass bool
	Move janggi.Move
}

func (s Step) String() string {
	if s.Pass {
		return "pass"
	}
	return s.Move.String()
}

type Script struct {
	Name     string
	Position string // empty means the standard starting layout
	Steps    []Step
}

// Parse reads a whole script from r.
func Parse(r io.Reader, enc Encoding) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := decode(data, enc)
	if err != nil {
		return nil, err
	}

	s := &Script{}
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if code, ok := strings.CutPrefix(raw, "position "); ok {
			if s.Position != "" || len(s.Steps) > 0 {
				return nil, fmt.Errorf("line %d: %w: position must come first and only once", line, ErrSyntax)
			}
			code = strings.TrimSpace(code)
			if _, err := janggi.Decode(code); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			s.Position = code
			continue
		}
		if isPass(raw) {
			s.Steps = append(s.Steps, Step{Line: line, Pass: true})
			continue
		}
		mv, err := janggi.ParseMove(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.Steps = append(s.Steps, Step{Line: line, Move: mv})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func isPass(s string) bool {
	for _, w := range passWords {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}

func decode(data []byte, enc Encoding) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	switch enc {
	case UTF8, "":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: input is not valid UTF-8", ErrSyntax)
		}
		return string(data), nil
	case Auto:
		if utf8.Valid(data) {
			return string(data), nil
		}
	case EUCKR:
	default:
		return "", fmt.Errorf("unknown encoding %q", enc)
	}

	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode EUC-KR: %w", err)
	}
	return string(decoded), nil
}

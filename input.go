package teamcheck

import (
	"bufio"
	"io"
	"log"
	"strconv"

	"github.com/pkg/errors"
)

// MaxTokenSize is the longest whitespace separated token ReadInput accepts.
const MaxTokenSize = 1024 * 1024

// ErrInvalidInput is the cause of every error caused by malformed or
// insufficient input.
var ErrInvalidInput = errors.New("invalid input")

// ReadInput reads a count n followed by n integers from r and passes each
// integer to fn in order. Tokens after the n-th integer are not read.
// Every integer must fit in 32 bits and n must not be negative.
// Tokens are separated by ASCII whitespace only.
func ReadInput(r io.Reader, fn func(int64)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxTokenSize)
	scanner.Split(scanWords)

	n, err := scanInt(scanner)
	if err != nil {
		return 0, errors.Wrap(err, "count")
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidInput, "negative count %d", n)
	}
	log.Printf("[trace] reading %d values", n)

	for i := int64(0); i < n; i++ {
		v, err := scanInt(scanner)
		if err != nil {
			return 0, errors.Wrapf(err, "value %d of %d", i+1, n)
		}
		fn(v)
	}
	return int(n), nil
}

func scanInt(s *bufio.Scanner) (int64, error) {
	if !s.Scan() {
		switch err := s.Err(); err {
		case nil:
			return 0, errors.Wrap(ErrInvalidInput, "unexpected end of input")
		case bufio.ErrTooLong:
			return 0, errors.Wrap(ErrInvalidInput, "token too long")
		default:
			return 0, errors.Wrap(err, "read failed")
		}
	}
	token := s.Text()
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%q is not a 32-bit integer", token)
	}
	return v, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanWords is bufio.ScanWords without Unicode spaces, so U+00A0 and
// U+0085 stay inside a token and fail to parse.
func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

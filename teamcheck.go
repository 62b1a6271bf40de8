package teamcheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

var Version = "current"

// Run reads the values from r and writes a single verdict line to w.
// Nothing is written to w when Run fails.
func Run(ctx context.Context, r io.Reader, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c := NewChecker()
	n, err := ReadInput(r, c.Add)
	if err != nil {
		return err
	}
	// canceled while blocked in a read
	if err := ctx.Err(); err != nil {
		return err
	}
	v := c.Verdict()
	log.Printf("[debug] n:%d %s verdict:%s", n, c, v)

	if _, err := fmt.Fprintln(w, v); err != nil {
		return errors.Wrap(err, "write verdict failed")
	}
	return nil
}

// RunFiles runs with input and output file paths. An empty input reads
// stdin and an empty output writes stdout. The output file is written only
// after a verdict is decided.
func RunFiles(ctx context.Context, input, output string, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if input != "" {
		log.Printf("[debug] reading input from %s", input)
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrap(err, "open input failed")
		}
		defer f.Close()
		r = f
	}

	var b bytes.Buffer
	if err := Run(ctx, r, &b); err != nil {
		return err
	}

	if output == "" {
		_, err := stdout.Write(b.Bytes())
		return errors.Wrap(err, "write output failed")
	}
	log.Printf("[debug] writing output to %s", output)
	if err := os.WriteFile(output, b.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write output failed")
	}
	return nil
}

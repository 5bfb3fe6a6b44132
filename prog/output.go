package main

import (
	"bytes"
	"fmt"
	"io/ioutil"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/psview/psview/common/marshal"
)

// render turns a command's result into bytes: text as it came, anything
// else as indented JSON.
func render(data interface{}) ([]byte, error) {
	if text, ok := data.(string); ok {
		return []byte(text), nil
	}
	var buf bytes.Buffer
	if err := marshal.EncodePretty(&buf, data); err != nil {
		return nil, errors.Wrap(err, "encoding output")
	}
	return buf.Bytes(), nil
}

// output writes data to filename, or to stdout when filename is empty.
func (e *env) output(filename string, data interface{}) error {
	b, err := render(data)
	if err != nil {
		return err
	}
	if filename == "" {
		if _, ok := data.(string); ok {
			b = append(b, '\n')
		}
		_, err = e.stdout.Write(b)
		return err
	}
	if err := ioutil.WriteFile(filename, b, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	fmt.Fprintf(e.stdout, "Data saved to %s (%s)\n", filename, humanize.Bytes(uint64(len(b))))
	return nil
}

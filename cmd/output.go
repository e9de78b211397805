package cmd

import (
	"fmt"
	"io"

	"github.com/foomo/readmeq/pkg/result"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	outputText = "text"
	outputJSON = "json"
)

type report[T any] struct {
	Command string           `json:"command"`
	Target  string           `json:"target"`
	Result  result.Result[T] `json:"result"`
}

// writeResult prints res as a json line or, for text output, formats its value with text.
func writeResult[T any](w io.Writer, format, command, target string, res result.Result[T], text func(T) string) error {
	switch format {
	case outputJSON:
		return json.NewEncoder(w).Encode(report[T]{
			Command: command,
			Target:  target,
			Result:  res,
		})
	case outputText, "":
		if res.IsOk() {
			_, err := fmt.Fprintln(w, text(res.Value()))
			return err
		}
		_, err := fmt.Fprintf(w, "%s %s: %v\n", command, target, res.Err())
		return err
	default:
		return errors.Errorf("unknown output format: %s (supported: text, json)", format)
	}
}

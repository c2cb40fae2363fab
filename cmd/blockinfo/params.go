package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bft-labs/blockinfo/pkg/client"
)

// readParams builds the request body from --params or --params-file.
// A params file of "-" reads stdin.
func readParams(stdin io.Reader, inline, file string) (client.Params, error) {
	var r io.Reader
	switch {
	case inline != "":
		r = strings.NewReader(inline)
	case file == "-":
		r = stdin
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open params file: %w", err)
		}
		defer f.Close()
		r = f
	default:
		return nil, errors.New("one of --params or --params-file is required")
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var params client.Params
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	if params == nil {
		return nil, errors.New("decode params: expected a JSON object")
	}
	return params, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var protoJSON = protojson.MarshalOptions{
	Multiline:       true,
	Indent:          "  ",
	UseProtoNames:   true,
	EmitUnpopulated: true,
}

type outputMode struct {
	json bool
	w    io.Writer
}

// printJSON renders robot.v1 messages with their proto field names and
// anything else with encoding/json.
func (o outputMode) printJSON(value any) error {
	var (
		data []byte
		err  error
	)
	if msg, ok := value.(proto.Message); ok {
		data, err = protoJSON.Marshal(msg)
	} else {
		data, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("format json: %w", err)
	}
	_, err = fmt.Fprintln(o.w, string(data))
	return err
}

// print writes value as JSON in --json mode and as aligned key/value rows
// otherwise.
func (o outputMode) print(value any, rows [][]string) error {
	if o.json {
		return o.printJSON(value)
	}
	o.table(rows)
	return nil
}

func (o outputMode) table(rows [][]string) {
	w := tabwriter.NewWriter(o.w, 2, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Write renders values in the given format: list (one per line), table or json.
func Write(w io.Writer, format string, values []int) error {
	switch format {
	case "list":
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Index", "Value"})
		for i, v := range values {
			table.Append([]string{strconv.Itoa(i), strconv.Itoa(v)})
		}
		table.SetFooter([]string{"Count", strconv.Itoa(len(values))})
		table.Render()
		return nil
	case "json":
		if values == nil {
			values = []int{}
		}
		return json.NewEncoder(w).Encode(values)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

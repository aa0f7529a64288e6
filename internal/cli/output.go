package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRegionsTable(out io.Writer, regions []Region) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTAG\tPATH\tPREVIEW")
	for _, r := range regions {
		fmt.Fprintf(
			tw,
			"%d\t%s\t%s\t%s\n",
			r.Index,
			r.Tag,
			compactText(r.Path, 40),
			r.Preview,
		)
	}
	_ = tw.Flush()
}

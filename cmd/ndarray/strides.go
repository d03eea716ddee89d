package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/born-ml/ndarray/structures"
)

// stridesCommand prints the offset mapping of a shape.
type stridesCommand struct {
	out    io.Writer
	logger func() log.Logger

	dims   *[]int
	layout *string
	limit  *int
}

func (cmd *stridesCommand) run(*kingpin.ParseContext) error {
	layout, err := structures.ParseLayout(*cmd.layout)
	if err != nil {
		return err
	}
	strides, err := structures.NewStrides(structures.Shape(*cmd.dims), layout)
	if err != nil {
		return fmt.Errorf("failed to build strides: %w", err)
	}
	level.Debug(cmd.logger()).Log("msg", "printing strides", "shape", strides.Shape(), "layout", layout)
	return printStrides(cmd.out, strides, *cmd.limit)
}

// printStrides writes a summary of s followed by up to limit (offset, index)
// rows. A non-positive limit prints every row.
func printStrides(w io.Writer, s structures.Strides, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "layout:\t%s\n", s.Layout())
	fmt.Fprintf(tw, "shape:\t%v\n", s.Shape())
	fmt.Fprintf(tw, "strides:\t%v\n", s.Strides())
	fmt.Fprintf(tw, "linear size:\t%s\n", humanize.Comma(int64(s.LinearSize())))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "offset\tindex")

	offset := 0
	for index := range s.Indices() {
		if limit > 0 && offset == limit {
			fmt.Fprintf(tw, "...\t(%d more)\n", s.LinearSize()-limit)
			break
		}
		fmt.Fprintf(tw, "%d\t%v\n", offset, index)
		offset++
	}
	return tw.Flush()
}

func addStridesCommand(app *kingpin.Application, out io.Writer, logger func() log.Logger) {
	cmd := &stridesCommand{out: out, logger: logger}
	c := app.Command("strides", "Print the offset mapping of a shape.").Action(cmd.run)
	cmd.layout = c.Flag("layout", "Memory layout.").Default(structures.ColumnMajor.String()).Enum(structures.ColumnMajor.String(), structures.RowMajor.String())
	cmd.limit = c.Flag("limit", "Maximum number of indices to print (0 for all).").Default("64").Int()
	cmd.dims = c.Arg("dims", "Shape dimensions.").Required().Ints()
}

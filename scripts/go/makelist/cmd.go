package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charlieparkes/makelist/app"
	"github.com/charlieparkes/makelist/fileio"
	"github.com/charlieparkes/makelist/lists"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultInput = "list.txt"
	stdout       = "-"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "makelist",
		Short:         "Print the two columns of a list file as initializer lists",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			verbose, err := c.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			return app.Init(verbose)
		},
		RunE: runMakeList,
	}
	root.PersistentFlags().StringP("filepath", "f", defaultInput, "path or gs:// url of the list file")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	root.Flags().StringP("output", "o", stdout, "path or gs:// url to write to, - for stdout")

	root.AddCommand(&cobra.Command{
		Use:   "compare",
		Short: "Print the total distance and similarity score of the two lists",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	})
	return root
}

func runMakeList(c *cobra.Command, args []string) error {
	l, err := load(c)
	if err != nil {
		return err
	}
	path, err := c.Flags().GetString("output")
	if err != nil {
		return err
	}
	if path == "" || path == stdout {
		return write(bufio.NewWriter(c.OutOrStdout()), l.Lines())
	}

	ctx, cancel := context.WithCancel(c.Context())
	defer cancel()
	out, err := fileio.Create(ctx, path)
	if err != nil {
		return err
	}
	if err := write(bufio.NewWriter(out), l.Lines()); err != nil {
		// Canceling first keeps a gs:// object from being committed.
		cancel()
		out.Close()
		return err
	}
	app.Log.Info("wrote lists", zap.String("path", path), zap.Int("records", l.Len()))
	return out.Close()
}

func runCompare(c *cobra.Command, args []string) error {
	l, err := load(c)
	if err != nil {
		return err
	}
	return write(bufio.NewWriter(c.OutOrStdout()), []string{
		fmt.Sprintf("Total distance between lists: %d", lists.Distance(l)),
		fmt.Sprintf("Similarity score between lists: %d", lists.Similarity(l)),
	})
}

func load(c *cobra.Command) (lists.Lists, error) {
	path, err := c.Flags().GetString("filepath")
	if err != nil {
		return lists.Lists{}, err
	}
	return lists.Load(c.Context(), path)
}

func write(w *bufio.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

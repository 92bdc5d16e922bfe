/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/internal/iocorpus"
	"github.com/spf13/cobra"
)

// getConvertCmd returns the convert command.
func getConvertCmd() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <csv-dir> <sqlite-file>",
		Short: "Convert a CSV corpus into a SQLite snapshot",
		Long: `Read a directory of veekun-style CSV tables and write them into a
new SQLite file. The snapshot loads faster than CSV files and can be used
by setting corpus format to sqlite.

An existing SQLite file is never overwritten.

Examples:
  gnpokedex convert data/csv data/pokedex.sqlite
  gnpokedex card 25 --corpus data/pokedex.sqlite --format sqlite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConvert(args[0], args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return convertCmd
}

func runConvert(csvDir, sqlitePath string) error {
	ctx := context.Background()

	gn.Info("Reading CSV corpus from <em>%s</em>", csvDir)
	tables, err := iocorpus.NewCSV(csvDir, cfg.JobsNumber).Load(ctx)
	if err != nil {
		return err
	}

	if err = iocorpus.Convert(ctx, tables, sqlitePath); err != nil {
		return err
	}

	gn.Info("Snapshot is saved to <em>%s</em>", sqlitePath)
	return nil
}

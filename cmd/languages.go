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
	"github.com/spf13/cobra"
)

// getLanguagesCmd returns the languages command.
func getLanguagesCmd() *cobra.Command {
	var format string

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages for the language selector",
		Long: `Print official corpus languages in display order. Every language
is named in itself when the corpus has such a name.

Examples:
  gnpokedex languages
  gnpokedex languages -o yaml`,
		Aliases: []string{"langs"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLanguages(cmd, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	outputFlag(languagesCmd, &format)

	return languagesCmd
}

func runLanguages(cmd *cobra.Command, format string) error {
	d, err := loadDex(context.Background())
	if err != nil {
		return err
	}
	return output(cmd.OutOrStdout(), d.Languages(), format)
}

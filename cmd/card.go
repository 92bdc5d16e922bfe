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
	"github.com/gnames/gnpokedex/pkg/dex"
	"github.com/spf13/cobra"
)

// getCardCmd returns the card command.
func getCardCmd() *cobra.Command {
	var (
		form       string
		lang       string
		withFlavor bool
		format     string
	)

	cardCmd := &cobra.Command{
		Use:   "card <identifier>",
		Short: "Show a species card",
		Long: `Resolve a species and print its card.

The identifier can be a National Dex number, a species identifier, a
species name in any corpus language or a form identifier. Matching of
names ignores case and surrounding spaces.

Examples:
  gnpokedex card 1
  gnpokedex card bulbasaur
  gnpokedex card Bulbizarre -l fr
  gnpokedex card venusaur -f venusaur-mega
  gnpokedex card pikachu --flavor -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCard(cmd, args[0], form, lang, withFlavor, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	cardCmd.Flags().StringVarP(
		&form, "form", "f", "",
		"form identifier (default form if empty)",
	)
	cardCmd.Flags().BoolVar(
		&withFlavor, "flavor", false,
		"include Pokédex entries",
	)
	languageFlag(cardCmd, &lang)
	outputFlag(cardCmd, &format)

	return cardCmd
}

func runCard(
	cmd *cobra.Command,
	identifier, form, lang string,
	withFlavor bool,
	format string,
) error {
	d, err := loadDex(context.Background())
	if err != nil {
		return err
	}

	langID, err := parseLanguage(d, lang)
	if err != nil {
		return err
	}

	card, err := d.Assemble(dex.Query{
		Identifier: identifier,
		Form:       form,
		LanguageID: langID,
		WithFlavor: withFlavor,
	})
	if err != nil {
		return err
	}

	return output(cmd.OutOrStdout(), card, format)
}

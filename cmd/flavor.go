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

// getFlavorCmd returns the flavor command.
func getFlavorCmd() *cobra.Command {
	var lang, version, format string

	flavorCmd := &cobra.Command{
		Use:   "flavor <identifier>",
		Short: "Show Pokédex entries of a species",
		Long: `Print Pokédex entries (flavor texts) of a species.

Without --version all entries of the language are paired with game
versions. With --version only the entry of that version is printed, the
version can be given by its id or identifier.

Examples:
  gnpokedex flavor bulbasaur
  gnpokedex flavor 1 -l fr
  gnpokedex flavor 1 -v red`,
		Aliases: []string{"entries"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFlavor(cmd, args[0], lang, version, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	flavorCmd.Flags().StringVarP(
		&version, "version", "v", "",
		"game version id or identifier",
	)
	languageFlag(flavorCmd, &lang)
	outputFlag(flavorCmd, &format)

	return flavorCmd
}

func runFlavor(cmd *cobra.Command, identifier, lang, version, format string) error {
	d, err := loadDex(context.Background())
	if err != nil {
		return err
	}

	langID, err := parseLanguage(d, lang)
	if err != nil {
		return err
	}

	form, err := d.Resolve(identifier, "")
	if err != nil {
		return err
	}

	if version == "" {
		return output(cmd.OutOrStdout(), d.Flavor(form.SpeciesID, langID), format)
	}

	entry, err := d.FlavorForVersion(form.SpeciesID, langID, version)
	if err != nil {
		return err
	}
	return output(cmd.OutOrStdout(), []dex.FlavorEntry{entry}, format)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strata-lang/strata/token"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Check a token stream and print it in normalized form",
		Long: `Decode a JSON token stream, check that every token is well formed and
write it back out one token per line. With --source the reconstructed source
text is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, name, err := readTokens(cmd, args)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("file", name).Int("tokens", len(tokens)).Msg("decoded token stream")
			if source, _ := cmd.Flags().GetBool("source"); source {
				_, err := fmt.Fprint(cmd.OutOrStdout(), token.Source(tokens))
				return err
			}
			return token.WriteStream(cmd.OutOrStdout(), tokens)
		},
	}
	cmd.Flags().Bool("source", false, "Print the source text the tokens cover")
	return cmd
}

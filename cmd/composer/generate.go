package main

import (
	"fmt"

	"blogtags/internal/client"
	"blogtags/internal/composer"
	"blogtags/internal/shared/constants"

	"github.com/spf13/cobra"
)

var (
	genTitle string
	genSize  int
	genCopy  bool
	genFile  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate tags once and print them",
	Long: `Generate tags for a title (or the frontmatter title of a markdown file)
and print them in the selected format.`,
	Example: `  composer generate --title "Why Google stores billions of lines of code in a single repository" --size 3
  composer generate --file posts/monorepos.md --size 5 --format , --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title := genTitle
		if title == "" && genFile != "" {
			t, err := titleFromFile(genFile)
			if err != nil {
				return err
			}
			title = t
		}

		format, err := composer.ParseFormat(settings.Format)
		if err != nil {
			return err
		}

		session := composer.New()
		session.SetTitle(title)
		session.SetCount(genSize)
		session.SetFormat(format)

		sub, err := session.Submit()
		if err != nil {
			return err
		}

		joined, err := client.New(settings.Endpoint).GenerateTags(cmd.Context(), sub.Title, sub.Size)
		if err != nil {
			return fmt.Errorf("failed to generate tags: %w", err)
		}
		session.Resolve(sub.Ticket, joined)

		out := cmd.OutOrStdout()
		tags := session.Tags()
		fmt.Fprintf(out, "%s %s\n", faint("Title:"), sub.Title)
		fmt.Fprintf(out, "%s %s\n", faint("Tags:"), chipLine(tags))
		fmt.Fprintln(out, format.Join(tags))

		if genCopy {
			if _, _, err := session.Copy(composer.SystemClipboard{}); err != nil {
				return err
			}
			fmt.Fprintln(out, success(constants.MSG_COPIED))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genTitle, "title", "t", "", "blog post title")
	generateCmd.Flags().IntVarP(&genSize, "size", "n", 3, "number of tags (0-10)")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "copy the formatted tags to the clipboard")
	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "markdown post to read the title from")
	rootCmd.AddCommand(generateCmd)
}

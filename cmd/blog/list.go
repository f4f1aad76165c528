package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tobbylie/blog/internal/app"
	"github.com/tobbylie/blog/internal/router"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the posts in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(appCfg)
		if err != nil {
			return err
		}
		defer a.Close()

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tDATE\tTITLE")
		for _, post := range a.BlogService.Catalog().Posts() {
			date := post.Date
			if date == "" {
				date = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", router.Post(post.Slug).Path(), date, post.Title)
		}
		return tw.Flush()
	},
}

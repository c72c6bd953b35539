// ABOUTME: CLI command that prints home page fragments from the posts index.
// ABOUTME: Emits the latest-post teaser and the full posts list as HTML.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/blogbuild/internal/render"
)

var fragmentsCmd = &cobra.Command{
	Use:   "fragments",
	Short: "Print home page HTML fragments",
	Long:  "Read posts.json and print the latest-post teaser followed by the all-posts list.",
	Args:  cobra.NoArgs,
	RunE:  runFragments,
}

func init() {
	rootCmd.AddCommand(fragmentsCmd)
}

func runFragments(cmd *cobra.Command, args []string) error {
	posts, err := globalStore.ReadIndex()
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}
	if len(posts) == 0 {
		return fmt.Errorf("index %s has no posts", globalStore.IndexPath())
	}

	site := siteInfo(globalConfig)
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, render.LatestPost(site, posts[0]))
	_, _ = fmt.Fprintln(out, render.PostList(site, posts))
	return nil
}

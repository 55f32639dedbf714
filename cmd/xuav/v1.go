package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CannonJunior/x-uav/client"
)

// newV1Cmd groups commands for the versioned catalog contract. They always
// use the v1 paths whatever --contract says.
func newV1Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "v1",
		Short: "Query the versioned /api/v1 catalog",
	}
	cmd.AddCommand(newV1ListCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one platform by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.v1()
			if err != nil {
				return err
			}
			p, err := c.GetUAV(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).Platform(p)
		},
	})
	cmd.AddCommand(newV1SearchCmd(a))
	cmd.AddCommand(newV1SuggestCmd(a))
	cmd.AddCommand(newV1GraphCmd(a))
	return cmd
}

func newV1ListCmd(a *app) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.v1()
			if err != nil {
				return err
			}
			page, err := c.ListUAVs(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}
			return a.printer(cmd).Platforms(page)
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Records to skip")
	cmd.Flags().IntVar(&limit, "limit", client.DefaultPageLimit, "Page size")

	return cmd
}

func newV1SearchCmd(a *app) *cobra.Command {
	var raw string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a catalog search with a JSON query object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q client.SearchQuery
			if err := json.Unmarshal([]byte(raw), &q); err != nil {
				return fmt.Errorf("--query must be a JSON object: %w", err)
			}
			c, err := a.v1()
			if err != nil {
				return err
			}
			res, err := c.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printer(cmd).SearchResults(res)
		},
	}

	cmd.Flags().StringVar(&raw, "query", "{}", `Query object, e.g. {"text":"reaper"}`)

	return cmd
}

func newV1SuggestCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Complete a partial platform name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.v1()
			if err != nil {
				return err
			}
			res, err := c.Suggestions(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return a.printer(cmd).Suggestions(res)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum suggestions (0 uses the server default)")

	return cmd
}

func newV1GraphCmd(a *app) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "graph [node-id]",
		Short: "Show the platform graph, or the neighborhood of one node",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.v1()
			if err != nil {
				return err
			}
			var g *client.Graph
			if len(args) == 1 {
				g, err = c.Neighborhood(cmd.Context(), args[0], depth)
			} else {
				g, err = c.Graph(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.printer(cmd).Graph(g)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 1, fmt.Sprintf("Neighborhood hops (1-%d)", client.MaxGraphDepth))

	return cmd
}

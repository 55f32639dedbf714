package main

import (
	"github.com/spf13/cobra"

	"github.com/CannonJunior/x-uav/client"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				h   *client.HealthStatus
				err error
			)
			if a.apiCfg.Contract == client.ContractV1 {
				c, cerr := a.v1()
				if cerr != nil {
					return cerr
				}
				h, err = c.CheckHealth(cmd.Context())
			} else {
				c, cerr := a.legacy()
				if cerr != nil {
					return cerr
				}
				h, err = c.CheckHealth(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.printer(cmd).Health(h)
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts by country, type and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			st, err := c.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer(cmd).Stats(st)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every UAV (first catalog page on the v1 contract)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.apiCfg.Contract == client.ContractV1 {
				c, err := a.v1()
				if err != nil {
					return err
				}
				page, err := c.ListUAVs(cmd.Context(), 0, client.DefaultPageLimit)
				if err != nil {
					return err
				}
				return a.printer(cmd).Platforms(page)
			}
			c, err := a.legacy()
			if err != nil {
				return err
			}
			list, err := c.ListUAVs(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer(cmd).UAVs(list)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <designation>",
		Short: "Show one UAV (by id on the v1 contract)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.apiCfg.Contract == client.ContractV1 {
				c, err := a.v1()
				if err != nil {
					return err
				}
				p, err := c.GetUAV(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printer(cmd).Platform(p)
			}
			c, err := a.legacy()
			if err != nil {
				return err
			}
			u, err := c.GetUAV(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).UAV(u)
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <designation>...",
		Short: "Fetch several UAVs side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			list, err := c.CompareUAVs(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.printer(cmd).UAVs(list)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var f client.SearchFilters

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search UAVs; omitted filters match everything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			list, err := c.SearchUAVs(cmd.Context(), f)
			if err != nil {
				return err
			}
			a.log.Debug().Int("total", list.Total).Msg("search completed")
			return a.printer(cmd).UAVs(list)
		},
	}

	cmd.Flags().StringVar(&f.Country, "country", "", "Country of origin")
	cmd.Flags().StringVar(&f.Type, "type", "", "UAV type, e.g. MALE")
	cmd.Flags().StringVar(&f.Status, "status", "", "Operational status")
	cmd.Flags().StringVar(&f.NATOClass, "nato-class", "", "NATO class")

	return cmd
}

func newFiltersCmd(a *app) *cobra.Command {
	names := make([]string, 0, len(client.Dimensions()))
	for _, d := range client.Dimensions() {
		names = append(names, string(d))
	}
	return &cobra.Command{
		Use:       "filters <dimension>",
		Short:     "List the distinct values of a filter dimension",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			dim := client.Dimension(args[0])
			values, err := c.ListDistinctValues(cmd.Context(), dim)
			if err != nil {
				return err
			}
			return a.printer(cmd).Values(dim, values)
		},
	}
}

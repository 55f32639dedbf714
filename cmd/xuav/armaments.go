package main

import (
	"github.com/spf13/cobra"

	"github.com/CannonJunior/x-uav/client"
)

func newArmamentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "armaments",
		Short: "Query the weapons catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every armament",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			res, err := c.ListArmaments(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer(cmd).Armaments(res.Armaments, res.Total)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <designation>",
		Short: "Show one armament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			arm, err := c.GetArmament(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).Armament(arm)
		},
	})

	cmd.AddCommand(newArmamentSearchCmd(a))

	cmd.AddCommand(&cobra.Command{
		Use:   "for-uav <designation>",
		Short: "List the armaments a UAV can carry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			res, err := c.GetUAVArmaments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).Armaments(res.Armaments, res.Total)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "carriers <designation>",
		Short: "List the UAVs able to carry an armament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			res, err := c.GetArmamentUAVs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).UAVs(&client.UAVList{Total: res.Total, UAVs: res.UAVs})
		},
	})

	return cmd
}

func newArmamentSearchCmd(a *app) *cobra.Command {
	var q client.ArmamentSearch

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search armaments; omitted filters match everything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.legacy()
			if err != nil {
				return err
			}
			res, err := c.SearchArmaments(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printer(cmd).Armaments(res.Armaments, res.Total)
		},
	}

	cmd.Flags().StringVar(&q.WeaponType, "weapon-type", "", "e.g. Missile, Bomb")
	cmd.Flags().StringVar(&q.WeaponClass, "weapon-class", "", "Weapon class")
	cmd.Flags().StringVar(&q.Country, "country", "", "Country of origin")
	cmd.Flags().StringVar(&q.GuidanceType, "guidance-type", "", "e.g. Laser, GPS/INS")

	return cmd
}

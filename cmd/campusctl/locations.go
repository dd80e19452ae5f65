package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unilink/campus-api/internal/core/domain"
	"github.com/unilink/campus-api/internal/core/ports"
	"github.com/unilink/campus-api/internal/core/service"
)

type locationsOptions struct {
	lat, lng float64
	radius   float64
	text     string
	category string
	nearby   bool
}

// newLocationsCommand prints the campus directory the way the map screen
// would see it.
func newLocationsCommand() *cobra.Command {
	var opts locationsOptions
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Query the campus location directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := ports.LocationQuery{
				RadiusKm: opts.radius,
				Text:     opts.text,
				Category: domain.LocationCategory(opts.category),
				View:     ports.ViewAll,
			}
			if opts.nearby {
				q.View = ports.ViewNearby
			}
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				q.Origin = &domain.Coordinates{Lat: opts.lat, Lng: opts.lng}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDISTANCE")
			for _, r := range service.NewCampusDirectory(opts.radius).Query(q) {
				dist := "-"
				if r.DistanceKm != nil {
					dist = fmt.Sprintf("%.2f km", *r.DistanceKm)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Location.ID, r.Location.Title, r.Location.Category, dist)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "origin latitude")
	cmd.Flags().Float64Var(&opts.lng, "lng", 0, "origin longitude")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "nearby radius in km (default 1)")
	cmd.Flags().StringVarP(&opts.text, "query", "q", "", "text filter")
	cmd.Flags().StringVar(&opts.category, "category", "", "category filter")
	cmd.Flags().BoolVar(&opts.nearby, "nearby", false, "only show locations within the radius")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Graph exploration commands",
	}
	cmd.AddCommand(graphExploreCmd())
	cmd.AddCommand(graphSubgraphCmd())
	return cmd
}

func graphExploreCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "explore <entity-id>",
		Short: "Expand the neighborhood around an entity via bounded BFS",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Graph.Explore(context.Background(), parseIDArg(args[0]), depth)
			if err != nil {
				fatal("explore", err)
			}
			if flagFmt == "quiet" {
				for _, n := range result.Nodes {
					fmt.Println(n.ID)
				}
				return
			}
			output(result, 0)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "Expansion depth in hops")
	return cmd
}

func graphSubgraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subgraph <id> [<id>...]",
		Short: "Get the induced subgraph over a set of entities",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ids := make([]int64, len(args))
			for i, arg := range args {
				ids[i] = parseIDArg(arg)
			}
			result, err := apiClient.Graph.Subgraph(context.Background(), ids)
			if err != nil {
				fatal("subgraph", err)
			}
			output(result, 0)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate graph statistics",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Graph.Stats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			if flagFmt == "table" {
				headers := []string{"TYPE", "DISPLAY_NAME", "COUNT"}
				var rows [][]string
				for _, tc := range stats.EntitiesByType {
					rows = append(rows, []string{tc.Type, tc.DisplayName, strconv.Itoa(tc.Count)})
				}
				formatTable(headers, rows)
				fmt.Printf("\n%d entities, %d relationships, %d entity types, %d relationship types\n",
					stats.TotalEntities, stats.TotalRelationships, stats.EntityTypes, stats.RelationshipTypes)
				return
			}
			output(stats, 0)
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			if flagFmt == "quiet" {
				fmt.Println(resp.Status)
				return
			}
			if flagFmt == "table" {
				fmt.Printf("status: %s\nversion: %s\ndatabase: %s\nuptime: %.0fs\n",
					resp.Status, resp.Version, resp.Database, resp.UptimeSeconds)
				if resp.Status != "ok" {
					os.Exit(1)
				}
				return
			}
			output(resp, 0)
		},
	}
}

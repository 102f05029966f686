package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caseboard/caseboard/client"
)

func newRelationshipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationship",
		Aliases: []string{"rel"},
		Short:   "Manage relationships",
	}
	cmd.AddCommand(relationshipCreateCmd())
	cmd.AddCommand(relationshipGetCmd())
	cmd.AddCommand(relationshipUpdateCmd())
	cmd.AddCommand(relationshipDeleteCmd())
	cmd.AddCommand(relationshipListCmd())
	return cmd
}

func relationshipCreateCmd() *cobra.Command {
	var typeID int64
	var propsJSON string
	cmd := &cobra.Command{
		Use:   "create <from-id> <to-id>",
		Short: "Create a relationship between two entities",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateRelationshipRequest{
				RelationshipTypeID: typeID,
				FromEntityID:       parseIDArg(args[0]),
				ToEntityID:         parseIDArg(args[1]),
			}
			if propsJSON != "" {
				if err := json.Unmarshal([]byte(propsJSON), &req.Properties); err != nil {
					fatal("parse props", err)
				}
			}
			rel, err := apiClient.Relationships.Create(context.Background(), req)
			if err != nil {
				fatal("create relationship", err)
			}
			output(rel, rel.ID)
		},
	}
	cmd.Flags().Int64Var(&typeID, "type", 0, "Relationship type ID (required)")
	cmd.Flags().StringVar(&propsJSON, "props", "", "Properties as JSON")
	cmd.MarkFlagRequired("type") //nolint:errcheck
	return cmd
}

func relationshipGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a relationship by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rel, err := apiClient.Relationships.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get relationship", err)
			}
			output(rel, rel.ID)
		},
	}
}

func relationshipUpdateCmd() *cobra.Command {
	var propsJSON string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a relationship's properties",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateRelationshipRequest{}
			if propsJSON != "" {
				if err := json.Unmarshal([]byte(propsJSON), &req.Properties); err != nil {
					fatal("parse props", err)
				}
			}
			rel, err := apiClient.Relationships.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update relationship", err)
			}
			output(rel, rel.ID)
		},
	}
	cmd.Flags().StringVar(&propsJSON, "props", "", "Properties as JSON")
	return cmd
}

func relationshipDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a relationship",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Relationships.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete relationship", err)
			}
			fmt.Println("deleted")
		},
	}
}

func relationshipListCmd() *cobra.Command {
	var fromID, toID, typeID int64
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List relationships",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit must be non-negative\n")
				os.Exit(1)
			}
			if offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --offset must be non-negative\n")
				os.Exit(1)
			}
			opts := &client.RelationshipListOptions{
				FromEntityID:       fromID,
				ToEntityID:         toID,
				RelationshipTypeID: typeID,
				Limit:              limit,
				Offset:             offset,
			}
			rels, _, err := apiClient.Relationships.List(context.Background(), opts)
			if err != nil {
				fatal("list relationships", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "TYPE_ID", "FROM", "TO"}
				var rows [][]string
				for _, r := range rels {
					rows = append(rows, []string{
						strconv.FormatInt(r.ID, 10),
						strconv.FormatInt(r.RelationshipTypeID, 10),
						strconv.FormatInt(r.FromEntityID, 10),
						strconv.FormatInt(r.ToEntityID, 10),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, r := range rels {
					fmt.Println(r.ID)
				}
				return
			}
			output(rels, 0)
		},
	}
	cmd.Flags().Int64Var(&fromID, "from", 0, "Filter by source entity ID")
	cmd.Flags().Int64Var(&toID, "to", 0, "Filter by target entity ID")
	cmd.Flags().Int64Var(&typeID, "type", 0, "Filter by relationship type ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}

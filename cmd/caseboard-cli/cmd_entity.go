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

func newEntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Manage entities",
	}
	cmd.AddCommand(entityCreateCmd())
	cmd.AddCommand(entityGetCmd())
	cmd.AddCommand(entityUpdateCmd())
	cmd.AddCommand(entityDeleteCmd())
	cmd.AddCommand(entityListCmd())
	cmd.AddCommand(entityRelationshipsCmd())
	return cmd
}

func entityCreateCmd() *cobra.Command {
	var typeID int64
	var description, propsJSON string
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an entity",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateEntityRequest{
				EntityTypeID: typeID,
				Title:        args[0],
			}
			if description != "" {
				req.Description = &description
			}
			if propsJSON != "" {
				if err := json.Unmarshal([]byte(propsJSON), &req.Properties); err != nil {
					fatal("parse props", err)
				}
			}
			entity, err := apiClient.Entities.Create(context.Background(), req)
			if err != nil {
				fatal("create entity", err)
			}
			output(entity, entity.ID)
		},
	}
	cmd.Flags().Int64Var(&typeID, "type", 0, "Entity type ID (required)")
	cmd.Flags().StringVar(&description, "description", "", "Entity description")
	cmd.Flags().StringVar(&propsJSON, "props", "", "Properties as JSON")
	cmd.MarkFlagRequired("type") //nolint:errcheck
	return cmd
}

func entityGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an entity by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			entity, err := apiClient.Entities.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get entity", err)
			}
			output(entity, entity.ID)
		},
	}
}

func entityUpdateCmd() *cobra.Command {
	var title, description, propsJSON string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an entity",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateEntityRequest{}
			if title != "" {
				req.Title = &title
			}
			if description != "" {
				req.Description = &description
			}
			if propsJSON != "" {
				if err := json.Unmarshal([]byte(propsJSON), &req.Properties); err != nil {
					fatal("parse props", err)
				}
			}
			entity, err := apiClient.Entities.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update entity", err)
			}
			output(entity, entity.ID)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Entity title")
	cmd.Flags().StringVar(&description, "description", "", "Entity description")
	cmd.Flags().StringVar(&propsJSON, "props", "", "Properties as JSON")
	return cmd
}

func entityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entity",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Entities.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete entity", err)
			}
			fmt.Println("deleted")
		},
	}
}

func entityListCmd() *cobra.Command {
	var typeID int64
	var search string
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit must be non-negative\n")
				os.Exit(1)
			}
			if offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --offset must be non-negative\n")
				os.Exit(1)
			}
			opts := &client.EntityListOptions{
				EntityTypeID: typeID,
				Search:       search,
				Limit:        limit,
				Offset:       offset,
			}
			entities, _, err := apiClient.Entities.List(context.Background(), opts)
			if err != nil {
				fatal("list entities", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "TYPE_ID", "TITLE"}
				var rows [][]string
				for _, e := range entities {
					rows = append(rows, []string{
						strconv.FormatInt(e.ID, 10),
						strconv.FormatInt(e.EntityTypeID, 10),
						e.Title,
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, e := range entities {
					fmt.Println(e.ID)
				}
				return
			}
			output(entities, 0)
		},
	}
	cmd.Flags().Int64Var(&typeID, "type", 0, "Filter by entity type ID")
	cmd.Flags().StringVar(&search, "search", "", "Filter by title substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}

func entityRelationshipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relationships <id>",
		Short: "List relationships incident to an entity",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rels, err := apiClient.Entities.Relationships(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("list entity relationships", err)
			}
			output(rels, 0)
		},
	}
}

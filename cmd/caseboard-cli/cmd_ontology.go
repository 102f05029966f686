package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caseboard/caseboard/client"
)

func newEntityTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entity-type",
		Aliases: []string{"et"},
		Short:   "Manage entity types",
	}
	cmd.AddCommand(entityTypeListCmd())
	cmd.AddCommand(entityTypeGetCmd())
	cmd.AddCommand(entityTypeCreateCmd())
	cmd.AddCommand(entityTypeUpdateCmd())
	cmd.AddCommand(entityTypeDeleteCmd())
	return cmd
}

func entityTypeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entity types",
		Run: func(cmd *cobra.Command, args []string) {
			types, err := apiClient.EntityTypes.List(context.Background())
			if err != nil {
				fatal("list entity types", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "DISPLAY_NAME"}
				var rows [][]string
				for _, typ := range types {
					rows = append(rows, []string{strconv.FormatInt(typ.ID, 10), typ.Name, typ.DisplayName})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, typ := range types {
					fmt.Println(typ.ID)
				}
				return
			}
			output(types, 0)
		},
	}
}

func entityTypeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an entity type by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			typ, err := apiClient.EntityTypes.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get entity type", err)
			}
			output(typ, typ.ID)
		},
	}
}

func entityTypeCreateCmd() *cobra.Command {
	var displayName, description, icon, color, schemaJSON string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an entity type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateEntityTypeRequest{
				Name:        args[0],
				DisplayName: displayName,
			}
			if req.DisplayName == "" {
				req.DisplayName = args[0]
			}
			if description != "" {
				req.Description = &description
			}
			if icon != "" {
				req.Icon = &icon
			}
			if color != "" {
				req.Color = &color
			}
			if schemaJSON != "" {
				if err := json.Unmarshal([]byte(schemaJSON), &req.PropertySchema); err != nil {
					fatal("parse schema", err)
				}
			}
			typ, err := apiClient.EntityTypes.Create(context.Background(), req)
			if err != nil {
				fatal("create entity type", err)
			}
			output(typ, typ.ID)
		},
	}
	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name (defaults to name)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon identifier")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&schemaJSON, "schema", "", "Property schema as JSON")
	return cmd
}

func entityTypeUpdateCmd() *cobra.Command {
	var displayName, description, icon, color, schemaJSON string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an entity type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateEntityTypeRequest{}
			if displayName != "" {
				req.DisplayName = &displayName
			}
			if description != "" {
				req.Description = &description
			}
			if icon != "" {
				req.Icon = &icon
			}
			if color != "" {
				req.Color = &color
			}
			if schemaJSON != "" {
				if err := json.Unmarshal([]byte(schemaJSON), &req.PropertySchema); err != nil {
					fatal("parse schema", err)
				}
			}
			typ, err := apiClient.EntityTypes.Update(context.Background(), parseIDArg(args[0]), req)
			if err != nil {
				fatal("update entity type", err)
			}
			output(typ, typ.ID)
		},
	}
	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon identifier")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&schemaJSON, "schema", "", "Property schema as JSON")
	return cmd
}

func entityTypeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entity type (entities of that type cascade)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.EntityTypes.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete entity type", err)
			}
			fmt.Println("deleted")
		},
	}
}

func newRelationshipTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationship-type",
		Aliases: []string{"rt"},
		Short:   "Manage relationship types",
	}
	cmd.AddCommand(relationshipTypeListCmd())
	cmd.AddCommand(relationshipTypeGetCmd())
	cmd.AddCommand(relationshipTypeCreateCmd())
	cmd.AddCommand(relationshipTypeDeleteCmd())
	return cmd
}

func relationshipTypeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List relationship types",
		Run: func(cmd *cobra.Command, args []string) {
			types, err := apiClient.RelationshipTypes.List(context.Background())
			if err != nil {
				fatal("list relationship types", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "FORWARD", "REVERSE"}
				var rows [][]string
				for _, typ := range types {
					rows = append(rows, []string{
						strconv.FormatInt(typ.ID, 10), typ.Name, typ.ForwardLabel, typ.ReverseLabel,
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, typ := range types {
					fmt.Println(typ.ID)
				}
				return
			}
			output(types, 0)
		},
	}
}

func relationshipTypeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a relationship type by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			typ, err := apiClient.RelationshipTypes.Get(context.Background(), parseIDArg(args[0]))
			if err != nil {
				fatal("get relationship type", err)
			}
			output(typ, typ.ID)
		},
	}
}

func relationshipTypeCreateCmd() *cobra.Command {
	var displayName, forward, reverse, color, lineStyle string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a relationship type",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateRelationshipTypeRequest{
				Name:         args[0],
				DisplayName:  displayName,
				ForwardLabel: forward,
				ReverseLabel: reverse,
			}
			if req.DisplayName == "" {
				req.DisplayName = args[0]
			}
			if color != "" {
				req.Color = &color
			}
			if lineStyle != "" {
				req.LineStyle = &lineStyle
			}
			typ, err := apiClient.RelationshipTypes.Create(context.Background(), req)
			if err != nil {
				fatal("create relationship type", err)
			}
			output(typ, typ.ID)
		},
	}
	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name (defaults to name)")
	cmd.Flags().StringVar(&forward, "forward", "", "Forward label, e.g. 'owns' (required)")
	cmd.Flags().StringVar(&reverse, "reverse", "", "Reverse label, e.g. 'owned by' (required)")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&lineStyle, "line-style", "", "Edge line style")
	cmd.MarkFlagRequired("forward") //nolint:errcheck
	cmd.MarkFlagRequired("reverse") //nolint:errcheck
	return cmd
}

func relationshipTypeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a relationship type (relationships of that type cascade)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.RelationshipTypes.Delete(context.Background(), parseIDArg(args[0])); err != nil {
				fatal("delete relationship type", err)
			}
			fmt.Println("deleted")
		},
	}
}

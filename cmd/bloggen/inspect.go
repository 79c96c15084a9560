package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"webvello.com/site/internal/blogfactory"
)

func previewCmd(root *rootOptions) *cobra.Command {
	var (
		template string
		industry string
		service  string
		city     string
		year     int
	)
	c := &cobra.Command{
		Use:   "preview",
		Short: "Print the markdown document one tuple would produce",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("year") {
				cfg, err := root.loadConfig()
				if err != nil {
					return err
				}
				year = cfg.Generator.Year
			}
			post, err := blogfactory.Composer{Year: year}.Compose(template, industry, service, city)
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(blogfactory.TemplateKeys(), ", "))
			}
			doc, err := blogfactory.Render(post, time.Now())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
	flags := c.Flags()
	flags.StringVar(&template, "template", "how-to", "template key")
	flags.StringVar(&industry, "industry", "", "industry name")
	flags.StringVar(&service, "service", "", "service name")
	flags.StringVar(&city, "city", "", "city name")
	flags.IntVar(&year, "year", 0, "year used by trend titles")
	_ = c.MarkFlagRequired("industry")
	_ = c.MarkFlagRequired("service")
	_ = c.MarkFlagRequired("city")
	return c
}

func slugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <title>",
		Short: "Print the URL slug for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := blogfactory.Slugify(args[0])
			if slug == "" {
				return fmt.Errorf("title %q has no slug-safe characters", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}

func historyCmd(root *rootOptions) *cobra.Command {
	var (
		registry string
		limit    int
	)
	c := &cobra.Command{
		Use:   "history",
		Short: "List posts recorded in the generation registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("registry") {
				cfg, err := root.loadConfig()
				if err != nil {
					return err
				}
				registry = cfg.Generator.RegistryPath
			}
			reg, err := blogfactory.OpenRegistry(registry)
			if err != nil {
				return err
			}
			defer reg.Close()

			records, err := reg.Recent(limit)
			if err != nil {
				return err
			}

			tbl := newTable("CREATED", "SLUG", "TEMPLATE", "INDUSTRY", "SERVICE", "CITY")
			for _, rec := range records {
				created := time.Unix(0, rec.CreatedAt).UTC().Format(time.RFC3339)
				tbl.addRow(created, rec.Slug, rec.Template, rec.Industry, rec.Service, rec.City)
			}
			if err := tbl.render(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d posts\n", len(records))
			return nil
		},
	}
	c.Flags().StringVar(&registry, "registry", "", "buntdb registry path (default from GEN_REGISTRY)")
	c.Flags().IntVar(&limit, "limit", 0, "show only the newest N posts")
	return c
}

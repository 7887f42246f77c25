package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/cacheops/ecinv/pkg/elasticache"
	"github.com/cacheops/ecinv/pkg/inventory"
	"github.com/cacheops/ecinv/pkg/serializer"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Query ElastiCache clusters and render an inventory report",
		Description: `Query ElastiCache clusters across every region touched by Global
Datastore topology and render a flat tabular report.

The query runs in four layers: Global Datastore discovery, replication
group enumeration, per-group member detail lookup, and parameter group
slow-log lookup. Regions are queried concurrently; a failing region is
logged and excluded without aborting the run.

# Examples

All clusters visible from us-east-1:
  ecinv report --region us-east-1

Only Redis, name-filtered, selected columns:
  ecinv report --region us-east-1 --engines redis \
    --cluster "prod-*" --fields region,type,name,node-type

Markdown to a file:
  ecinv report --region us-east-1 --format markdown --output report.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "region",
				Aliases: []string{"r"},
				Usage:   "AWS region to query from",
				Sources: cli.EnvVars("AWS_REGION", "ECINV_REGION"),
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "AWS shared config profile",
				Sources: cli.EnvVars("AWS_PROFILE", "ECINV_PROFILE"),
			},
			&cli.StringFlag{
				Name:    "engines",
				Aliases: []string{"e"},
				Usage:   "engine families to include, comma-separated (redis, valkey, memcached)",
				Sources: cli.EnvVars("ECINV_ENGINES"),
			},
			&cli.StringFlag{
				Name:    "cluster",
				Aliases: []string{"c"},
				Usage:   "cluster name filter, shell-style wildcards supported",
			},
			&cli.StringFlag{
				Name:    "fields",
				Aliases: []string{"i"},
				Usage:   "report columns, comma-separated, or \"all\"",
				Sources: cli.EnvVars("ECINV_FIELDS"),
			},
			formatFlag,
			outputFlag,
		},
		Action: runReport,
	}
}

func runReport(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	region := fallback(cmd.String("region"), cfg.Region, "")
	if region == "" {
		return fmt.Errorf("region is required: pass --region or set it in the config file")
	}

	engines, err := elasticache.ParseEngines(fallback(cmd.String("engines"), cfg.Engines, ""))
	if err != nil {
		return err
	}

	fields, err := inventory.ParseFields(fallback(cmd.String("fields"), cfg.Fields, "all"))
	if err != nil {
		return err
	}

	format := serializer.Format(fallback(cmd.String("format"), cfg.Format, string(serializer.FormatCSV)))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	namePattern := cmd.String("cluster")
	if err := elasticache.ValidateNamePattern(namePattern); err != nil {
		return fmt.Errorf("invalid cluster name pattern %q: %w", namePattern, err)
	}

	// One parameter cache for the whole run, shared by every
	// region-bound client the factory hands out.
	factory := &elasticache.Factory{
		Profile: fallback(cmd.String("profile"), cfg.Profile, ""),
		Params:  elasticache.NewParameterCache(),
	}

	collector := &inventory.Collector{
		HomeRegion: region,
		Engines:    engines,
		NameFilter: namePattern,
		NewQuerier: func(ctx context.Context, region string) (inventory.Querier, error) {
			return factory.NewClient(ctx, region)
		},
	}

	report, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "warning: region %s excluded: %s\n", failure.Region, failure.Error)
	}
	if len(report.Records) == 0 {
		slog.Info("no matching clusters found")
	}

	writer, err := serializer.NewFileWriterOrStdout(format, fallback(cmd.String("output"), cfg.Output, ""))
	if err != nil {
		return err
	}
	defer writer.Close()

	return writer.Write(ctx, report, fields)
}

func fieldsCmd() *cli.Command {
	return &cli.Command{
		Name:  "fields",
		Usage: "List the report columns available to --fields",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tHEADER")
			for _, field := range inventory.AllFields() {
				fmt.Fprintf(tw, "%s\t%s\n", field, field.Title())
			}
			return tw.Flush()
		},
	}
}

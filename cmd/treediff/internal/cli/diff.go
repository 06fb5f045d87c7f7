package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HuygensING/alexandria-markup-sub001/cmd/treediff/internal/report"
	"github.com/HuygensING/alexandria-markup-sub001/converters"
	"github.com/HuygensING/alexandria-markup-sub001/ted"
	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

const diffLongDescription = `Compare SOURCE with TARGET and print one line per mapping entry:

  No change for A (@1 and @1)
  Change from B (@2) to C (@3)
  Insert B (@2)
  Delete D (@3)

Positions are preorder ranks starting at 1.`

func newDiffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff SOURCE TARGET",
		Short: "Print the edit mapping between two trees",
		Long:  diffLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringP(formatFlagName, "f", defaultFormat, "output format: text, table, json or yaml")
	bindFlag(a.v, cmd.Flags().Lookup(formatFlagName), formatKey)
	cmd.Flags().Bool(detailFlagName, defaultDetail, "show character changes of relabeled nodes")
	bindFlag(a.v, cmd.Flags().Lookup(detailFlagName), detailKey)
	cmd.Flags().String(colorFlagName, defaultColor, "style text output: auto, always or never")
	bindFlag(a.v, cmd.Flags().Lookup(colorFlagName), colorKey)
	cmd.Flags().Int(maxCellsFlagName, ted.DefaultMaxCells, "largest alignment table to allocate (0 = unbounded)")
	bindFlag(a.v, cmd.Flags().Lookup(maxCellsFlagName), maxCellsKey)

	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, sourcePath, targetPath string) error {
	format, err := report.ParseFormat(a.v.GetString(formatKey))
	if err != nil {
		return err
	}

	var color bool
	switch mode := report.ColorMode(a.v.GetString(colorKey)); mode {
	case report.ColorAuto, report.ColorAlways, report.ColorNever:
		color = report.UseColor(mode, cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}

	source, target, err := a.loadPair(sourcePath, targetPath)
	if err != nil {
		return err
	}

	res, err := ted.Diff(source, target,
		ted.WithMaxCells(a.v.GetInt(maxCellsKey)),
		ted.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("diff %s %s: %w", sourcePath, targetPath, err)
	}
	a.log.Info("diff done", "source", sourcePath, "target", targetPath, "cost", res.Cost)

	return report.Write(cmd.OutOrStdout(), report.Diff{
		SourceName: sourcePath,
		TargetName: targetPath,
		Source:     source,
		Target:     target,
		Result:     res,
	}, report.Options{
		Format: format,
		Detail: a.v.GetBool(detailKey),
		Color:  color,
	})
}

// loadPair reads both inputs concurrently.
func (a *app) loadPair(sourcePath, targetPath string) (*tree.Tree, *tree.Tree, error) {
	var source, target *tree.Tree
	var g errgroup.Group

	g.Go(func() error {
		var err error
		source, err = a.load(sourcePath)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = a.load(targetPath)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return source, target, nil
}

func (a *app) load(path string) (*tree.Tree, error) {
	var md []converters.MarkdownOption
	if a.v.GetBool(markdownTextKey) {
		md = append(md, converters.WithTextContent())
	}

	t, err := converters.LoadFile(path, md...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("tree loaded", "path", path, "format", converters.FormatOf(path), "size", t.Size())

	return t, nil
}

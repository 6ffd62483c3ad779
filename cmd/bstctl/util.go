package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	bst "github.com/QinLinag/omniponent_bst"
	"github.com/QinLinag/omniponent_bst/config"
	"github.com/QinLinag/omniponent_bst/kv"
	"github.com/QinLinag/omniponent_bst/sortTree"
	"github.com/QinLinag/omniponent_bst/view"

	"github.com/urfave/cli/v2"
)

func loadConfig(cctx *cli.Context) (config.Config, error) {
	con := config.Default()
	con.LogLevel = cctx.String("log-level")
	con.LogFormat = cctx.String("log-format")
	con.Output = cctx.String("output")
	keys, err := config.ParseKeys(cctx.String("keys"))
	if err != nil {
		return con, err
	}
	con.Keys = keys
	con.MetricsListen = cctx.String("metrics-listen")
	if err := con.Validate(); err != nil {
		return con, err
	}
	return con, nil
}

func configLogger(con config.Config, w io.Writer) *slog.Logger {
	level, _ := con.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if con.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// 每次命令新建一棵树，并插入配置中的key
func newSession(cctx *cli.Context) (*bst.Session, *printer, error) {
	con, err := loadConfig(cctx)
	if err != nil {
		return nil, nil, err
	}
	logger := configLogger(con, cctx.App.ErrWriter)
	if con.MetricsListen != "" {
		go serveMetrics(con.MetricsListen, logger)
	}

	session := bst.NewSession(sortTree.NewSortTree(), logger)
	for _, key := range con.Keys {
		session.Insert(key)
	}
	return session, &printer{out: cctx.App.Writer, format: con.Output}, nil
}

type printer struct {
	out    io.Writer
	format string
}

func (p *printer) json(v any) error {
	data, err := kv.Convert(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(p.out, string(data))
	return nil
}

func (p *printer) traversal(order kv.Order, keys []int) error {
	if p.format == "json" {
		return p.json(map[string]any{"order": order, "keys": keys})
	}
	fmt.Fprintf(p.out, "%s-order: %s\n", order, formatKeys(keys))
	return nil
}

func (p *printer) search(report kv.SearchReport, tree *sortTree.Tree) error {
	switch p.format {
	case "json":
		return p.json(report)
	case "tree":
		fmt.Fprintf(p.out, "find %d: %s path=%s\n", report.Key, foundWord(report.Found), formatKeys(report.Path))
		fmt.Fprint(p.out, view.RenderTree(tree, report.Path))
	default:
		fmt.Fprintf(p.out, "find %d: %s path=%s\n", report.Key, foundWord(report.Found), formatKeys(report.Path))
	}
	return nil
}

func (p *printer) snapshot(snapshot kv.Snapshot) error {
	switch p.format {
	case "json":
		return p.json(snapshot)
	case "tree":
		fmt.Fprintf(p.out, "count=%d height=%d\n", snapshot.Count, snapshot.Height)
		fmt.Fprint(p.out, view.Render(snapshot, nil))
	default:
		fmt.Fprintf(p.out, "count=%d height=%d keys=%s\n", snapshot.Count, snapshot.Height, formatKeys(snapshot.Keys))
	}
	return nil
}

func (p *printer) changes(changes view.Changes) error {
	if changes.IsEmpty() {
		return nil
	}
	if p.format == "json" {
		return p.json(changes)
	}
	if len(changes.EnteredNodes) > 0 {
		fmt.Fprintf(p.out, "+ %s\n", formatKeys(changes.EnteredNodes))
	}
	if len(changes.ExitedNodes) > 0 {
		fmt.Fprintf(p.out, "- %s\n", formatKeys(changes.ExitedNodes))
	}
	return nil
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func foundWord(found bool) string {
	if found {
		return "found"
	}
	return "not found"
}

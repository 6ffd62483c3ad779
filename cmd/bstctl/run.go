package main

import (
	"fmt"

	"github.com/QinLinag/omniponent_bst/kv"

	"github.com/urfave/cli/v2"
)

var cmdRun = &cli.Command{
	Name:  "run",
	Usage: "build a tree from --keys, apply removals and lookups, print the result",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "remove",
			Usage: "key to remove after inserting (repeatable)",
		},
		&cli.IntSliceFlag{
			Name:  "find",
			Usage: "key to look up, printing its descent path (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "order",
			Usage: "traversal to print: pre, in, post or level (repeatable, default all)",
		},
	},
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	session, out, err := newSession(cctx)
	if err != nil {
		return err
	}
	for _, key := range cctx.IntSlice("remove") {
		session.Remove(key)
	}

	orders := kv.Orders
	if names := cctx.StringSlice("order"); len(names) > 0 {
		orders = make([]kv.Order, 0, len(names))
		for _, name := range names {
			order, err := kv.ParseOrder(name)
			if err != nil {
				return fmt.Errorf("%w: %q", err, name)
			}
			orders = append(orders, order)
		}
	}
	for _, order := range orders {
		keys, err := session.Traverse(order)
		if err != nil {
			return err
		}
		if err := out.traversal(order, keys); err != nil {
			return err
		}
	}

	for _, key := range cctx.IntSlice("find") {
		if err := out.search(session.Search(key), session.Tree()); err != nil {
			return err
		}
	}
	return out.snapshot(session.Snapshot())
}

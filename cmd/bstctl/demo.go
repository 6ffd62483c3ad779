package main

import (
	"fmt"

	"github.com/QinLinag/omniponent_bst/kv"
	"github.com/QinLinag/omniponent_bst/view"

	"github.com/urfave/cli/v2"
)

var demoKeys = []int{5, 3, 8, 1, 4, 7, 9}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "walk through insert, duplicate insert, search and two-child removal on a sample tree",
	Action: func(cctx *cli.Context) error {
		session, out, err := newSession(cctx)
		if err != nil {
			return err
		}
		w := cctx.App.Writer

		before := session.Snapshot()
		for _, key := range demoKeys {
			session.Insert(key)
		}
		fmt.Fprintf(w, "insert %s\n", formatKeys(demoKeys))
		if err := out.changes(view.Diff(before, session.Snapshot())); err != nil {
			return err
		}
		for _, order := range kv.Orders {
			keys, err := session.Traverse(order)
			if err != nil {
				return err
			}
			if err := out.traversal(order, keys); err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "insert 3: %s\n", session.Insert(3))

		if err := out.search(session.Search(4), session.Tree()); err != nil {
			return err
		}

		before = session.Snapshot()
		session.Remove(5)
		fmt.Fprintln(w, "remove 5")
		if err := out.changes(view.Diff(before, session.Snapshot())); err != nil {
			return err
		}
		return out.snapshot(session.Snapshot())
	},
}

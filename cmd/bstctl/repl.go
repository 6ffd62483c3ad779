package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	bst "github.com/QinLinag/omniponent_bst"
	"github.com/QinLinag/omniponent_bst/kv"
	"github.com/QinLinag/omniponent_bst/view"

	"github.com/urfave/cli/v2"
)

const replHelp = `commands:
  insert N | N     add a key
  remove N         delete a key
  find N           look up a key and show its path
  pre | in | post | level
  height | count | show | metrics | clear | help | quit`

var cmdRepl = &cli.Command{
	Name:  "repl",
	Usage: "interactive session reading one command per line",
	Action: func(cctx *cli.Context) error {
		session, out, err := newSession(cctx)
		if err != nil {
			return err
		}
		r := &repl{
			session: session,
			out:     out,
			w:       cctx.App.Writer,
		}
		return r.loop(cctx.App.Reader)
	},
}

type repl struct {
	session *bst.Session
	out     *printer
	w       io.Writer
}

func (r *repl) loop(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.w)
			return scanner.Err()
		}
		quit, err := r.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(r.w, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// 执行一行命令，返回true时退出循环
func (r *repl) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(fields[0])

	//直接输入数字等同于insert
	if _, err := strconv.Atoi(cmd); err == nil {
		fields = append([]string{"insert"}, fields...)
		cmd = "insert"
	}

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(r.w, replHelp)
		return false, nil
	case "height":
		fmt.Fprintf(r.w, "height: %d\n", r.session.Height())
		return false, nil
	case "count":
		fmt.Fprintf(r.w, "count: %d\n", r.session.Tree().GetCount())
		return false, nil
	case "show":
		return false, r.out.snapshot(r.session.Snapshot())
	case "metrics":
		return false, bst.WriteMetrics(r.w)
	case "clear":
		r.session.Clear()
		return false, nil
	case "insert", "add", "remove", "delete", "rm", "find", "search":
		key, err := parseKey(fields)
		if err != nil {
			return false, err
		}
		return false, r.keyed(cmd, key)
	}

	order, err := kv.ParseOrder(cmd)
	if err != nil {
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	keys, err := r.session.Traverse(order)
	if err != nil {
		return false, err
	}
	return false, r.out.traversal(order, keys)
}

func (r *repl) keyed(cmd string, key int) error {
	before := r.session.Snapshot()
	switch cmd {
	case "insert", "add":
		if result := r.session.Insert(key); result == kv.Rejected {
			fmt.Fprintf(r.w, "key %d already exists\n", key)
			return nil
		}
		fmt.Fprintf(r.w, "key %d inserted\n", key)
	case "remove", "delete", "rm":
		if !r.session.Remove(key) {
			fmt.Fprintf(r.w, "key %d not found\n", key)
			return nil
		}
		fmt.Fprintf(r.w, "key %d removed\n", key)
	default:
		return r.out.search(r.session.Search(key), r.session.Tree())
	}
	return r.out.changes(view.Diff(before, r.session.Snapshot()))
}

// 非数字输入在这里拒绝，不会传给树
func parseKey(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%s needs exactly one key", fields[0])
	}
	key, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", kv.ErrInvalidKey, fields[1])
	}
	return key, nil
}

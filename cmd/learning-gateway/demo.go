package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/saharshpoddar/learning-gateway/internal/dispatch"
)

// demoCalls exercise the in-memory surface: vault, discovery, and export.
// No live product connection is needed.
var demoCalls = []struct {
	tool string
	args map[string]string
}{
	{"vault_browse", map[string]string{"category": "java"}},
	{"discover_resources", map[string]string{"query": `"JUnit 5 docs"`}},
	{"discover_resources", map[string]string{"query": "java concurrency"}},
	{"discover_resources", map[string]string{"query": "I want to learn programming"}},
	{"export_results", map[string]string{"format": "text"}},
}

func runDemo(dispatcher *dispatch.Dispatcher) error {
	fmt.Println("learning-gateway demo: vault, discovery, export")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Options(tablewriter.WithHeader([]string{"Tool", "Arguments", "Outcome"}))

	var failed bool
	for _, call := range demoCalls {
		resp := dispatcher.Dispatch(context.Background(), call.tool, call.args)
		outcome := "ok"
		if !resp.Success {
			outcome = "FAILED: " + resp.Error
			failed = true
		}
		if err := table.Append([]string{call.tool, fmt.Sprintf("%v", call.args), outcome}); err != nil {
			return err
		}

		fmt.Printf("--- %s %v\n", call.tool, call.args)
		if resp.Success {
			fmt.Println(resp.Content)
		} else {
			fmt.Println(resp.Error)
		}
		fmt.Println()
	}

	if err := table.Render(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("one or more demo calls failed")
	}
	return nil
}

package main

import "os"
import "fmt"
import "sort"
import "strings"

import humanize "github.com/dustin/go-humanize"
import "github.com/jedib0t/go-pretty/v6/table"

// printstats render stats as a table, histograms are flattened into
// their summary figures.
func printstats(stats map[string]interface{}) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"statistic", "value"})

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch val := stats[key].(type) {
		case map[string]interface{}:
			for _, sub := range []string{"samples", "min", "max", "mean"} {
				if x, ok := val[sub]; ok {
					tbl.AppendRow(table.Row{key + "." + sub, formatstat(sub, x)})
				}
			}
		default:
			tbl.AppendRow(table.Row{key, formatstat(key, val)})
		}
	}
	tbl.Render()
}

func formatstat(key string, val interface{}) string {
	switch v := val.(type) {
	case int64:
		if strings.HasSuffix(key, ".overhead") || strings.HasSuffix(key, ".useful") {
			return humanize.Bytes(uint64(v))
		}
		return humanize.Comma(v)
	case float64:
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%v", val)
}

package main

import (
	"fmt"

	"github.com/npillmayer/predict/ll"
	"github.com/pterm/pterm"
)

func printAnalysis(ga *ll.Analysis) {
	pterm.Println("_______________grammar______________")
	for _, r := range ga.Grammar().Rules() {
		pterm.Println(r.String())
	}
	pterm.Println("_______________firsts_______________")
	for _, A := range ga.NonTerminals() {
		pterm.Println(fmt.Sprintf("%s = %s", A, ga.First(A)))
	}
	pterm.Println("_______________follows______________")
	for _, A := range ga.NonTerminals() {
		pterm.Println(fmt.Sprintf("%s = %s", A, ga.Follow(A)))
	}
	pterm.Println()
	pterm.DefaultTable.WithHasHeader().WithData(tableData(ga)).Render()
	pterm.Println()
}

// tableData arranges the parse table as a grid: a header row with the
// terminals, then one row per non-terminal. Empty cells are blank.
func tableData(ga *ll.Analysis) pterm.TableData {
	table := ga.Table()
	header := []string{" "}
	for _, t := range table.Terminals() {
		header = append(header, t.Name)
	}
	data := pterm.TableData{header}
	for _, A := range table.NonTerminals() {
		row := []string{A.Name}
		for _, t := range table.Terminals() {
			cell := " "
			if p, ok := table.Lookup(A, t); ok {
				cell = p.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	return data
}

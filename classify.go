package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"pokerhands/services/poker"

	"github.com/pterm/pterm"
)

// ClassifyCmd evaluates hands locally with the same rules as the API.
type ClassifyCmd struct {
	Hands   []string `arg:"" name:"hand" help:"Five space separated cards, e.g. \"H1 H13 H12 H11 H10\""`
	NoColor bool     `help:"Disable colored output"`
}

func (c *ClassifyCmd) Run() error {
	if c.NoColor {
		pterm.DisableColor()
	}
	return c.run(os.Stdout)
}

func (c *ClassifyCmd) run(w io.Writer) error {
	res, err := poker.EvaluateBatch(c.Hands)
	if err != nil {
		return err
	}

	if len(res.Results) > 0 {
		data := pterm.TableData{{"Hand", "Category", "Best"}}
		for _, r := range res.Results {
			best := ""
			if r.Best {
				best = "*"
			}
			data = append(data, []string{r.Raw, r.Category.String(), best})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, table)
	}

	for _, f := range res.Failures {
		fmt.Fprintf(w, "error: %s: %s\n", f.Raw, f.Err)
	}

	if len(res.Results) == 0 {
		return errors.New("no valid hands")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"

	"pwaudit/internal/usecase"
)

// runRange prints every SUFFIX:COUNT candidate for prefix, one per line.
func runRange(ctx context.Context, breachUC usecase.BreachUsecase, prefix string, out io.Writer) error {
	set, err := breachUC.Lookup(ctx, prefix)
	if err != nil {
		return err
	}

	for _, c := range set.Candidates {
		fmt.Fprintf(out, "%s:%d\n", c.Suffix, c.Count)
	}

	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"pwaudit/internal/usecase"
	"pwaudit/internal/usecase/impl"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// runWatch checks every line of in as it arrives, the way a form re-checks
// while the user types. A new line supersedes the check in flight, and only
// verdicts still current when they complete are printed.
func runWatch(ctx context.Context, breachUC usecase.BreachUsecase, in io.Reader, out io.Writer) error {
	tracker := impl.NewLatestCheck(breachUC)
	group, groupCtx := errgroup.WithContext(ctx)

	var outMu sync.Mutex
	reader := bufio.NewReader(in)
	for {
		password, err := readLine(reader)
		if password != "" {
			checkCtx, seq := tracker.Begin(groupCtx)
			group.Go(func() error {
				result := breachUC.CheckBreach(checkCtx, password)
				if !tracker.Finish(seq, result) {
					return nil
				}

				outMu.Lock()
				defer outMu.Unlock()
				_, werr := fmt.Fprintf(out, "#%d %s\n", seq, describeResult(result))

				return werr
			})
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = group.Wait()

			return errors.Wrap(err, "failed to read input")
		}
	}

	return group.Wait()
}

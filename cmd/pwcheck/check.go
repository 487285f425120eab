package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pwaudit/internal/domain/entity"
	"pwaudit/internal/usecase"

	"github.com/pkg/errors"
)

// runCheck reads one password from in and prints its verdict. The returned
// code reflects the verdict.
func runCheck(ctx context.Context, breachUC usecase.BreachUsecase, in io.Reader, out io.Writer) (int, error) {
	password, err := readLine(bufio.NewReader(in))
	if err != nil && !errors.Is(err, io.EOF) {
		return exitCheckFailed, errors.Wrap(err, "failed to read password")
	}

	result := breachUC.CheckBreach(ctx, password)
	fmt.Fprintln(out, describeResult(result))

	return exitCodeFor(result), nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned together with io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')

	return strings.TrimRight(line, "\r\n"), err
}

func describeResult(result *entity.CheckResult) string {
	switch result.Verdict {
	case entity.VerdictFound:
		return fmt.Sprintf("found: this password appears %d times in known breaches", result.Count)
	case entity.VerdictNotFound:
		return "not found: this password does not appear in known breaches"
	default:
		return "check failed: " + result.Message
	}
}

func exitCodeFor(result *entity.CheckResult) int {
	switch result.Verdict {
	case entity.VerdictFound:
		return exitFound
	case entity.VerdictNotFound:
		return exitNotFound
	default:
		return exitCheckFailed
	}
}

package main

import (
	"fmt"
	"io"

	"pwaudit/internal/usecase"
)

func runGenerate(passwordUC usecase.PasswordUsecase, length int, exclude string, out io.Writer) error {
	password, err := passwordUC.Generate(usecase.GeneratePasswordRequest{
		Length:  length,
		Exclude: exclude,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, password)

	return err
}

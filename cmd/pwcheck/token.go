package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pwaudit/internal/domain/entity"
	"pwaudit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// runToken issues an access token for the operator endpoints.
func runToken(tokenSvc service.TokenService, subject, roles string, ttl time.Duration, out io.Writer) error {
	if tokenSvc == nil {
		return errors.New("secretKey.access is not configured")
	}

	userID := uuid.New()
	if subject != "" {
		parsed, err := uuid.Parse(subject)
		if err != nil {
			return errors.Wrap(err, "invalid -subject")
		}
		userID = parsed
	}

	var requested []string
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			requested = append(requested, r)
		}
	}

	valid := entity.RolesFromStrings(requested)
	if len(valid) != len(requested) {
		return errors.Errorf("unknown role in %q", roles)
	}

	token, err := tokenSvc.GenerateAccessToken(userID, valid.ToStrings(), ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)

	return err
}

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"github.com/hashicorp/go-multierror"
)

var (
	ErrMissingToken     = errors.New("login response carried no auth token")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Step is one request of a smoke pass.
type Step struct {
	Name     string
	Status   int
	Duration time.Duration
	Err      error
}

func (s Step) OK() bool { return s.Err == nil }

type Report struct {
	Token string
	Steps []Step
}

func (r *Report) OK() bool {
	for _, s := range r.Steps {
		if !s.OK() {
			return false
		}
	}
	return len(r.Steps) > 0
}

// RunSmoke makes one straight pass over the flow: login, dashboard,
// logout. Logout still runs when the dashboard call fails so the session is
// not left open. There is no retry. The returned error aggregates every
// failed step.
func RunSmoke(ctx context.Context, c *Client, creds types.Credentials) (*Report, error) {
	rep := &Report{}
	var errs *multierror.Error

	step := func(name string, call func() (*Response, error)) *Response {
		start := time.Now()
		resp, err := call()
		s := Step{Name: name, Duration: time.Since(start)}
		if err == nil {
			s.Status = resp.Status
			if resp.Status != 200 {
				err = fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp)
			}
		}
		if err != nil {
			s.Err = err
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
		rep.Steps = append(rep.Steps, s)
		return resp
	}

	resp := step("login", func() (*Response, error) { return c.Login(ctx, creds) })
	if resp == nil || resp.Status != 200 {
		return rep, errs.ErrorOrNil()
	}
	rep.Token = resp.Token()
	if rep.Token == "" {
		rep.Steps[len(rep.Steps)-1].Err = ErrMissingToken
		errs = multierror.Append(errs, fmt.Errorf("login: %w", ErrMissingToken))
		return rep, errs.ErrorOrNil()
	}

	step("dashboard", func() (*Response, error) { return c.Dashboard(ctx, rep.Token) })
	step("logout", func() (*Response, error) { return c.Logout(ctx, rep.Token) })

	return rep, errs.ErrorOrNil()
}

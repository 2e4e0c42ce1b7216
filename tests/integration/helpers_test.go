//go:build integration

package integration

import (
	"context"

	"github.com/Bharathisthe/Testing/internal/api/types"
	"github.com/Bharathisthe/Testing/internal/client"
	"github.com/stretchr/testify/suite"
)

const (
	authErrWithMissing = `(?i)invalid|expired|unauthorized|missing`
	authErr            = `(?i)invalid|expired|unauthorized`
)

// apiSuite builds a fresh client for every test.
type apiSuite struct {
	suite.Suite

	ctx context.Context
	api *client.Client
}

func (s *apiSuite) SetupTest() {
	s.ctx = context.Background()
	c, err := client.New(client.Config{BaseURL: baseURL, Timeout: cfg.Timeout})
	s.Require().NoError(err)
	s.api = c
}

func (s *apiSuite) validCredentials() types.Credentials {
	return types.Credentials{Username: cfg.Username, Passcode: cfg.Passcode}
}

func (s *apiSuite) login(creds types.Credentials) *client.Response {
	resp, err := s.api.Login(s.ctx, creds)
	s.Require().NoError(err)
	return resp
}

// loginToken logs in with the configured user and returns the header token.
func (s *apiSuite) loginToken() string {
	resp := s.login(s.validCredentials())
	s.Require().Equal(200, resp.Status, resp.String())
	token := resp.Token()
	s.Require().NotEmpty(token, "auth-sec-token header missing")
	return token
}

func (s *apiSuite) message(resp *client.Response) string {
	msg, err := resp.Message()
	s.Require().NoError(err)
	return msg
}

//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type logoutSuite struct{ apiSuite }

func TestLogout(t *testing.T) {
	suite.Run(t, new(logoutSuite))
}

func (s *logoutSuite) TestWithHeaderToken() {
	token := s.loginToken()

	resp, err := s.api.Logout(s.ctx, token)
	s.Require().NoError(err)
	s.Require().Equal(200, resp.Status, resp.String())
	s.T().Logf("Logout Response: %s", resp.Body)
}

func (s *logoutSuite) TestWithoutToken() {
	resp, err := s.api.Logout(s.ctx, "")
	s.Require().NoError(err)

	s.GreaterOrEqual(resp.Status, 400)
	s.T().Logf("Logout Response: %s", resp.Body)
	s.Regexp(authErrWithMissing, s.message(resp))
}

func (s *logoutSuite) TestInvalidToken() {
	resp, err := s.api.Logout(s.ctx, "1u$u2ufh3u2829@inavlid")
	s.Require().NoError(err)

	s.GreaterOrEqual(resp.Status, 400)
	s.T().Logf("Logout Response with invalid token: %s", resp.Body)
	s.Regexp(authErr, s.message(resp))
}

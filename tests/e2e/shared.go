//go:build e2e

package e2e

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"castle-rentals/internal/pkg/config"
)

// SharedSuite boots the full application once per suite and exposes the
// router and database handle to the domain suites embedding it.
type SharedSuite struct {
	suite.Suite
	DB     *pgxpool.Pool
	Router *gin.Engine
	Cfg    config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.DB, s.Router, s.Cfg = setupE2EEnvironment(s.T())
}

// Package cli holds what the expensetrack subcommands share: the Command
// interface, the environment they run in, filter flags and output helpers.
package cli

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/category"
	"github.com/GustavoCaso/expensetrack/internal/config"
	"github.com/GustavoCaso/expensetrack/internal/logger"
	"github.com/GustavoCaso/expensetrack/internal/session"
)

// Env is the state a subcommand runs against.
type Env struct {
	Config  *config.Config
	Session *session.Session
	Matcher *category.Matcher
	Logger  *logger.Logger
	Out     io.Writer
	Now     time.Time
}

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, env Env) error
}

package shopcli

import (
	"strings"

	"github.com/urfave/cli/v2"
)

var CommonOpts struct {
	Console bool
	Env     string
	Region  string
	Port    int
}

var ConsoleFlag = cli.BoolFlag{
	Name:        "console",
	Usage:       "whether to run in console mode or lambda mode",
	Value:       false,
	EnvVars:     []string{"CONSOLE"},
	Destination: &CommonOpts.Console,
}
var EnvFlag = cli.StringFlag{
	Name:        "env",
	Usage:       "environment",
	Value:       "dev",
	EnvVars:     []string{"ENV"},
	Destination: &CommonOpts.Env,
}
var RegionFlag = cli.StringFlag{
	Name:        "region",
	Usage:       "AWS region",
	Value:       "ca-central-1",
	EnvVars:     []string{"AWS_REGION"},
	Destination: &CommonOpts.Region,
}
var PortFlag = func(p int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "port",
		Usage:       "Port to listen to, if running locally",
		Value:       p,
		EnvVars:     []string{"PORT"},
		Destination: &CommonOpts.Port,
	}
}

var CommonFlags = []cli.Flag{
	&ConsoleFlag,
	&EnvFlag,
	&RegionFlag,
}

// StringFlag constructs a string flag whose env var is the upper-snake form
// of the flag name, e.g. "table-name" -> TABLE_NAME.
func StringFlag(name, usage string, destination *string, value ...string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:        name,
		Usage:       usage,
		EnvVars:     []string{envVar(name)},
		Destination: destination,
	}
	if len(value) > 0 {
		flag.Value = value[0]
	}
	return flag
}

func envVar(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

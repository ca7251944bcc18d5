// Package commands implements the guildstream command line.
//
// The root command loads configuration from the environment, installs the
// structured logger and runs the fixed roster demonstration against the
// sample guilds, printing each report to stdout.
package commands

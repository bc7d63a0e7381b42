// Package cmd provides CLI commands for the sqlfluent tool.
//
// This package implements the command-line interface for sqlfluent, which renders
// YAML statement plans (see package plan) to SQL for a chosen dialect.
//
// # Available Commands
//
//   - init: Initialize a new sqlfluent project (sqlfluent.yaml and a plans directory)
//   - render: Render a plan file, or every plan in a directory, to SQL
//   - clauses: List the clause sequence of every statement kind for a dialect
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a *cli.Command,
// following the urfave/cli/v3 pattern. Commands are provided to the fx application
// through the "commands" value group and assembled by Run.
//
// # Global Options
//
//   - --config, -c: The configuration file (defaults to sqlfluent.yaml, or $SQLFLUENT_CONFIG)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlfluent init --dialect postgres
//	sqlfluent render plans/users.yaml
//	sqlfluent render --pretty -w plans/
//	sqlfluent clauses --dialect sqlite --kind update
package cmd

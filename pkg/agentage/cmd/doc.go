// Package cmd implements the cobra command tree for the agentage CLI,
// including subcommands for authentication, agent creation and listing,
// registry publishing, installation, and shell completion.
package cmd

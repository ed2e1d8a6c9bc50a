// Package cmd implements the command-line interface for the NoticeHub
// notice board. It provides a hierarchical command structure with operations
// for managing accounts, notices, favorites and the user list.
//
// The package is organized into several subpackages:
//
//   - auth: Commands for accounts and the login session (register, login, etc.)
//   - notice: Commands for notice management (add, list, publish, rm)
//   - fav: Commands for the per-user favorite set (toggle, list)
//   - user: Commands for user administration (list, rm)
//   - perf: Local benchmark of the underlying store operations
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See noticehub -help for a list of all commands.
package cmd

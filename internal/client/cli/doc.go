// Package cli provides the interactive command-line client of the auth
// service.
//
// The REPL (see runREPL) accepts:
//
//	register  create an account; a code is emailed
//	verify    confirm the emailed code and log in
//	login     authenticate with email and password
//	recover   email a recovery code for a user ID
//	reset     set a new password with a recovery code
//	whoami    show the logged-in account
//	logout    forget the stored session
//	exit      leave the program
//
// The session token survives restarts; it lives in the directory named by
// config.Config.SessionDir.
package cli

// Package shell runs the interactive menu session.
//
// A Session owns the working inventory for the lifetime of one run. It loads
// the stored snapshot on start, then loops: render the menu, read a single
// command letter (re-prompting until it is valid), and dispatch to load, add,
// list, delete, save, or exit. Record and storage packages stay unaware of
// the terminal; all prompts and rendering live here.
//
// Integer prompts are explicit retry loops: a failed parse prints a short
// diagnostic, redisplays the inventory, and asks again. Closing the input
// stream ends the session the same way the exit command does.
package shell

// Package password solves day 2, Password Philosophy: count database entries
// whose password satisfies the corporate policy attached to it.
package password

// Package cache renders a template directory into the cache directory.
//
// A build clears and recreates the cache directory, then renders each
// template in name order, one at a time, writing the result under the same
// file name. Subdirectories and dotfiles in the template directory are
// skipped. Every failure is returned as an *output.ExitError carrying the
// exit code for its failure site.
package cache

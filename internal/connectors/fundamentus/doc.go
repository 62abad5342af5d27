// Package fundamentus retrieves the screener page, either over HTTP from
// the public site or from a previously saved copy on disk.
package fundamentus

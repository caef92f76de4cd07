// Package pathcheck validates the path arguments given to pyfmt before any
// formatting tool is started.
//
// A path is valid when it currently exists as a regular file or as a
// directory. Symbolic links are followed. Anything else (a missing path,
// a dangling link, a FIFO, a device node, a path that cannot be stat'ed)
// is reported on the error stream, one line per path, in input order.
package pathcheck

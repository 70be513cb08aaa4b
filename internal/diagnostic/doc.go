// Package diagnostic provides structured findings for layer stack
// validation: coded errors and warnings tied to the layer they concern,
// collected rather than thrown.
package diagnostic

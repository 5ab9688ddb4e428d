// Package ports defines the interfaces between the bridge and its
// collaborators: the native core behind the boundary, the host-side event
// callback, and the configuration parser. Infrastructure packages provide
// the implementations; tests provide doubles.
package ports

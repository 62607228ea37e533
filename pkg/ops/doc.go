// Package ops contains the concrete maintenance operations. They
// register into the default registry from init in catalogue declaration
// order; that order is execution order, so the network-dependent update
// check comes first and the connectivity-severing network reset last.
//
// Bodies follow the operation contract: ancillary misses (a cache path
// that does not exist, a tool that is not installed, a browser that is
// running) are warnings, hard failures of required steps are errors, and
// nothing escapes Execute except the returned error.
package ops

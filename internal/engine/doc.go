// Package engine computes the shop's derived state: alerts, dashboard
// metrics, monthly summaries and maintenance schedules.
//
// Every function is pure. It reads the slices it is given, never mutates
// them, and depends on time only through the now argument, so equal inputs
// always give equal outputs, alert ids and texts included.
package engine

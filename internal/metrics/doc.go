// Package metrics summarises particle swarms for run reports and frontend
// graphs. MeanSpeed and Stability implement sim.Metric.
package metrics
